package models

// PhraseGuide is a small set of traveler phrases for one language.
type PhraseGuide struct {
	Code     string   `json:"code"`
	Language string   `json:"language"`
	Phrases  []Phrase `json:"phrases"`
}

type Phrase struct {
	Text    string `json:"text"`
	Script  string `json:"script"`
	Meaning string `json:"meaning"`
}

// AudioRequest asks for spoken pronunciation of a phrase.
type AudioRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}
