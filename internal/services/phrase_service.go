package services

import (
	"strings"

	"flywise-backend/internal/models"
)

// phrasebook holds the static traveler phrase data, keyed by language code.
var phrasebook = map[string]models.PhraseGuide{
	"en": {
		Code:     "en",
		Language: "English",
		Phrases: []models.Phrase{
			{Text: "Hello", Script: "Hello", Meaning: "Friendly greeting"},
			{Text: "Thank you", Script: "Thank you", Meaning: "Show appreciation"},
			{Text: "Excuse me", Script: "Excuse me", Meaning: "Politely get attention"},
		},
	},
	"hi": {
		Code:     "hi",
		Language: "Hindi",
		Phrases: []models.Phrase{
			{Text: "Namaste", Script: "नमस्ते", Meaning: "Hello / Greetings"},
			{Text: "Dhanyavaad", Script: "धन्यवाद", Meaning: "Thank you"},
			{Text: "Kripya", Script: "कृपया", Meaning: "Please"},
		},
	},
	"ja": {
		Code:     "ja",
		Language: "Japanese",
		Phrases: []models.Phrase{
			{Text: "Konnichiwa", Script: "こんにちは", Meaning: "Good day / Hello"},
			{Text: "Arigatou gozaimasu", Script: "ありがとうございます", Meaning: "Thank you"},
			{Text: "Sumimasen", Script: "すみません", Meaning: "Excuse me / Sorry"},
		},
	},
	"ar": {
		Code:     "ar",
		Language: "Arabic",
		Phrases: []models.Phrase{
			{Text: "Marhaba", Script: "مرحبا", Meaning: "Hello"},
			{Text: "Shukran", Script: "شكرا", Meaning: "Thank you"},
			{Text: "Min fadlak", Script: "من فضلك", Meaning: "Please"},
		},
	},
	"es": {
		Code:     "es",
		Language: "Spanish",
		Phrases: []models.Phrase{
			{Text: "Hola", Script: "Hola", Meaning: "Hello"},
			{Text: "Gracias", Script: "Gracias", Meaning: "Thank you"},
			{Text: "Por favor", Script: "Por favor", Meaning: "Please"},
		},
	},
	"fr": {
		Code:     "fr",
		Language: "French",
		Phrases: []models.Phrase{
			{Text: "Bonjour", Script: "Bonjour", Meaning: "Hello / Good day"},
			{Text: "Merci", Script: "Merci", Meaning: "Thank you"},
			{Text: "S'il vous plaît", Script: "S'il vous plaît", Meaning: "Please"},
		},
	},
	"zh": {
		Code:     "zh",
		Language: "Mandarin",
		Phrases: []models.Phrase{
			{Text: "Nǐ hǎo", Script: "你好", Meaning: "Hello"},
			{Text: "Xièxiè", Script: "谢谢", Meaning: "Thank you"},
			{Text: "Qǐng", Script: "请", Meaning: "Please"},
		},
	},
	"ko": {
		Code:     "ko",
		Language: "Korean",
		Phrases: []models.Phrase{
			{Text: "Annyeong haseyo", Script: "안녕하세요", Meaning: "Hello"},
			{Text: "Gamsahamnida", Script: "감사합니다", Meaning: "Thank you"},
			{Text: "Jwoesonghamnida", Script: "죄송합니다", Meaning: "Sorry / Excuse me"},
		},
	},
	"pt": {
		Code:     "pt",
		Language: "Portuguese",
		Phrases: []models.Phrase{
			{Text: "Olá", Script: "Olá", Meaning: "Hello"},
			{Text: "Obrigado", Script: "Obrigado/a", Meaning: "Thank you"},
			{Text: "Por favor", Script: "Por favor", Meaning: "Please"},
		},
	},
	"de": {
		Code:     "de",
		Language: "German",
		Phrases: []models.Phrase{
			{Text: "Hallo", Script: "Hallo", Meaning: "Hello"},
			{Text: "Danke", Script: "Danke", Meaning: "Thank you"},
			{Text: "Bitte", Script: "Bitte", Meaning: "Please"},
		},
	},
	"nl": {
		Code:     "nl",
		Language: "Dutch",
		Phrases: []models.Phrase{
			{Text: "Hallo", Script: "Hallo", Meaning: "Hello"},
			{Text: "Dank je", Script: "Dank je", Meaning: "Thank you"},
			{Text: "Alsjeblieft", Script: "Alsjeblieft", Meaning: "Please"},
		},
	},
	"tr": {
		Code:     "tr",
		Language: "Turkish",
		Phrases: []models.Phrase{
			{Text: "Merhaba", Script: "Merhaba", Meaning: "Hello"},
			{Text: "Teşekkürler", Script: "Teşekkürler", Meaning: "Thank you"},
			{Text: "Lütfen", Script: "Lütfen", Meaning: "Please"},
		},
	},
}

type PhraseService struct{}

func NewPhraseService() *PhraseService {
	return &PhraseService{}
}

// Guide returns the phrase guide for a language code, falling back to
// English for unknown codes.
func (s *PhraseService) Guide(lang string) models.PhraseGuide {
	if guide, ok := phrasebook[strings.ToLower(lang)]; ok {
		return guide
	}
	return phrasebook["en"]
}
