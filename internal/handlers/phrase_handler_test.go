package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"flywise-backend/internal/models"
	"flywise-backend/internal/services"
	"flywise-backend/pkg/elevenlabs"

	"github.com/gin-gonic/gin"
)

func newPhraseRouter(ttsClient *elevenlabs.Client) *gin.Engine {
	handler := NewPhraseHandler(services.NewPhraseService(), ttsClient)

	router := gin.New()
	router.GET("/phrase-guide/:lang", handler.GetGuide)
	router.POST("/phrase-guide/audio", handler.SynthesizeAudio)
	return router
}

func TestGetGuide_KnownLanguage(t *testing.T) {
	router := newPhraseRouter(elevenlabs.NewClient("", ""))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/phrase-guide/ja", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var guide models.PhraseGuide
	if err := json.Unmarshal(w.Body.Bytes(), &guide); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if guide.Code != "ja" || guide.Language != "Japanese" {
		t.Errorf("unexpected guide %s/%s", guide.Code, guide.Language)
	}
	if len(guide.Phrases) == 0 {
		t.Error("expected phrases for a known language")
	}
}

func TestGetGuide_CaseInsensitiveLookup(t *testing.T) {
	router := newPhraseRouter(elevenlabs.NewClient("", ""))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/phrase-guide/FR", nil)
	router.ServeHTTP(w, req)

	var guide models.PhraseGuide
	if err := json.Unmarshal(w.Body.Bytes(), &guide); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if guide.Code != "fr" {
		t.Errorf("expected fr guide, got %s", guide.Code)
	}
}

func TestGetGuide_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	router := newPhraseRouter(elevenlabs.NewClient("", ""))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/phrase-guide/xx", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var guide models.PhraseGuide
	if err := json.Unmarshal(w.Body.Bytes(), &guide); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if guide.Code != "en" {
		t.Errorf("expected English fallback, got %s", guide.Code)
	}
}

func TestSynthesizeAudio_UnconfiguredClientRejected(t *testing.T) {
	router := newPhraseRouter(elevenlabs.NewClient("", "voice"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/phrase-guide/audio",
		strings.NewReader(`{"text": "Merci", "lang": "fr"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "not configured") {
		t.Errorf("expected configuration error, got %q", w.Body.String())
	}
}

func TestSynthesizeAudio_MissingTextRejected(t *testing.T) {
	tts := elevenlabs.NewClient("key", "voice")
	router := newPhraseRouter(tts)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/phrase-guide/audio",
		strings.NewReader(`{"lang": "fr"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Missing phrase text") {
		t.Errorf("expected missing-text error, got %q", w.Body.String())
	}
}

func TestSynthesizeAudio_ReturnsBase64Audio(t *testing.T) {
	audio := []byte{0xff, 0xf3, 0x48, 0xc4}
	tts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("xi-api-key") != "key" {
			t.Errorf("expected api key header, got %q", r.Header.Get("xi-api-key"))
		}
		w.Write(audio)
	}))
	defer tts.Close()

	router := newPhraseRouter(elevenlabs.NewClientWithBaseURL("key", "voice", tts.URL+"/"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/phrase-guide/audio",
		strings.NewReader(`{"text": "Merci", "lang": "fr"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	decoded, err := base64.StdEncoding.DecodeString(body["audio"])
	if err != nil {
		t.Fatalf("audio is not valid base64: %v", err)
	}
	if string(decoded) != string(audio) {
		t.Error("decoded audio does not match the synthesized bytes")
	}
}

func TestSynthesizeAudio_UpstreamErrorPassedThrough(t *testing.T) {
	tts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"detail": "invalid api key"}`)
	}))
	defer tts.Close()

	router := newPhraseRouter(elevenlabs.NewClientWithBaseURL("key", "voice", tts.URL+"/"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/phrase-guide/audio",
		strings.NewReader(`{"text": "Merci"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 passthrough, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid api key") {
		t.Errorf("expected raw vendor body, got %q", w.Body.String())
	}
}
