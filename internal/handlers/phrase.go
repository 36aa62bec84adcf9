package handlers

import (
	"encoding/base64"
	"net/http"

	apperrors "flywise-backend/internal/errors"
	"flywise-backend/internal/models"
	"flywise-backend/internal/services"
	"flywise-backend/pkg/elevenlabs"

	"github.com/gin-gonic/gin"
)

type PhraseHandler struct {
	phraseService *services.PhraseService
	ttsClient     *elevenlabs.Client
}

func NewPhraseHandler(phraseService *services.PhraseService, ttsClient *elevenlabs.Client) *PhraseHandler {
	return &PhraseHandler{
		phraseService: phraseService,
		ttsClient:     ttsClient,
	}
}

// GetGuide serves the phrase guide for a language, falling back to English
// for unknown codes.
func (h *PhraseHandler) GetGuide(c *gin.Context) {
	c.JSON(http.StatusOK, h.phraseService.Guide(c.Param("lang")))
}

// SynthesizeAudio returns base64 MPEG audio for one phrase.
func (h *PhraseHandler) SynthesizeAudio(c *gin.Context) {
	if !h.ttsClient.Configured() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ElevenLabs is not configured on the server."})
		return
	}

	var req models.AudioRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing phrase text."})
		return
	}
	if req.Lang == "" {
		req.Lang = "en"
	}

	audio, err := h.ttsClient.Synthesize(c.Request.Context(), req.Text, req.Lang)
	if err != nil {
		respondError(c, err, apperrors.MsgAudioFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{"audio": base64.StdEncoding.EncodeToString(audio)})
}
