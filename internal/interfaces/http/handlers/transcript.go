// internal/interfaces/http/handlers/transcript.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/voice-shop/internal/domain/transcript"
)

// TranscriptHandler handles the conversation transcript log
type TranscriptHandler struct {
	transcripts *transcript.Service
}

// NewTranscriptHandler creates a new transcript handler
func NewTranscriptHandler(svc *transcript.Service) *TranscriptHandler {
	return &TranscriptHandler{transcripts: svc}
}

// GetMessages handles GET /transcripts?sessionId=
func (h *TranscriptHandler) GetMessages(c *gin.Context) {
	sessionID := c.Query("sessionId")

	turns, err := h.transcripts.Messages(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": sessionID,
		"messages":  turns,
	})
}

// AddMessage handles POST /transcripts
func (h *TranscriptHandler) AddMessage(c *gin.Context) {
	var req transcript.AppendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if _, err := h.transcripts.Append(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
