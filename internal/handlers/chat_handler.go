package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finbot/internal/advisor"
	apperrors "finbot/internal/errors"
)

// ChatHandler handles advisory chat requests
type ChatHandler struct {
	advisor *advisor.Advisor
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(adv *advisor.Advisor) *ChatHandler {
	return &ChatHandler{advisor: adv}
}

// ChatRequest represents one user message to the advisor
type ChatRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

// Chat replies to one message. The advisor always produces a reply, so the
// only failure modes here are auth and malformed payloads.
func (h *ChatHandler) Chat(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrMalformedInput, err.Error()))
		return
	}

	reply := h.advisor.Respond(c.Request.Context(), userID, req.Message)

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
