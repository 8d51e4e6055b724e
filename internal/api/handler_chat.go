package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

// PostChat feeds one user message to the assistant and returns its reply.
// The session ID ties multi-turn booking dialogs together; omitting it
// starts a fresh conversation.
func (h *Handler) PostChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := h.session(req.SessionID)
	reply, err := h.chat.Converse(c.Request.Context(), sess, req.Message)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"session_id": sess.ID,
			"reply":      reply,
			"error":      err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sess.ID,
		"reply":      reply,
	})
}
