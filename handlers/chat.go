package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voyago/models"
	"voyago/services/conversation"
)

// ChatHandler drives the conversational booking flow over HTTP.
type ChatHandler struct {
	Store  conversation.SessionStore
	Engine conversation.Engine
}

func NewChatHandler(store conversation.SessionStore, engine conversation.Engine) *ChatHandler {
	return &ChatHandler{Store: store, Engine: engine}
}

// HandleChat processes one conversation turn. A request without a session
// ID starts a new conversation.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	ctx := c.Request.Context()
	session, err := h.Store.Get(ctx, req.SessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session", "details": err.Error()})
		return
	}

	reply, err := h.Engine.HandleTurn(ctx, session, req.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process message", "details": err.Error()})
		return
	}

	if err := h.Store.Save(ctx, session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		SessionID: session.SessionID,
		Reply:     reply,
		State:     session.State.String(),
	})
}

// ResetChat discards the session so the next turn starts fresh.
func (h *ChatHandler) ResetChat(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Store.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "status": "cleared"})
}
