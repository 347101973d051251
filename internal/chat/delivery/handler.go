package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"maum-backend/internal/chat/dto"
	"maum-backend/internal/chat/usecase"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles chat HTTP requests
type ChatHandler struct {
	chatUsecase  usecase.ChatUsecase
	historyLimit int
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatUc usecase.ChatUsecase, historyLimit int) *ChatHandler {
	return &ChatHandler{
		chatUsecase:  chatUc,
		historyLimit: historyLimit,
	}
}

// Send handles one utterance and returns the assistant's reply
// POST /api/chat
func (h *ChatHandler) Send(c *gin.Context) {
	email := c.GetString("email")

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.chatUsecase.Send(c.Request.Context(), email, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "message must not be empty"})
		case errors.Is(err, usecase.ErrProvider):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// History returns the caller's records with the category histogram
// GET /api/chat/history?limit=100
func (h *ChatHandler) History(c *gin.Context) {
	email := c.GetString("email")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.historyLimit)))
	if err != nil || limit <= 0 {
		limit = h.historyLimit
	}

	resp, err := h.chatUsecase.History(email, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
