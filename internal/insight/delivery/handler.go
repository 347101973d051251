package delivery

import (
	"net/http"

	"maum-backend/internal/insight/usecase"

	"github.com/gin-gonic/gin"
)

// InsightHandler handles the privileged statistics endpoints
type InsightHandler struct {
	insightUsecase usecase.InsightUsecase
}

// NewInsightHandler creates a new InsightHandler
func NewInsightHandler(insightUc usecase.InsightUsecase) *InsightHandler {
	return &InsightHandler{insightUsecase: insightUc}
}

// Stats returns the cross-user overview, optionally filtered to one email
// GET /api/admin/stats?email=user@example.com
func (h *InsightHandler) Stats(c *gin.Context) {
	resp, err := h.insightUsecase.Overview(c.Query("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
