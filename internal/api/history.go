package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListConversions 최근 변환 이력
// GET /api/conversions?limit=50
func (h *Handler) ListConversions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	conversions, err := h.store.ListConversions(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "변환 이력 조회에 실패했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"conversions": conversions,
		"total":       len(conversions),
	})
}
