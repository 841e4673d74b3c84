package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 시스템 상태 응답
type StatusResponse struct {
	TotalConversions int    `json:"totalConversions"` // 누적 변환 건수
	LastYear         string `json:"lastYear"`         // 마지막 변환 연도 (2자리)
	LastMonth        string `json:"lastMonth"`        // 마지막 변환 월
	LastConvertTime  string `json:"lastConvertTime"`  // 마지막 변환 시각
}

// GetStatus 시스템 상태
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{}

	if n, err := h.store.CountConversions(); err == nil {
		resp.TotalConversions = n
	}
	if year, month, err := h.store.GetLastPeriod(); err == nil {
		resp.LastYear = year
		resp.LastMonth = month
	}
	if t, err := h.store.LastConversionTime(); err == nil && !t.IsZero() {
		resp.LastConvertTime = t.Format("2006-01-02 15:04:05")
	}

	c.JSON(http.StatusOK, resp)
}
