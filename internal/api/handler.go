package api

import (
	"github.com/gin-gonic/gin"

	"github.com/irismonapark/Time-Sheet-Converter/internal/store"
)

// Handler API 처리기
type Handler struct {
	store          *store.Store
	uploadDir      string
	exportDir      string
	defaultCompany string
	downloads      *downloadStore
}

// NewHandler API 처리기 생성
func NewHandler(st *store.Store, uploadDir, exportDir, defaultCompany string) *Handler {
	return &Handler{
		store:          st,
		uploadDir:      uploadDir,
		exportDir:      exportDir,
		defaultCompany: defaultCompany,
		downloads:      newDownloadStore(),
	}
}

// RegisterRoutes API 라우트 등록
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 시스템 상태
	router.GET("/status", h.GetStatus)

	// 근태표 변환
	router.POST("/convert", h.Convert)

	// 변환 결과 다운로드
	router.GET("/download/:token", h.Download)

	// 변환 이력
	router.GET("/conversions", h.ListConversions)
}
