package server

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/irismonapark/Time-Sheet-Converter/internal/api"
	"github.com/irismonapark/Time-Sheet-Converter/internal/config"
	"github.com/irismonapark/Time-Sheet-Converter/internal/store"
)

//go:embed all:dist
var staticFiles embed.FS

// Server HTTP 서버
type Server struct {
	router *gin.Engine
	store  *store.Store
	api    *api.Handler
}

// NewServer 서버 생성
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "timesheet.db")

	sqliteStore, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("데이터베이스 초기화 실패: %v", err)
	}

	apiHandler := api.NewHandler(
		sqliteStore,
		filepath.Join(dataDir, "uploads"),
		filepath.Join(dataDir, "exports"),
		cfg.Payroll.DefaultCompany,
	)

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		api:    apiHandler,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// API 라우트
	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	// 업로드 페이지
	sub, _ := fs.Sub(staticFiles, "dist")
	s.router.GET("/", func(c *gin.Context) {
		data, _ := fs.ReadFile(sub, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})
	s.router.NoRoute(func(c *gin.Context) {
		data, _ := fs.ReadFile(sub, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})
}

// Run 서버 시작
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close 저장소 정리
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore 저장소 (테스트용)
func (s *Server) GetStore() *store.Store {
	return s.store
}
