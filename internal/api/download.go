package api

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type download struct {
	filePath  string
	fileName  string // 사용자에게 보여줄 파일명
	expiresAt time.Time
}

// downloadStore 다운로드 토큰 저장소. 토큰은 TTL이 지나면 버린다.
type downloadStore struct {
	mu    sync.Mutex
	items map[string]download
}

func newDownloadStore() *downloadStore {
	return &downloadStore{
		items: make(map[string]download),
	}
}

func (s *downloadStore) put(filePath, fileName string, ttl time.Duration) (token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	token = newRandomToken(24)
	s.items[token] = download{
		filePath:  filePath,
		fileName:  fileName,
		expiresAt: time.Now().Add(ttl),
	}
	return token
}

func (s *downloadStore) get(token string) (download, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	v, ok := s.items[token]
	if !ok {
		return download{}, false
	}
	if time.Now().After(v.expiresAt) {
		delete(s.items, token)
		return download{}, false
	}
	return v, true
}

func (s *downloadStore) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.expiresAt) {
			delete(s.items, k)
		}
	}
}

func newRandomToken(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

// Download 변환 결과 내려받기
// GET /api/download/:token
func (h *Handler) Download(c *gin.Context) {
	token := c.Param("token")

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "다운로드 링크가 만료되었거나 존재하지 않습니다"})
		return
	}

	if _, err := os.Stat(item.filePath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "변환 파일을 찾을 수 없습니다"})
		return
	}

	c.FileAttachment(item.filePath, item.fileName)
}
