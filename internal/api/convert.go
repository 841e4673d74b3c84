package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/irismonapark/Time-Sheet-Converter/internal/importer"
	"github.com/irismonapark/Time-Sheet-Converter/internal/model"
)

// Convert 근태표 업로드 + 변환 (SSE 스트리밍 응답)
// POST /api/convert
func (h *Handler) Convert(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 폼 데이터입니다"})
		return
	}

	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "업로드된 파일이 없습니다"})
		return
	}

	uploadedFile := files[0]

	// 업로드 디렉터리에 임시 저장
	tempFilePath := filepath.Join(h.uploadDir,
		fmt.Sprintf("timesheet_%d_%s", time.Now().Unix(), filepath.Base(uploadedFile.Filename)))

	if err := c.SaveUploadedFile(uploadedFile, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "파일 저장에 실패했습니다"})
		return
	}
	defer os.Remove(tempFilePath)

	sheetName := c.DefaultPostForm("sheet", "")

	// SSE 응답 헤더
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	coordinator := importer.NewCoordinator(h.store, h.exportDir, h.defaultCompany)

	progressChan := coordinator.Convert(importer.ConvertOptions{
		FilePath:         tempFilePath,
		OriginalFilename: uploadedFile.Filename,
		SheetName:        sheetName,
	})

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "스트리밍 응답을 지원하지 않습니다"})
		return
	}

	for event := range progressChan {
		// 완료 이벤트에는 다운로드 토큰을 실어 보낸다
		if event.Type == "done" {
			if report, ok := event.Data.(*model.ConvertReport); ok {
				token := h.downloads.put(report.OutputPath, report.OutputName, 30*time.Minute)
				event.Data = gin.H{
					"report":        report,
					"downloadToken": token,
				}
			}
		}

		eventData, err := json.Marshal(event)
		if err != nil {
			continue
		}

		fmt.Fprintf(c.Writer, "data: %s\n\n", eventData)
		flusher.Flush()
	}
}
