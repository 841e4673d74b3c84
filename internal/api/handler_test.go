package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/irismonapark/Time-Sheet-Converter/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()

	dataDir := t.TempDir()
	st, err := store.New(filepath.Join(dataDir, "timesheet.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() { st.Close() })

	h := NewHandler(st, t.TempDir(), t.TempDir(), "")

	router := gin.New()
	h.RegisterRoutes(router.Group("/api"))
	return router, st
}

// timesheetUpload 근태표 통합문서를 멀티파트 업로드 본문으로 만든다
func timesheetUpload(t *testing.T, filename string) (*bytes.Buffer, string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "24년 3월"); err != nil {
		t.Fatalf("SetSheetName: %v", err)
	}
	header := []interface{}{"성별", "성명", "구분"}
	for d := 1; d <= 31; d++ {
		header = append(header, d)
	}
	if err := f.SetSheetRow("24년 3월", "A1", &header); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}
	row := []interface{}{"남", "홍길동", "기본", 8, 8}
	if err := f.SetSheetRow("24년 3월", "A2", &row); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}

	workbook, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(workbook.Bytes()); err != nil {
		t.Fatalf("part.Write: %v", err)
	}
	mw.Close()

	return body, mw.FormDataContentType()
}

// sseEvents SSE 응답 본문을 이벤트 목록으로 되돌린다
func sseEvents(t *testing.T, body string) []map[string]interface{} {
	t.Helper()

	var events []map[string]interface{}
	for _, chunk := range strings.Split(body, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if !strings.HasPrefix(chunk, "data: ") {
			continue
		}
		var event map[string]interface{}
		if err := json.Unmarshal([]byte(strings.TrimPrefix(chunk, "data: ")), &event); err != nil {
			t.Fatalf("이벤트 해석 실패: %v\n%s", err, chunk)
		}
		events = append(events, event)
	}
	return events
}

func TestConvertAndDownload(t *testing.T) {
	router, st := newTestRouter(t)

	body, contentType := timesheetUpload(t, "성심_근태표.xlsx")
	req := httptest.NewRequest(http.MethodPost, "/api/convert", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("POST /api/convert = %d\n%s", w.Code, w.Body.String())
	}

	events := sseEvents(t, w.Body.String())
	if len(events) == 0 {
		t.Fatalf("SSE 이벤트가 없습니다:\n%s", w.Body.String())
	}

	last := events[len(events)-1]
	if last["type"] != "done" {
		t.Fatalf("마지막 이벤트 = %v, want done", last)
	}

	data := last["data"].(map[string]interface{})
	report := data["report"].(map[string]interface{})
	if report["company"] != "성심" {
		t.Fatalf("company = %v, want 성심", report["company"])
	}
	if report["outputName"] != "24-03-성심-상세명세서.xlsx" {
		t.Fatalf("outputName = %v", report["outputName"])
	}

	token, _ := data["downloadToken"].(string)
	if token == "" {
		t.Fatalf("다운로드 토큰이 없습니다: %v", data)
	}

	// 토큰으로 내려받기
	req = httptest.NewRequest(http.MethodGet, "/api/download/"+token, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/download = %d", w.Code)
	}
	if w.Body.Len() == 0 {
		t.Fatalf("다운로드 본문이 비었습니다")
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Fatalf("Content-Disposition = %q", cd)
	}

	// 이력이 기록되었는지
	n, err := st.CountConversions()
	if err != nil || n != 1 {
		t.Fatalf("CountConversions() = %d, %v, want 1", n, err)
	}
}

func TestConvert_NoFile(t *testing.T) {
	router, _ := newTestRouter(t)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/convert", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("POST /api/convert = %d, want 400", w.Code)
	}
}

func TestDownload_UnknownToken(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/download/없는토큰", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /api/download = %d, want 404", w.Code)
	}
}

func TestGetStatus(t *testing.T) {
	router, st := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/status = %d", w.Code)
	}

	var resp StatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("응답 해석 실패: %v", err)
	}
	if resp.TotalConversions != 0 || resp.LastYear != "" {
		t.Fatalf("초기 상태가 아닙니다: %+v", resp)
	}

	if err := st.SetLastPeriod("24", "03"); err != nil {
		t.Fatalf("SetLastPeriod() error = %v", err)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("응답 해석 실패: %v", err)
	}
	if resp.LastYear != "24" || resp.LastMonth != "03" {
		t.Fatalf("마지막 연월 = %s-%s, want 24-03", resp.LastYear, resp.LastMonth)
	}
}

func TestListConversionsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	body, contentType := timesheetUpload(t, "성심_근태표.xlsx")
	req := httptest.NewRequest(http.MethodPost, "/api/convert", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/conversions", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/conversions = %d", w.Code)
	}

	var resp struct {
		Conversions []store.Conversion `json:"conversions"`
		Total       int                `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("응답 해석 실패: %v", err)
	}
	if resp.Total != 1 || len(resp.Conversions) != 1 {
		t.Fatalf("이력 수 = %d, want 1", resp.Total)
	}
	if resp.Conversions[0].Company != "성심" {
		t.Fatalf("company = %s, want 성심", resp.Conversions[0].Company)
	}
}
