package importer

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/irismonapark/Time-Sheet-Converter/internal/excel"
	"github.com/irismonapark/Time-Sheet-Converter/internal/exporter"
	"github.com/irismonapark/Time-Sheet-Converter/internal/model"
	"github.com/irismonapark/Time-Sheet-Converter/internal/parser"
	"github.com/irismonapark/Time-Sheet-Converter/internal/store"
)

// Coordinator 변환 조정자. 업로드 파일 하나를 받아
// 구조 탐지 → 근태 재구성 → 금액 계산 → 명세서 작성까지 한 번에 돈다.
type Coordinator struct {
	store          *store.Store // nil이면 이력 기록을 생략한다 (테스트)
	exportDir      string
	defaultCompany string
}

// NewCoordinator 변환 조정자 생성
func NewCoordinator(st *store.Store, exportDir, defaultCompany string) *Coordinator {
	return &Coordinator{
		store:          st,
		exportDir:      exportDir,
		defaultCompany: defaultCompany,
	}
}

// ConvertOptions 변환 옵션
type ConvertOptions struct {
	FilePath         string // 서버에 저장된 업로드 파일 경로
	OriginalFilename string // 사용자가 올린 원래 파일명 (회사명 추론에 쓴다)
	SheetName        string // 비우면 첫 번째 시트
}

// ProgressEvent 진행 이벤트
type ProgressEvent struct {
	Type      string      `json:"type"` // start/info/done/error
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Convert 변환을 시작하고 진행 이벤트 채널을 돌려준다
func (c *Coordinator) Convert(opts ConvertOptions) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 100)

	go func() {
		defer close(progressChan)
		c.doConvert(opts, progressChan)
	}()

	return progressChan
}

func (c *Coordinator) doConvert(opts ConvertOptions, ch chan ProgressEvent) {
	c.send(ch, ProgressEvent{
		Type:    "start",
		Message: "근태표 변환을 시작합니다",
		Data: map[string]string{
			"filename": opts.OriginalFilename,
		},
		Timestamp: time.Now(),
	})

	report, err := c.ConvertFile(opts)
	if err != nil {
		msg := fmt.Sprintf("변환 실패: %v", err)
		if errors.Is(err, parser.ErrNoData) {
			msg = parser.ErrNoData.Error()
		}
		c.send(ch, ProgressEvent{
			Type:      "error",
			Message:   msg,
			Timestamp: time.Now(),
		})
		return
	}

	c.send(ch, ProgressEvent{
		Type: "info",
		Message: fmt.Sprintf("시트 %q: %d행, %s년 %s월, 회사 %s",
			report.SheetName, report.RowCount, report.Period.Year, report.Period.Month, report.Company),
		Timestamp: time.Now(),
	})

	c.send(ch, ProgressEvent{
		Type:      "done",
		Message:   "변환 완료",
		Data:      report,
		Timestamp: time.Now(),
	})
}

// ConvertFile 변환 한 건을 동기로 수행한다
// 결과가 0행이면 parser.ErrNoData 를 그대로 올린다. 부분 출력은 만들지 않는다.
func (c *Coordinator) ConvertFile(opts ConvertOptions) (*model.ConvertReport, error) {
	startTime := time.Now()

	f, err := excelize.OpenFile(opts.FilePath)
	if err != nil {
		return nil, fmt.Errorf("엑셀 파일 열기 실패: %w", err)
	}
	defer f.Close()

	sheetName := opts.SheetName
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("통합문서에 시트가 없습니다")
		}
		sheetName = sheets[0]
	}

	grid, err := excel.LoadGrid(f, sheetName)
	if err != nil {
		return nil, err
	}

	columnMap, dateHeaders := parser.Locate(grid)
	rows, err := parser.Reconstruct(grid, columnMap, dateHeaders)
	if err != nil {
		return nil, err
	}

	period := parser.InferPeriod(sheetName, time.Now())
	company := parser.InferCompany(opts.OriginalFilename, c.defaultCompany)

	out, grandTotal, err := exporter.BuildStatement(rows, period, company)
	if err != nil {
		return nil, fmt.Errorf("명세서 작성 실패: %w", err)
	}
	defer out.Close()

	outputName := exporter.OutputFilename(period, company)
	// 같은 이름의 변환이 겹쳐도 서로 덮어쓰지 않도록 저장 파일명에 접두어를 붙인다
	storedName := fmt.Sprintf("%s_%s", uuid.New().String()[:8], outputName)
	outputPath := filepath.Join(c.exportDir, storedName)

	if err := out.SaveAs(outputPath); err != nil {
		return nil, fmt.Errorf("명세서 저장 실패: %w", err)
	}

	report := &model.ConvertReport{
		Filename:   opts.OriginalFilename,
		SheetName:  sheetName,
		Company:    company,
		Period:     period,
		RowCount:   len(rows),
		GrandTotal: grandTotal,
		OutputName: outputName,
		OutputPath: outputPath,
		Duration:   time.Since(startTime),
	}

	if c.store != nil {
		if _, err := c.store.InsertConversion(report); err != nil {
			// 이력 기록 실패는 변환 자체를 막지 않는다
			log.Printf("변환 이력 기록 실패: %v", err)
		}
		_ = c.store.SetLastPeriod(period.Year, period.Month)
	}

	return report, nil
}

func (c *Coordinator) send(ch chan ProgressEvent, event ProgressEvent) {
	select {
	case ch <- event:
	default:
		// 채널이 가득 차면 이벤트를 버린다
	}
}
