package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/irismonapark/Time-Sheet-Converter/internal/exporter"
	"github.com/irismonapark/Time-Sheet-Converter/internal/parser"
)

// writeTimesheet 헤더가 3행에 있는 수기 근태표 통합문서를 만들어 저장한다
func writeTimesheet(t *testing.T, dir, name, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatalf("SetSheetName: %v", err)
	}

	header := []interface{}{"성별", "성명", "구분"}
	for d := 1; d <= 31; d++ {
		header = append(header, d)
	}
	if err := f.SetSheetRow(sheet, "A3", &header); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, 4+i)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

func TestConvertFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	exportDir := t.TempDir()

	path := writeTimesheet(t, dir, "upload.xlsx", "24년 3월", [][]interface{}{
		{"남", "홍길동", "기본", 8, 8},
		{nil, nil, "연장", 2},
	})

	c := NewCoordinator(nil, exportDir, "")
	report, err := c.ConvertFile(ConvertOptions{
		FilePath:         path,
		OriginalFilename: "성심_근태표.xlsx",
	})
	if err != nil {
		t.Fatalf("ConvertFile() error = %v", err)
	}

	if report.SheetName != "24년 3월" {
		t.Fatalf("sheetName = %s", report.SheetName)
	}
	if report.Period.Year != "24" || report.Period.Month != "03" {
		t.Fatalf("period = %+v, want 24-03", report.Period)
	}
	if report.Company != "성심" {
		t.Fatalf("company = %s, want 성심", report.Company)
	}
	if report.RowCount != 2 {
		t.Fatalf("rowCount = %d, want 2", report.RowCount)
	}
	if want := int64(117480 * 2); report.GrandTotal != want {
		t.Fatalf("grandTotal = %d, want %d", report.GrandTotal, want)
	}
	if report.OutputName != "24-03-성심-상세명세서.xlsx" {
		t.Fatalf("outputName = %s", report.OutputName)
	}

	// 저장 파일명은 "접두어_출력명" 꼴
	if filepath.Dir(report.OutputPath) != exportDir {
		t.Fatalf("outputPath = %s, want %s 아래", report.OutputPath, exportDir)
	}
	if _, err := os.Stat(report.OutputPath); err != nil {
		t.Fatalf("출력 파일이 없습니다: %v", err)
	}

	// 만들어진 명세서를 다시 읽어 내용 확인
	out, err := excelize.OpenFile(report.OutputPath)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer out.Close()

	cell := func(axis string) string {
		v, err := out.GetCellValue(exporter.SheetName, axis)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", axis, err)
		}
		return v
	}

	// 1일: 기본 8 + 연장 2, 공수 1, 단가/금액 117480
	if got := cell("B3"); got != "3/1" {
		t.Fatalf("B3 = %q, want 3/1", got)
	}
	if got := cell("F3"); got != "2" {
		t.Fatalf("연장 F3 = %q, want 2", got)
	}
	if got := cell("I3"); got != "1" {
		t.Fatalf("공수 I3 = %q, want 1", got)
	}
	if got := cell("J3"); got != "117480" {
		t.Fatalf("단가 J3 = %q, want 117480", got)
	}
	// 2일: 연장 없이 기본만
	if got := cell("B4"); got != "3/2" {
		t.Fatalf("B4 = %q, want 3/2", got)
	}
	if got := cell("F4"); got != "" {
		t.Fatalf("연장 F4 = %q, want 빈 칸", got)
	}
	// 합계 행
	if got := cell("L5"); got != "234960" {
		t.Fatalf("합계 L5 = %q, want 234960", got)
	}
}

func TestConvertFile_NoData(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	path := writeTimesheet(t, dir, "upload.xlsx", "24년 3월", [][]interface{}{
		{"남", "홍길동", "식대", 8, 8},
	})

	c := NewCoordinator(nil, t.TempDir(), "")
	_, err := c.ConvertFile(ConvertOptions{
		FilePath:         path,
		OriginalFilename: "성심_근태표.xlsx",
	})
	if !errors.Is(err, parser.ErrNoData) {
		t.Fatalf("error = %v, want parser.ErrNoData", err)
	}
}

func TestConvertFile_MissingFile(t *testing.T) {
	t.Parallel()

	c := NewCoordinator(nil, t.TempDir(), "")
	_, err := c.ConvertFile(ConvertOptions{FilePath: "없는파일.xlsx"})
	if err == nil {
		t.Fatalf("없는 파일인데 오류가 없습니다")
	}
}

func TestConvert_ProgressEvents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	path := writeTimesheet(t, dir, "upload.xlsx", "24년 3월", [][]interface{}{
		{"남", "홍길동", "기본", 8},
	})

	c := NewCoordinator(nil, t.TempDir(), "")
	ch := c.Convert(ConvertOptions{
		FilePath:         path,
		OriginalFilename: "성심_근태표.xlsx",
	})

	var types []string
	for event := range ch {
		types = append(types, event.Type)
	}

	want := []string{"start", "info", "done"}
	if len(types) != len(want) {
		t.Fatalf("이벤트 순서 = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("이벤트 순서 = %v, want %v", types, want)
		}
	}
}

func TestConvert_ErrorEvent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	path := writeTimesheet(t, dir, "upload.xlsx", "Sheet1", [][]interface{}{
		{"남", "홍길동", "식대", 8},
	})

	c := NewCoordinator(nil, t.TempDir(), "")
	ch := c.Convert(ConvertOptions{FilePath: path, OriginalFilename: "x.xlsx"})

	var last ProgressEvent
	for event := range ch {
		last = event
	}
	if last.Type != "error" {
		t.Fatalf("마지막 이벤트 = %+v, want error", last)
	}
	if last.Message != parser.ErrNoData.Error() {
		t.Fatalf("오류 메시지 = %q, want %q", last.Message, parser.ErrNoData.Error())
	}
}
