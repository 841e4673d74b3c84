package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/irismonapark/Time-Sheet-Converter/internal/calendar"
	"github.com/irismonapark/Time-Sheet-Converter/internal/model"
	"github.com/irismonapark/Time-Sheet-Converter/internal/wage"
)

// SheetName 출력 시트 이름
const SheetName = "상세명세서"

// 출력 열: 번호/일자/성별/성명/기본/연장/주특/주휴/공수/단가/비고/금액
var headerLabels = []interface{}{
	"번호", "일자", "성별", "성명", "기본", "연장", "주특", "주휴", "공수", "단가", "비고", "금액",
}

// OutputFilename 출력 파일명 "YY-MM-회사명-상세명세서.xlsx"
func OutputFilename(period model.Period, company string) string {
	return fmt.Sprintf("%s-%s-%s-상세명세서.xlsx", period.Year, period.Month, company)
}

// BuildStatement 재구성된 근태 행으로 상세명세서 통합문서를 만든다
// 일자 칸은 일요일/공휴일이면 빨강, 토요일이면 파랑으로 칠한다.
// 총액도 함께 돌려준다.
func BuildStatement(rows []model.AttendanceRow, period model.Period, company string) (*excelize.File, int64, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		_ = f.Close()
		return nil, 0, err
	}

	styles, err := newStatementStyles(f)
	if err != nil {
		_ = f.Close()
		return nil, 0, err
	}

	title := fmt.Sprintf("%s년 %s월 %s 상세명세서", period.Year, period.Month, company)
	if err := f.SetCellValue(SheetName, "A1", title); err != nil {
		_ = f.Close()
		return nil, 0, err
	}
	_ = f.MergeCell(SheetName, "A1", "L1")
	_ = f.SetCellStyle(SheetName, "A1", "L1", styles.title)

	if err := f.SetSheetRow(SheetName, "A2", &headerLabels); err != nil {
		_ = f.Close()
		return nil, 0, err
	}
	_ = f.SetCellStyle(SheetName, "A2", "L2", styles.header)

	year := period.YearFull()
	month := period.MonthInt()
	holidays := calendar.Holidays(year, month)

	var grandTotal int64
	for i, row := range rows {
		payment := wage.Price(row)
		grandTotal += payment.GrandTotal

		r := i + 3
		values := []interface{}{
			i + 1,
			fmt.Sprintf("%d/%d", month, row.Day),
			row.Gender,
			row.Name,
			hoursOrBlank(row.Basic),
			hoursOrBlank(row.Overtime),
			hoursOrBlank(row.WeekendSpecial),
			hoursOrBlank(row.WeeklyHoliday),
			payment.FormatWorkUnits(),
			wonOrBlank(payment.UnitPrice),
			"",
			payment.GrandTotal,
		}
		cell, _ := excelize.CoordinatesToCellName(1, r)
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			_ = f.Close()
			return nil, 0, err
		}

		last, _ := excelize.CoordinatesToCellName(len(values), r)
		_ = f.SetCellStyle(SheetName, cell, last, styles.body)

		// 일자 칸 글자색은 표시용 분류일 뿐 금액 계산에는 관여하지 않는다
		dateCell, _ := excelize.CoordinatesToCellName(2, r)
		saturday, sunday := calendar.Classify(year, month, row.Day)
		switch {
		case sunday || holidays[row.Day]:
			_ = f.SetCellStyle(SheetName, dateCell, dateCell, styles.holiday)
		case saturday:
			_ = f.SetCellStyle(SheetName, dateCell, dateCell, styles.saturday)
		}
	}

	// 합계 행
	totalRow := len(rows) + 3
	left, _ := excelize.CoordinatesToCellName(1, totalRow)
	kCell, _ := excelize.CoordinatesToCellName(11, totalRow)
	lCell, _ := excelize.CoordinatesToCellName(12, totalRow)
	_ = f.SetCellValue(SheetName, left, "합계")
	_ = f.MergeCell(SheetName, left, kCell)
	_ = f.SetCellValue(SheetName, lCell, grandTotal)
	_ = f.SetCellStyle(SheetName, left, lCell, styles.total)

	_ = f.SetColWidth(SheetName, "B", "B", 8)
	_ = f.SetColWidth(SheetName, "D", "D", 12)
	_ = f.SetColWidth(SheetName, "J", "L", 12)

	f.SetActiveSheet(0)
	return f, grandTotal, nil
}

type statementStyles struct {
	title    int
	header   int
	body     int
	holiday  int
	saturday int
	total    int
}

func newStatementStyles(f *excelize.File) (statementStyles, error) {
	var s statementStyles
	var err error

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	if s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: center,
	}); err != nil {
		return s, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
		Border:    border,
		Alignment: center,
	}); err != nil {
		return s, err
	}
	if s.body, err = f.NewStyle(&excelize.Style{
		Border:    border,
		Alignment: center,
	}); err != nil {
		return s, err
	}
	if s.holiday, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: "FF0000"},
		Border:    border,
		Alignment: center,
	}); err != nil {
		return s, err
	}
	if s.saturday, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: "0000FF"},
		Border:    border,
		Alignment: center,
	}); err != nil {
		return s, err
	}
	if s.total, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"EEEEEE"}, Pattern: 1},
		Border:    border,
		Alignment: center,
	}); err != nil {
		return s, err
	}

	return s, nil
}

func hoursOrBlank(v float64) interface{} {
	if v <= 0 {
		return nil
	}
	return v
}

func wonOrBlank(v int64) interface{} {
	if v <= 0 {
		return nil
	}
	return v
}
