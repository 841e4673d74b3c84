package excel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/irismonapark/Time-Sheet-Converter/internal/model"
)

// LoadGrid 시트 하나를 타입 구분된 그리드로 읽는다
// 날짜 서식을 입은 숫자 셀은 날짜 셀로, 그 외 숫자는 숫자 셀로 구분한다.
func LoadGrid(f *excelize.File, sheet string) (model.Grid, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("시트 %q 읽기 실패: %w", sheet, err)
	}

	grid := make(model.Grid, len(rows))
	for r, row := range rows {
		cells := make([]model.Cell, len(row))
		for c, raw := range row {
			cells[c] = toCell(f, sheet, r+1, c+1, raw)
		}
		grid[r] = cells
	}
	return grid, nil
}

// SheetInfos 통합문서의 시트 목록 요약
func SheetInfos(f *excelize.File) []model.SheetInfo {
	names := f.GetSheetList()
	infos := make([]model.SheetInfo, 0, len(names))
	for _, name := range names {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		infos = append(infos, model.SheetInfo{Name: name, RowCount: len(rows)})
	}
	return infos
}

func toCell(f *excelize.File, sheet string, row, col int, raw string) model.Cell {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.Cell{}
	}

	if num, err := strconv.ParseFloat(raw, 64); err == nil {
		axis, err := excelize.CoordinatesToCellName(col, row)
		if err == nil && isDateStyled(f, sheet, axis) {
			if t, err := excelize.ExcelDateToTime(num, false); err == nil {
				return model.Cell{Kind: model.CellDate, Date: t}
			}
		}
		return model.Cell{Kind: model.CellNumber, Number: num}
	}

	return model.Cell{Kind: model.CellText, Text: raw}
}

// 엑셀 내장 날짜 서식 번호
var builtinDateNumFmt = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true,
	21: true, 22: true, 27: true, 28: true, 29: true, 30: true, 31: true,
	32: true, 33: true, 34: true, 35: true, 36: true, 45: true, 46: true,
	47: true, 50: true, 51: true, 52: true, 53: true, 54: true, 55: true,
	56: true, 57: true, 58: true,
}

// isDateStyled 숫자 셀이 날짜 서식을 입었는지 검사
func isDateStyled(f *excelize.File, sheet, axis string) bool {
	styleID, err := f.GetCellStyle(sheet, axis)
	if err != nil {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if builtinDateNumFmt[style.NumFmt] {
		return true
	}
	if style.CustomNumFmt != nil {
		return looksLikeDateFormat(*style.CustomNumFmt)
	}
	return false
}

// looksLikeDateFormat 사용자 지정 서식 코드가 날짜 꼴인지 대강 판별
func looksLikeDateFormat(code string) bool {
	code = strings.ToLower(code)
	if strings.ContainsAny(code, "#0?") {
		return false
	}
	return strings.Contains(code, "d") && (strings.Contains(code, "m") || strings.Contains(code, "y"))
}
