package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/irismonapark/Time-Sheet-Converter/internal/model"
)

// 손으로 만든 근태표는 헤더 위치가 제각각이라 상단 일부만 훑어서 찾는다.
const (
	headerScanRows = 15 // 헤더 라벨 탐색 범위
	dateScanRows   = 10 // 날짜 열 탐색 범위
	dateScanWidth  = 35 // 구분 열 오른쪽으로 살펴볼 열 수
	minDateCols    = 10 // 이만큼 찾으면 더 내려가지 않는다
)

// 헤더를 끝내 못 찾으면 쓰는 고정 기본값. 탐지 실패로 변환을 중단하지 않는다.
var defaultColumnMap = model.ColumnMap{
	GenderCol:   1,
	NameCol:     2,
	CategoryCol: 3,
	HeaderRow:   1,
}

var (
	reSlashDate = regexp.MustCompile(`^(\d{1,2})\s*/\s*(\d{1,2})$`)
	reBareDay   = regexp.MustCompile(`^(\d{1,2})$`)
)

// Locate 시트 상단을 훑어 헤더 열과 날짜 열을 찾는다
// 날짜 열은 날짜 셀 / "월/일" 문자 / 일자 숫자 세 가지 표기를 모두 허용하고,
// 우선순위 규칙 순서대로 먼저 맞은 해석을 쓴다.
func Locate(grid model.Grid) (model.ColumnMap, []model.DateHeader) {
	cm := locateHeader(grid)
	dates := locateDateColumns(grid, cm)
	return cm, dates
}

// locateHeader 성별/성명/구분 라벨 탐색. 먼저 찾은 위치가 이기고 중복 라벨은 무시한다.
func locateHeader(grid model.Grid) model.ColumnMap {
	cm := defaultColumnMap
	var genderFound, nameFound, categoryFound bool

	maxRow := grid.RowCount()
	if maxRow > headerScanRows {
		maxRow = headerScanRows
	}

	for row := 1; row <= maxRow; row++ {
		if genderFound && nameFound && categoryFound {
			break
		}
		width := len(grid[row-1])
		for col := 1; col <= width; col++ {
			label := strings.TrimSpace(CellText(grid.Cell(row, col)))
			switch {
			case label == "성별" && !genderFound:
				cm.GenderCol = col
				cm.HeaderRow = row
				genderFound = true
			case (label == "성명" || label == "이름") && !nameFound:
				cm.NameCol = col
				nameFound = true
			case label == "구분" && !categoryFound:
				cm.CategoryCol = col
				categoryFound = true
			}
		}
	}

	return cm
}

// locateDateColumns 구분 열 오른쪽에서 날짜 열을 찾는다. 열 하나에 일자 하나만 배정한다.
func locateDateColumns(grid model.Grid, cm model.ColumnMap) []model.DateHeader {
	found := make(map[int]int)

	maxRow := grid.RowCount()
	if maxRow > dateScanRows {
		maxRow = dateScanRows
	}

	for row := 1; row <= maxRow; row++ {
		if len(found) >= minDateCols {
			break
		}
		for col := cm.CategoryCol + 1; col <= cm.CategoryCol+dateScanWidth; col++ {
			if _, ok := found[col]; ok {
				continue
			}
			if day, ok := dayOfCell(grid.Cell(row, col)); ok {
				found[col] = day
			}
		}
	}

	headers := make([]model.DateHeader, 0, len(found))
	for col, day := range found {
		headers = append(headers, model.DateHeader{Col: col, Day: day})
	}
	// 날짜 열이 듬성듬성 흩어져 있을 수 있으므로 열 순서로 정렬해 돌려준다
	sort.Slice(headers, func(i, j int) bool { return headers[i].Col < headers[j].Col })
	return headers
}

// dayOfCell 셀 하나를 일자로 해석 시도
// 규칙 순서: 날짜 타입 셀 → "월/일" 문자 → 1~31 범위의 한두 자리 숫자
func dayOfCell(c model.Cell) (int, bool) {
	if c.Kind == model.CellDate {
		return c.Date.Day(), true
	}

	text := strings.TrimSpace(CellText(c))
	if text == "" {
		return 0, false
	}

	if m := reSlashDate.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[2])
		if day >= 1 && day <= 31 {
			return day, true
		}
		return 0, false
	}

	if m := reBareDay.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		if day >= 1 && day <= 31 {
			return day, true
		}
	}

	return 0, false
}
