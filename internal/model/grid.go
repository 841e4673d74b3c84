package model

import "time"

// CellKind 셀 값의 종류
type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellText
	CellDate
)

// Cell 읽기 전용 셀 값
// 원본 시트에서 읽은 그대로를 담으며 변환기는 이 값을 수정하지 않는다.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Date   time.Time
}

// IsEmpty 빈 셀 여부
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// Grid 시트 하나를 메모리에 올린 2차원 셀 배열
// 행/열 인덱스는 엑셀과 같이 1부터 시작한다.
type Grid [][]Cell

// RowCount 행 수
func (g Grid) RowCount() int {
	return len(g)
}

// Cell (row, col) 위치의 셀. 범위를 벗어나면 빈 셀을 돌려준다.
func (g Grid) Cell(row, col int) Cell {
	if row < 1 || row > len(g) {
		return Cell{}
	}
	r := g[row-1]
	if col < 1 || col > len(r) {
		return Cell{}
	}
	return r[col-1]
}
