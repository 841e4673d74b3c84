package parser

import (
	"errors"
	"sort"
	"strings"

	"github.com/irismonapark/Time-Sheet-Converter/internal/model"
	"github.com/irismonapark/Time-Sheet-Converter/internal/rate"
)

// ErrNoData 재구성 결과가 비었을 때의 유일한 시트 단위 실패
var ErrNoData = errors.New("시트에서 근태 데이터를 찾지 못했습니다")

// workerAccumulator 근로자 한 명의 구분별 일자→시간 누적
// 키는 (성별, 성명) 조합이고 order는 시트에서 처음 등장한 순서다.
type workerAccumulator struct {
	gender string
	name   string
	order  int

	basic          map[int]float64
	overtime       map[int]float64
	weekendSpecial map[int]float64
	weeklyHoliday  map[int]float64
}

type workerKey struct {
	gender string
	name   string
}

func newWorkerAccumulator(gender, name string, order int) *workerAccumulator {
	return &workerAccumulator{
		gender:         gender,
		name:           name,
		order:          order,
		basic:          make(map[int]float64),
		overtime:       make(map[int]float64),
		weekendSpecial: make(map[int]float64),
		weeklyHoliday:  make(map[int]float64),
	}
}

// Reconstruct 헤더 아래 데이터 행을 걸어 근로자×일자 근태 행을 재구성한다
//
// 성별/성명 칸은 병합 셀 탓에 비어 있는 경우가 많아 마지막으로 본 값을
// 끌고 내려간다(forward-fill). 성명이 아직 없거나 구분 코드가 네 가지에
// 들지 않는 행은 통째로 건너뛴다. 셀 단위 오류는 0으로 흡수하고 중단하지
// 않으며, 전체 결과가 비었을 때만 ErrNoData 를 돌려준다.
func Reconstruct(grid model.Grid, cm model.ColumnMap, dates []model.DateHeader) ([]model.AttendanceRow, error) {
	workers := make(map[workerKey]*workerAccumulator)
	ordered := make([]*workerAccumulator, 0)

	currentGender := model.GenderMale
	currentName := ""

	for row := cm.HeaderRow + 1; row <= grid.RowCount(); row++ {
		if t := strings.TrimSpace(CellText(grid.Cell(row, cm.GenderCol))); t != "" {
			currentGender = t
		}
		if t := strings.TrimSpace(CellText(grid.Cell(row, cm.NameCol))); t != "" {
			currentName = t
		}
		if currentName == "" {
			continue
		}

		category, ok := model.RecognizeCategory(strings.TrimSpace(CellText(grid.Cell(row, cm.CategoryCol))))
		if !ok {
			continue
		}

		key := workerKey{gender: currentGender, name: currentName}
		acc := workers[key]
		if acc == nil {
			acc = newWorkerAccumulator(currentGender, currentName, len(ordered))
			workers[key] = acc
			ordered = append(ordered, acc)
		}

		for _, dh := range dates {
			hours := CellNumber(grid.Cell(row, dh.Col))
			if hours <= 0 {
				continue
			}
			switch category {
			case model.CategoryBasic:
				// 기본 근무는 요율표에 있는 시간 값만 인정한다.
				// 그 밖의 값은 기록하지 않고 조용히 버린다.
				if rate.IsCanonical(hours) {
					acc.basic[dh.Day] += hours
				}
			case model.CategoryOvertime:
				acc.overtime[dh.Day] += hours
			case model.CategoryWeekendSpecial:
				acc.weekendSpecial[dh.Day] += hours
			case model.CategoryWeeklyHoliday:
				acc.weeklyHoliday[dh.Day] += hours
			}
		}
	}

	type orderedRow struct {
		order int
		row   model.AttendanceRow
	}
	rows := make([]orderedRow, 0)

	for _, acc := range ordered {
		// 연장만 있는 일자는 내보내지 않는다. 연장은 항상 다른 구분에 붙는 보조 수치다.
		days := make(map[int]bool)
		for d := range acc.basic {
			days[d] = true
		}
		for d := range acc.weekendSpecial {
			days[d] = true
		}
		for d := range acc.weeklyHoliday {
			days[d] = true
		}

		for day := range days {
			basic := acc.basic[day]
			weekendSpecial := acc.weekendSpecial[day]
			weeklyHoliday := acc.weeklyHoliday[day]
			if basic <= 0 && weekendSpecial <= 0 && weeklyHoliday <= 0 {
				continue
			}
			rows = append(rows, orderedRow{
				order: acc.order,
				row: model.AttendanceRow{
					Gender:         acc.gender,
					Name:           acc.name,
					Day:            day,
					Basic:          basic,
					Overtime:       acc.overtime[day],
					WeekendSpecial: weekendSpecial,
					WeeklyHoliday:  weeklyHoliday,
				},
			})
		}
	}

	// 일자 오름차순, 같은 일자는 근로자 등장 순서. 이름 가나다순이 아니라
	// 원본 시트의 근로자 순서를 그대로 따른다.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].row.Day != rows[j].row.Day {
			return rows[i].row.Day < rows[j].row.Day
		}
		return rows[i].order < rows[j].order
	})

	if len(rows) == 0 {
		return nil, ErrNoData
	}

	out := make([]model.AttendanceRow, len(rows))
	for i, r := range rows {
		out[i] = r.row
	}
	return out, nil
}
