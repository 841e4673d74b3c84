package model

import (
	"fmt"
	"strconv"
	"time"
)

// 성별 표기. 근태표의 성별 칸이 비어 있으면 남으로 본다.
const (
	GenderMale   = "남"
	GenderFemale = "여"
)

// Category 근태 구분 코드
type Category string

const (
	CategoryBasic          Category = "기본" // 기본 근무
	CategoryOvertime       Category = "연장" // 연장 근무
	CategoryWeekendSpecial Category = "주특" // 주말 특근
	CategoryWeeklyHoliday  Category = "주휴" // 주휴 수당
)

// RecognizeCategory 구분 칸 문자열을 코드로 변환
// 네 가지 코드 외의 값은 해당 행 전체를 건너뛰는 필터 규칙으로 쓰인다.
func RecognizeCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryBasic, CategoryOvertime, CategoryWeekendSpecial, CategoryWeeklyHoliday:
		return Category(s), true
	default:
		return "", false
	}
}

// ColumnMap 시트에서 찾아낸 헤더 위치
// 찾지 못한 항목은 고정 기본값으로 대체되므로 항상 유효한 인덱스를 가진다.
type ColumnMap struct {
	GenderCol   int `json:"genderCol"`
	NameCol     int `json:"nameCol"`
	CategoryCol int `json:"categoryCol"`
	HeaderRow   int `json:"headerRow"`
}

// DateHeader 날짜 열 하나 (열 번호와 그 열이 가리키는 일자)
type DateHeader struct {
	Col int `json:"col"`
	Day int `json:"day"` // 1-31
}

// AttendanceRow 재구성된 근태 한 건 (근로자 × 일자)
type AttendanceRow struct {
	Gender         string  `json:"gender"`
	Name           string  `json:"name"`
	Day            int     `json:"day"`
	Basic          float64 `json:"basic"`
	Overtime       float64 `json:"overtime"`
	WeekendSpecial float64 `json:"weekendSpecial"`
	WeeklyHoliday  float64 `json:"weeklyHoliday"`
}

// Period 변환 대상 연월. 연도는 2자리, 월은 0을 채운 2자리 문자열.
type Period struct {
	Year  string `json:"year"`
	Month string `json:"month"`
}

// YearFull 4자리 연도
func (p Period) YearFull() int {
	y, _ := strconv.Atoi(p.Year)
	return 2000 + y
}

// MonthInt 월 숫자
func (p Period) MonthInt() int {
	m, _ := strconv.Atoi(p.Month)
	return m
}

// String "YY-MM"
func (p Period) String() string {
	return fmt.Sprintf("%s-%s", p.Year, p.Month)
}

// SheetInfo 업로드된 통합문서의 시트 요약
type SheetInfo struct {
	Name     string `json:"name"`
	RowCount int    `json:"rowCount"`
}

// ConvertReport 변환 결과 요약
type ConvertReport struct {
	Filename   string        `json:"filename"`
	SheetName  string        `json:"sheetName"`
	Company    string        `json:"company"`
	Period     Period        `json:"period"`
	RowCount   int           `json:"rowCount"`
	GrandTotal int64         `json:"grandTotal"`
	OutputName string        `json:"outputName"`
	OutputPath string        `json:"outputPath"`
	Duration   time.Duration `json:"duration"`
}
