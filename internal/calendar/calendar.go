package calendar

import "time"

// 양력 고정 공휴일 (월 → 일). 연도와 무관하다.
var solarHolidays = map[int][]int{
	1:  {1},    // 신정
	3:  {1},    // 삼일절
	5:  {5},    // 어린이날
	6:  {6},    // 현충일
	8:  {15},   // 광복절
	10: {3, 9}, // 개천절, 한글날
	12: {25},   // 성탄절
}

// 음력 공휴일과 대체/임시 공휴일 (연도 → 월 → 일)
// 음력 날짜는 해마다 달라 연도별 표로 둔다. 지원 연도는 2024, 2025 두 해뿐이고
// 그 밖의 연도는 양력 고정 공휴일만 적용된다.
var lunarHolidays = map[int]map[int][]int{
	2024: {
		2:  {9, 10, 11, 12}, // 설날 연휴 + 대체공휴일
		4:  {10},            // 국회의원 선거일
		5:  {6, 15},         // 어린이날 대체공휴일, 부처님오신날
		9:  {16, 17, 18},    // 추석 연휴
		10: {1},             // 국군의날 임시공휴일
	},
	2025: {
		1:  {27, 28, 29, 30}, // 임시공휴일 + 설날 연휴
		3:  {3},              // 삼일절 대체공휴일
		5:  {6},              // 부처님오신날/어린이날 대체공휴일
		6:  {3},              // 대통령 선거일
		10: {6, 7, 8},        // 추석 연휴 + 대체공휴일
	},
}

// Holidays (연, 월)의 공휴일 일자 집합
func Holidays(year, month int) map[int]bool {
	days := make(map[int]bool)
	for _, d := range solarHolidays[month] {
		days[d] = true
	}
	if byMonth, ok := lunarHolidays[year]; ok {
		for _, d := range byMonth[month] {
			days[d] = true
		}
	}
	return days
}

// IsHoliday 해당 일자가 공휴일인지
func IsHoliday(year, month, day int) bool {
	return Holidays(year, month)[day]
}

// Classify 요일 판정 (토요일, 일요일)
func Classify(year, month, day int) (saturday, sunday bool) {
	wd := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()
	return wd == time.Saturday, wd == time.Sunday
}
