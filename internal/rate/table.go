package rate

import (
	"github.com/shopspring/decimal"

	"github.com/irismonapark/Time-Sheet-Converter/internal/model"
)

// 주특/주휴 수당의 기준 단가 (원)
const (
	WeekendSpecialBase int64 = 171800
	WeeklyHolidayBase  int64 = 99600
)

// Entry 요율표 한 칸: 공수와 단가
type Entry struct {
	Units decimal.Decimal
	Price int64
}

// 인정되는 기본 근무시간은 8/6/2.5/1 네 가지뿐이다.
// 시간을 1000배한 정수를 키로 써서 float 비교를 피한다.
var canonicalUnits = map[int64]decimal.Decimal{
	8000: decimal.NewFromInt(1),
	6000: decimal.RequireFromString("0.75"),
	2500: decimal.RequireFromString("0.3125"),
	1000: decimal.RequireFromString("0.125"),
}

// 성별 일당 단가 (8시간 만근 기준)
var dayPrice = map[string]int64{
	model.GenderMale:   117480,
	model.GenderFemale: 106260,
}

func hourKey(hours float64) int64 {
	return int64(hours * 1000)
}

// IsCanonical 기본 근무로 인정되는 시간 값인지 검사
func IsCanonical(hours float64) bool {
	_, ok := canonicalUnits[hourKey(hours)]
	return ok
}

// Lookup (성별, 시간) 요율 조회
// 인정 시간이 아니면 0 공수/0 단가를 돌려준다. 오류가 아니라 정의된 폴백이다.
func Lookup(gender string, hours float64) Entry {
	units, ok := canonicalUnits[hourKey(hours)]
	if !ok {
		return Entry{Units: decimal.Zero}
	}
	price, ok := dayPrice[gender]
	if !ok {
		return Entry{Units: decimal.Zero}
	}
	return Entry{Units: units, Price: price}
}

// UnitsFor 시간을 공수로 환산
// 인정 시간 네 가지는 표의 값을 쓰고, 그 밖의 시간은 8시간 대비 비율로 본다.
// 주특/주휴 계산에서만 쓰이는 선형 폴백이다.
func UnitsFor(hours float64) decimal.Decimal {
	if units, ok := canonicalUnits[hourKey(hours)]; ok {
		return units
	}
	return decimal.NewFromFloat(hours).Div(decimal.NewFromInt(8))
}

// SurchargeTotal 기준 단가 × 공수, 정수 원 단위 반올림
func SurchargeTotal(base int64, hours float64) int64 {
	return decimal.NewFromInt(base).Mul(UnitsFor(hours)).Round(0).IntPart()
}

// RoundWon 공수 × 단가를 정수 원으로 반올림
func RoundWon(units decimal.Decimal, price int64) int64 {
	return units.Mul(decimal.NewFromInt(price)).Round(0).IntPart()
}

// FormatUnits 공수 표시 문자열
// 소수 끝의 0은 떼고 유효 소수는 그대로 남긴다. (1 → "1", 0.3125 → "0.3125")
func FormatUnits(units decimal.Decimal) string {
	return units.String()
}
