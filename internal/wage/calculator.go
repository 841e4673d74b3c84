package wage

import (
	"github.com/shopspring/decimal"

	"github.com/irismonapark/Time-Sheet-Converter/internal/model"
	"github.com/irismonapark/Time-Sheet-Converter/internal/rate"
)

// Payment 근태 한 행의 금액 계산 결과
type Payment struct {
	WorkUnits           decimal.Decimal `json:"workUnits"`           // 기본 근무 공수
	UnitPrice           int64           `json:"unitPrice"`           // 기본 근무 단가
	BasicTotal          int64           `json:"basicTotal"`          // 기본 금액
	WeekendSpecialTotal int64           `json:"weekendSpecialTotal"` // 주특 금액
	WeeklyHolidayTotal  int64           `json:"weeklyHolidayTotal"`  // 주휴 금액
	GrandTotal          int64           `json:"grandTotal"`          // 합계
}

// Price 근태 행 하나를 금액으로 환산한다
//
// 기본 금액은 (성별, 시간) 요율표의 공수×단가이고, 표에 없는 시간은
// 0 공수/0 단가로 계산된다. 주특/주휴는 각각의 기준 단가에 공수를 곱해
// 따로 구한다. 연장 시간은 출력에 실어 나르기만 하고 금액에는 넣지 않는다.
func Price(row model.AttendanceRow) Payment {
	var p Payment
	p.WorkUnits = decimal.Zero

	if row.Basic > 0 {
		entry := rate.Lookup(row.Gender, row.Basic)
		p.WorkUnits = entry.Units
		p.UnitPrice = entry.Price
		p.BasicTotal = rate.RoundWon(entry.Units, entry.Price)
	}

	if row.WeekendSpecial > 0 {
		p.WeekendSpecialTotal = rate.SurchargeTotal(rate.WeekendSpecialBase, row.WeekendSpecial)
	}
	if row.WeeklyHoliday > 0 {
		p.WeeklyHolidayTotal = rate.SurchargeTotal(rate.WeeklyHolidayBase, row.WeeklyHoliday)
	}

	p.GrandTotal = p.BasicTotal + p.WeekendSpecialTotal + p.WeeklyHolidayTotal
	return p
}

// FormatWorkUnits 공수 표시 문자열. 기본 근무가 없으면 빈 문자열.
func (p Payment) FormatWorkUnits() string {
	if p.UnitPrice == 0 && p.WorkUnits.IsZero() {
		return ""
	}
	return rate.FormatUnits(p.WorkUnits)
}
