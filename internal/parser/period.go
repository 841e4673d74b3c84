package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/irismonapark/Time-Sheet-Converter/internal/model"
)

// 시트 이름에서 연월을 뽑는 패턴. 위에서 아래로 먼저 맞는 것을 쓴다.
// "2403월" → "24년 3월" → "2024년 3월" → "3월"(올해로 가정) → 현재 연월.
var (
	rePeriodCompact   = regexp.MustCompile(`(\d{2})(\d{2})월`)
	rePeriodShort     = regexp.MustCompile(`(\d{2})년\s*(\d{1,2})월`)
	rePeriodLong      = regexp.MustCompile(`(\d{4})년\s*(\d{1,2})월`)
	rePeriodMonthOnly = regexp.MustCompile(`(\d{1,2})월`)
)

// InferPeriod 시트 이름에서 변환 대상 연월을 추론한다
// 어느 패턴에도 맞지 않으면 현재 연월로 떨어진다.
func InferPeriod(sheetName string, now time.Time) model.Period {
	if m := rePeriodCompact.FindStringSubmatch(sheetName); m != nil {
		if p, ok := makePeriod(m[1], m[2]); ok {
			return p
		}
	}
	if m := rePeriodShort.FindStringSubmatch(sheetName); m != nil {
		if p, ok := makePeriod(m[1], m[2]); ok {
			return p
		}
	}
	if m := rePeriodLong.FindStringSubmatch(sheetName); m != nil {
		// 4자리 연도는 뒤 2자리만 쓴다
		if p, ok := makePeriod(m[1][2:], m[2]); ok {
			return p
		}
	}
	if m := rePeriodMonthOnly.FindStringSubmatch(sheetName); m != nil {
		if p, ok := makePeriod(now.Format("06"), m[1]); ok {
			return p
		}
	}
	return model.Period{
		Year:  now.Format("06"),
		Month: fmt.Sprintf("%02d", int(now.Month())),
	}
}

// makePeriod 월이 1~12 범위일 때만 확정한다. 아니면 다음 패턴으로 넘어간다.
func makePeriod(year, month string) (model.Period, bool) {
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return model.Period{}, false
	}
	return model.Period{Year: year, Month: fmt.Sprintf("%02d", m)}, true
}
