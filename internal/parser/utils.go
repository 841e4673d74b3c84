package parser

import (
	"strconv"
	"strings"

	"github.com/irismonapark/Time-Sheet-Converter/internal/model"
)

// CellText 셀을 문자열로 렌더링
// 날짜 셀은 "월/일" 형태로 내려 날짜 열 탐지 패턴과 맞춘다.
func CellText(c model.Cell) string {
	switch c.Kind {
	case model.CellText:
		return c.Text
	case model.CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case model.CellDate:
		return c.Date.Format("1/2")
	default:
		return ""
	}
}

// CellNumber 셀을 숫자로 강제 변환
// 숫자 셀은 그대로, 문자 셀은 float 파싱, 파싱 불가/빈 셀은 0으로 둔다.
// 셀 하나가 깨져 있어도 행이나 시트 전체를 중단하지 않기 위한 규칙이다.
func CellNumber(c model.Cell) float64 {
	switch c.Kind {
	case model.CellNumber:
		return c.Number
	case model.CellText:
		s := strings.ReplaceAll(strings.TrimSpace(c.Text), ",", "")
		f, _ := strconv.ParseFloat(s, 64)
		return f
	default:
		return 0
	}
}
