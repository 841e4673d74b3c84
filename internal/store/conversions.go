package store

import (
	"fmt"
	"time"

	"github.com/irismonapark/Time-Sheet-Converter/internal/model"
)

// Conversion 변환 이력 한 건
type Conversion struct {
	ID         int64     `json:"id"`
	Filename   string    `json:"filename"`
	SheetName  string    `json:"sheetName"`
	Company    string    `json:"company"`
	Year       string    `json:"year"`
	Month      string    `json:"month"`
	RowCount   int       `json:"rowCount"`
	GrandTotal int64     `json:"grandTotal"`
	OutputName string    `json:"outputName"`
	OutputPath string    `json:"outputPath"`
	CreatedAt  time.Time `json:"createdAt"`
}

// InsertConversion 변환 결과 기록
func (s *Store) InsertConversion(report *model.ConvertReport) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO conversions
			(filename, sheet_name, company, year, month, row_count, grand_total, output_name, output_path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, report.Filename, report.SheetName, report.Company,
		report.Period.Year, report.Period.Month,
		report.RowCount, report.GrandTotal, report.OutputName, report.OutputPath)
	if err != nil {
		return 0, fmt.Errorf("변환 이력 기록 실패: %w", err)
	}
	return res.LastInsertId()
}

// ListConversions 최근 변환 이력 (최신순)
func (s *Store) ListConversions(limit int) ([]*Conversion, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, filename, sheet_name, company, year, month,
		       row_count, grand_total, output_name, output_path, created_at
		FROM conversions
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*Conversion, 0)
	for rows.Next() {
		var c Conversion
		if err := rows.Scan(&c.ID, &c.Filename, &c.SheetName, &c.Company,
			&c.Year, &c.Month, &c.RowCount, &c.GrandTotal,
			&c.OutputName, &c.OutputPath, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// CountConversions 누적 변환 건수
func (s *Store) CountConversions() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM conversions`).Scan(&n)
	return n, err
}

// LastConversionTime 마지막 변환 시각. 이력이 없으면 zero time.
func (s *Store) LastConversionTime() (time.Time, error) {
	var t time.Time
	err := s.db.QueryRow(`SELECT created_at FROM conversions ORDER BY created_at DESC, id DESC LIMIT 1`).Scan(&t)
	if err != nil {
		return time.Time{}, nil
	}
	return t, nil
}
