package store

import (
	"database/sql"
	"fmt"
)

// GetConfig 설정값 조회
func (s *Store) GetConfig(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM config WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("설정 키 없음: %s", key)
		}
		return "", err
	}
	return value, nil
}

// SetConfig 설정값 저장
func (s *Store) SetConfig(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO config (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = ?, updated_at = CURRENT_TIMESTAMP
	`, key, value, value)
	return err
}

// GetLastPeriod 마지막으로 변환한 연월 ("YY", "MM")
func (s *Store) GetLastPeriod() (year, month string, err error) {
	year, err = s.GetConfig("last_year")
	if err != nil {
		return "", "", err
	}
	month, err = s.GetConfig("last_month")
	if err != nil {
		return "", "", err
	}
	return year, month, nil
}

// SetLastPeriod 마지막으로 변환한 연월 저장
func (s *Store) SetLastPeriod(year, month string) error {
	if err := s.SetConfig("last_year", year); err != nil {
		return err
	}
	return s.SetConfig("last_month", month)
}
