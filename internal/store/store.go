package store

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store SQLite 저장소. 변환 이력과 설정만 담는다.
type Store struct {
	db *sql.DB
}

// New Store 생성
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("데이터 디렉터리 생성 실패: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("데이터베이스 열기 실패: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}

	// SQLite는 단일 연결 권장
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("스키마 초기화 실패: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("schema.sql 읽기 실패: %w", err)
	}
	if _, err := s.db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("스키마 실행 실패: %w", err)
	}
	return nil
}

// Close 연결 종료
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DB 원본 연결 (테스트용)
func (s *Store) DB() *sql.DB {
	return s.db
}
