package parser

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DefaultCompany 회사명을 알아내지 못했을 때의 기본 표시명
const DefaultCompany = "미지정"

// InferCompany 업로드 파일명에서 회사명을 뽑는다
//
// 파일명은 "회사명_근태표.xlsx" 꼴을 가정하고 첫 밑줄 앞을 취한다.
// 멀티파트 업로드 과정에서 UTF-8 파일명이 라틴1로 잘못 해석되어 오는
// 경우가 있어 바이트 복원을 먼저 시도하고, 안 되면 원문을 그대로 쓴다.
// 결과가 한글 음절로만 이루어진 경우에만 회사명으로 인정한다.
func InferCompany(filename, fallback string) string {
	if fallback == "" {
		fallback = DefaultCompany
	}

	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	name, _, _ := strings.Cut(base, "_")
	name = strings.TrimSpace(name)

	if repaired := repairMojibake(name); isHangulSyllables(repaired) {
		return repaired
	}
	if isHangulSyllables(name) {
		return name
	}
	return fallback
}

// repairMojibake 라틴1로 깨진 문자열을 원래 UTF-8 바이트로 복원
func repairMojibake(s string) string {
	repaired, _, err := transform.String(charmap.ISO8859_1.NewEncoder(), s)
	if err != nil || !utf8.ValidString(repaired) {
		return ""
	}
	return repaired
}

// isHangulSyllables 한글 음절(가~힣)로만 이루어진 비어 있지 않은 문자열인지
func isHangulSyllables(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '가' || r > '힣' {
			return false
		}
	}
	return true
}
