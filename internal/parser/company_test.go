package parser

import "testing"

// brokenLatin1 UTF-8 문자열을 라틴1로 잘못 디코딩한 업로드 파일명을 흉내낸다
func brokenLatin1(s string) string {
	b := []byte(s)
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}

func TestInferCompany(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     string
	}{
		{"성심_근태표.xlsx", "성심"},
		{"성심.xlsx", "성심"},                   // 밑줄이 없으면 파일명 전체
		{"대한건설_2024년 3월 근태.xlsx", "대한건설"},
		{"/tmp/uploads/성심_근태표.xlsx", "성심"}, // 경로가 붙어 있어도 파일명만 본다
		{"ACME_근태표.xlsx", DefaultCompany},  // 한글 음절이 아니면 기본값
		{"성심2_근태표.xlsx", DefaultCompany},   // 숫자 섞임도 불인정
		{"_근태표.xlsx", DefaultCompany},
		{"", DefaultCompany},
	}

	for _, tt := range tests {
		if got := InferCompany(tt.filename, ""); got != tt.want {
			t.Fatalf("InferCompany(%q) = %s, want %s", tt.filename, got, tt.want)
		}
	}
}

func TestInferCompany_MojibakeRepair(t *testing.T) {
	t.Parallel()

	// 멀티파트 업로드에서 라틴1로 깨져 들어온 한글 파일명 복원
	broken := brokenLatin1("성심") + "_근태표.xlsx"
	if got := InferCompany(broken, ""); got != "성심" {
		t.Fatalf("InferCompany(깨진 파일명) = %s, want 성심", got)
	}
}

func TestInferCompany_CustomFallback(t *testing.T) {
	t.Parallel()

	if got := InferCompany("ACME_근태표.xlsx", "기본사"); got != "기본사" {
		t.Fatalf("InferCompany() = %s, want 기본사", got)
	}
}
