package calendar

import "testing"

func TestHolidays_Lunar2025January(t *testing.T) {
	t.Parallel()

	holidays := Holidays(2025, 1)

	// 신정 + 설 연휴(임시공휴일 포함)
	for _, day := range []int{1, 27, 28, 29, 30} {
		if !holidays[day] {
			t.Fatalf("2025년 1월 %d일이 공휴일로 분류되지 않았습니다", day)
		}
	}
	if holidays[15] {
		t.Fatalf("2025년 1월 15일은 공휴일이 아닙니다")
	}
}

func TestHolidays_Solar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year  int
		month int
		days  []int
	}{
		{2024, 1, []int{1}},
		{2024, 3, []int{1}},
		{2024, 5, []int{5, 6, 15}}, // 어린이날 + 대체공휴일 + 부처님오신날
		{2025, 10, []int{3, 6, 7, 8, 9}},
		{2024, 12, []int{25}},
	}

	for _, tt := range tests {
		holidays := Holidays(tt.year, tt.month)
		for _, day := range tt.days {
			if !holidays[day] {
				t.Fatalf("%d년 %d월 %d일이 공휴일로 분류되지 않았습니다", tt.year, tt.month, day)
			}
		}
	}
}

func TestHolidays_UnsupportedYear(t *testing.T) {
	t.Parallel()

	// 음력 표가 없는 연도는 양력 공휴일만 남는다
	holidays := Holidays(2023, 1)
	if !holidays[1] {
		t.Fatalf("2023년 1월 1일(신정)이 빠졌습니다")
	}
	if holidays[22] {
		t.Fatalf("음력 표가 없는 연도에서 설날이 나오면 안 됩니다")
	}

	if got := Holidays(2023, 9); len(got) != 0 {
		t.Fatalf("2023년 9월 공휴일 = %v, want 없음", got)
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year, month, day         int
		wantSaturday, wantSunday bool
	}{
		{2024, 3, 1, false, false}, // 금요일
		{2024, 3, 2, true, false},
		{2024, 3, 3, false, true},
		{2025, 1, 4, true, false},
		{2025, 1, 6, false, false},
	}

	for _, tt := range tests {
		saturday, sunday := Classify(tt.year, tt.month, tt.day)
		if saturday != tt.wantSaturday || sunday != tt.wantSunday {
			t.Fatalf("Classify(%d, %d, %d) = (%v, %v), want (%v, %v)",
				tt.year, tt.month, tt.day, saturday, sunday, tt.wantSaturday, tt.wantSunday)
		}
	}
}

func TestIsHoliday(t *testing.T) {
	t.Parallel()

	if !IsHoliday(2025, 1, 29) {
		t.Fatalf("2025년 설날이 공휴일로 분류되지 않았습니다")
	}
	if IsHoliday(2025, 1, 2) {
		t.Fatalf("2025년 1월 2일은 공휴일이 아닙니다")
	}
}
