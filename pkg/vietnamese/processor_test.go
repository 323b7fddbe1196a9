package vietnamese

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "full diacritics",
			in:   "Học viện Kỹ thuật Quân sự",
			want: "hoc vien ky thuat quan su",
		},
		{
			name: "already plain",
			in:   "hoc vien hai quan",
			want: "hoc vien hai quan",
		},
		{
			name: "collapses whitespace",
			in:   "  Điểm   chuẩn  ",
			want: "diem chuan",
		},
		{
			name: "mixed case with đ",
			in:   "Quân Đội",
			want: "quan doi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpandAbbreviations(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "school abbreviation",
			in:   "điểm chuẩn hvktqs",
			want: "điểm chuẩn học viện kỹ thuật quân sự",
		},
		{
			name: "no abbreviation",
			in:   "điểm chuẩn năm 2024",
			want: "điểm chuẩn năm 2024",
		},
		{
			name: "word boundary respected",
			in:   "hvktqsx should not expand",
			want: "hvktqsx should not expand",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandAbbreviations(tt.in); got != tt.want {
				t.Errorf("ExpandAbbreviations(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractYear(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"điểm chuẩn năm 2024", 2024, true},
		{"năm 24 thì sao", 2024, true},
		{"không có năm nào", 0, false},
	}

	for _, tt := range tests {
		got, ok := ExtractYear(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ExtractYear(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestExtractScore(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"tôi được 24 điểm khối A", 24, true},
		{"26,5 điểm có đỗ không", 26.5, true},
		{"điểm chuẩn là bao nhiêu", 0, false},
		{"năm 2024", 0, false}, // year must not be read as a score
	}

	for _, tt := range tests {
		got, ok := ExtractScore(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ExtractScore(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestExtractExamBlock(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"điểm chuẩn khối A01", "A01", true},
		{"24 điểm khối A thì sao", "A00", true},
		{"khoi b co duoc khong", "B00", true},
		{"điểm chuẩn năm 2024", "", false},
	}

	for _, tt := range tests {
		got, ok := ExtractExamBlock(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ExtractExamBlock(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
