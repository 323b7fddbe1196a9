package sqlagent

import (
	"testing"
)

func TestExtractSQL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain select",
			in:   "SELECT * FROM view_tra_cuu_diem WHERE nam = 2024;",
			want: "SELECT * FROM view_tra_cuu_diem WHERE nam = 2024;",
		},
		{
			name: "fenced sql block",
			in:   "```sql\nSELECT ten_nganh FROM view_tra_cuu_diem;\n```",
			want: "SELECT ten_nganh FROM view_tra_cuu_diem;",
		},
		{
			name: "reasoning tags stripped",
			in:   "<think>cần lọc theo năm</think>SELECT nam FROM view_tra_cuu_diem WHERE nam = 2025;",
			want: "SELECT nam FROM view_tra_cuu_diem WHERE nam = 2025;",
		},
		{
			name: "prose around statement",
			in:   "Đây là câu truy vấn:\nSELECT diem_chuan FROM view_tra_cuu_diem WHERE nam = 2024;\nHy vọng hữu ích.",
			want: "SELECT diem_chuan FROM view_tra_cuu_diem WHERE nam = 2024;",
		},
		{
			name: "missing semicolon gets one",
			in:   "SELECT diem_chuan FROM view_tra_cuu_diem",
			want: "SELECT diem_chuan FROM view_tra_cuu_diem;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractSQL(tt.in); got != tt.want {
				t.Errorf("ExtractSQL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateSQL(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		wantErr bool
	}{
		{"plain select", "SELECT * FROM view_tra_cuu_diem;", false},
		{"lowercase select", "select diem_chuan from view_tra_cuu_diem;", false},
		{"drop table", "DROP TABLE truong;", true},
		{"delete", "DELETE FROM diem_chuan;", true},
		{"update disguised in select", "SELECT 1; UPDATE truong SET active = false;", true},
		{"comment injection", "SELECT * FROM view_tra_cuu_diem; -- comment", true},
		{"block comment", "SELECT /* hidden */ * FROM view_tra_cuu_diem;", true},
		{"not a select", "WITH x AS (SELECT 1) SELECT * FROM x;", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSQL(tt.sql)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSQL(%q) error = %v, wantErr %v", tt.sql, err, tt.wantErr)
			}
		})
	}
}

func TestEnsureLimit(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "appends limit",
			sql:  "SELECT * FROM view_tra_cuu_diem;",
			want: "SELECT * FROM view_tra_cuu_diem LIMIT 50;",
		},
		{
			name: "existing limit untouched",
			sql:  "SELECT * FROM view_tra_cuu_diem LIMIT 5;",
			want: "SELECT * FROM view_tra_cuu_diem LIMIT 5;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnsureLimit(tt.sql, 50); got != tt.want {
				t.Errorf("EnsureLimit() = %q, want %q", got, tt.want)
			}
		})
	}
}
