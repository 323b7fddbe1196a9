package sqlagent

import "admission-advisor-be/internal/entity"

// DefaultExamples back up the few-shot selection when the example store
// is empty or unreachable. They double as the seed set.
var DefaultExamples = []*entity.SQLExample{
	{
		Question: "Điểm chuẩn Học viện Kỹ thuật Quân sự năm 2024?",
		SQL: `SELECT ten_truong, ten_nganh, ma_khoi, diem_chuan, chi_tieu
FROM view_tra_cuu_diem
WHERE ten_khong_dau ILIKE '%hoc vien ky thuat quan su%' AND nam = 2024
ORDER BY ten_nganh, ma_khoi
LIMIT 50;`,
	},
	{
		Question: "Tôi thi được 26.5 điểm thì có đỗ Học viện Hải quân năm 2025 không?",
		SQL: `SELECT ten_truong, ten_nganh, ma_khoi, diem_chuan, chi_tieu, nam
FROM view_tra_cuu_diem
WHERE ten_khong_dau ILIKE '%hoc vien hai quan%' AND nam = 2025
ORDER BY ten_nganh, ma_khoi
LIMIT 50;`,
	},
	{
		Question: "Với 25 điểm khối A, tôi có thể vào trường nào năm 2024?",
		SQL: `SELECT DISTINCT ten_truong, ten_nganh, ma_khoi, diem_chuan
FROM view_tra_cuu_diem
WHERE diem_chuan <= 25 AND nam = 2024
ORDER BY diem_chuan DESC
LIMIT 20;`,
	},
	{
		Question: "So sánh điểm chuẩn các trường năm 2023 và 2024?",
		SQL: `SELECT ten_truong, ten_nganh, ma_khoi,
    MAX(CASE WHEN nam = 2023 THEN diem_chuan END) as diem_2023,
    MAX(CASE WHEN nam = 2024 THEN diem_chuan END) as diem_2024
FROM view_tra_cuu_diem
WHERE nam IN (2023, 2024)
GROUP BY ten_truong, ten_nganh, ma_khoi
ORDER BY ten_truong, ten_nganh
LIMIT 50;`,
	},
}
