package main

import (
	"context"
	"log"

	"admission-advisor-be/internal/config"
	"admission-advisor-be/internal/model"
	"admission-advisor-be/internal/repository/implementation"
	"admission-advisor-be/pkg/ai/router"
	"admission-advisor-be/pkg/database"
	"admission-advisor-be/pkg/embedding"
	"admission-advisor-be/pkg/sqlagent"
	"admission-advisor-be/pkg/vietnamese"

	"github.com/fatih/color"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	color.Cyan("🚀 Seeding admission advisor reference data\n")

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	var embedder embedding.EmbeddingProvider
	switch cfg.Ai.EmbeddingProvider {
	case "ollama":
		color.Yellow("Using Ollama embeddings (%s)", cfg.Ai.OllamaModel)
		embedder = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel, cfg.Ai.RequestTimeout)
	default:
		color.Yellow("Using Gemini embeddings")
		embedder = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini, cfg.Ai.RequestTimeout)
	}

	ctx := context.Background()

	seedSchools(db)
	seedExamBlocks(db)
	seedScores(db)
	seedIntentRoutes(ctx, db, embedder)
	seedSQLExamples(ctx, db, embedder)

	color.Green("\n✅ Seeding completed")
}

func seedSchools(db *gorm.DB) {
	color.Yellow("\n[1/5] Schools and majors")

	schools := []model.School{
		{
			Code: "HVKTQS", Name: "Học viện Kỹ thuật Quân sự", Kind: "quan_doi",
			Address: "236 Hoàng Quốc Việt, Bắc Từ Liêm, Hà Nội",
			Website: "https://mta.edu.vn",
			Description: "Đào tạo kỹ sư quân sự các ngành kỹ thuật, công nghệ thông tin, điện tử viễn thông.",
			Active: true,
			Majors: []model.Major{
				{Code: "CN01", Name: "Công nghệ thông tin", Active: true},
				{Code: "CN02", Name: "Điện tử viễn thông", Active: true},
				{Code: "CN03", Name: "Cơ khí động lực", Active: true},
			},
		},
		{
			Code: "HVHQ", Name: "Học viện Hải quân", Kind: "quan_doi",
			Address: "30 Trần Phú, Nha Trang, Khánh Hòa",
			Website: "https://hocvienhaiquan.edu.vn",
			Description: "Đào tạo sĩ quan chỉ huy tham mưu hải quân.",
			Active: true,
			Majors: []model.Major{
				{Code: "HQ01", Name: "Chỉ huy tham mưu Hải quân", Active: true},
			},
		},
		{
			Code: "HVBP", Name: "Học viện Biên phòng", Kind: "quan_doi",
			Address: "Sơn Lộc, Sơn Tây, Hà Nội",
			Description: "Đào tạo sĩ quan biên phòng.",
			Active: true,
			Majors: []model.Major{
				{Code: "BP01", Name: "Biên phòng", Active: true},
				{Code: "BP02", Name: "Luật", Active: true},
			},
		},
		{
			Code: "HVQY", Name: "Học viện Quân y", Kind: "quan_doi",
			Address: "160 Phùng Hưng, Hà Đông, Hà Nội",
			Website: "https://vmmu.edu.vn",
			Description: "Đào tạo bác sĩ quân y.",
			Active: true,
			Majors: []model.Major{
				{Code: "QY01", Name: "Y khoa", Active: true},
				{Code: "QY02", Name: "Dược học", Active: true},
			},
		},
		{
			Code: "SQLQ1", Name: "Trường Sĩ quan Lục quân 1", Kind: "quan_doi",
			Address: "Cổ Đông, Sơn Tây, Hà Nội",
			Description: "Đào tạo sĩ quan chỉ huy tham mưu lục quân phía Bắc.",
			Active: true,
			Majors: []model.Major{
				{Code: "LQ01", Name: "Chỉ huy tham mưu Lục quân", Active: true},
			},
		},
		{
			Code: "HVHC", Name: "Học viện Hậu cần", Kind: "quan_doi",
			Address: "Ngọc Thụy, Long Biên, Hà Nội",
			Description: "Đào tạo sĩ quan hậu cần, tài chính quân đội.",
			Active: true,
			Majors: []model.Major{
				{Code: "HC01", Name: "Hậu cần quân sự", Active: true},
				{Code: "HC02", Name: "Tài chính", Active: true},
			},
		},
	}

	for i := range schools {
		schools[i].NameFolded = vietnamese.Normalize(schools[i].Name)
		for j := range schools[i].Majors {
			schools[i].Majors[j].NameFolded = vietnamese.Normalize(schools[i].Majors[j].Name)
		}
	}

	for i := range schools {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ma_truong"}},
			UpdateAll: true,
		}).Create(&schools[i]).Error
		if err != nil {
			color.Red("  %s: %v", schools[i].Code, err)
			continue
		}
		color.Green("  %s (%d ngành)", schools[i].Name, len(schools[i].Majors))
	}
}

func seedExamBlocks(db *gorm.DB) {
	color.Yellow("\n[2/5] Exam blocks")

	blocks := []model.ExamBlock{
		{Code: "A00", Name: "Toán-Lý-Hóa", Subjects: "Toán, Vật lý, Hóa học", Active: true},
		{Code: "A01", Name: "Toán-Lý-Anh", Subjects: "Toán, Vật lý, Tiếng Anh", Active: true},
		{Code: "B00", Name: "Toán-Hóa-Sinh", Subjects: "Toán, Hóa học, Sinh học", Active: true},
		{Code: "C00", Name: "Văn-Sử-Địa", Subjects: "Ngữ văn, Lịch sử, Địa lý", Active: true},
		{Code: "D01", Name: "Toán-Văn-Anh", Subjects: "Toán, Ngữ văn, Tiếng Anh", Active: true},
	}

	for i := range blocks {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ma_khoi"}},
			UpdateAll: true,
		}).Create(&blocks[i]).Error
		if err != nil {
			color.Red("  %s: %v", blocks[i].Code, err)
			continue
		}
		color.Green("  %s (%s)", blocks[i].Code, blocks[i].Name)
	}
}

// seedScores inserts benchmark scores for the seeded majors. Looks up ids
// by code so re-running after a wipe stays correct.
func seedScores(db *gorm.DB) {
	color.Yellow("\n[3/5] Admission scores")

	type row struct {
		school, major, block string
		year                 int
		score                float64
		quota                int
		gender               string
	}

	rows := []row{
		{"HVKTQS", "CN01", "A00", 2023, 26.05, 60, "Nam"},
		{"HVKTQS", "CN01", "A00", 2024, 26.50, 60, "Nam"},
		{"HVKTQS", "CN01", "A00", 2025, 26.75, 65, "Nam"},
		{"HVKTQS", "CN01", "A01", 2024, 26.25, 30, "Nam"},
		{"HVKTQS", "CN01", "A01", 2025, 26.40, 30, "Nam"},
		{"HVKTQS", "CN01", "A00", 2024, 27.75, 5, "Nữ"},
		{"HVKTQS", "CN02", "A00", 2024, 25.80, 50, "Nam"},
		{"HVKTQS", "CN02", "A01", 2024, 25.55, 25, "Nam"},
		{"HVKTQS", "CN03", "A00", 2024, 24.90, 40, "Nam"},
		{"HVHQ", "HQ01", "A00", 2024, 24.50, 80, "Nam"},
		{"HVHQ", "HQ01", "A00", 2025, 25.10, 85, "Nam"},
		{"HVHQ", "HQ01", "A01", 2025, 24.85, 40, "Nam"},
		{"HVBP", "BP01", "A01", 2024, 23.95, 70, "Nam"},
		{"HVBP", "BP01", "C00", 2024, 27.60, 50, "Nam"},
		{"HVBP", "BP02", "C00", 2024, 26.80, 25, "Nam"},
		{"HVQY", "QY01", "B00", 2023, 27.20, 120, "Nam"},
		{"HVQY", "QY01", "B00", 2024, 27.55, 120, "Nam"},
		{"HVQY", "QY01", "B00", 2024, 28.15, 12, "Nữ"},
		{"HVQY", "QY02", "A00", 2024, 25.95, 40, "Nam"},
		{"SQLQ1", "LQ01", "A00", 2024, 24.10, 150, "Nam"},
		{"SQLQ1", "LQ01", "C00", 2024, 27.25, 90, "Nam"},
		{"HVHC", "HC01", "A00", 2024, 23.75, 100, "Nam"},
		{"HVHC", "HC02", "A01", 2024, 24.65, 35, "Nam"},
	}

	inserted := 0
	for _, r := range rows {
		var major model.Major
		err := db.Joins("JOIN truong ON truong.id = nganh.truong_id").
			Where("truong.ma_truong = ? AND nganh.ma_nganh = ?", r.school, r.major).
			First(&major).Error
		if err != nil {
			color.Red("  %s/%s: %v", r.school, r.major, err)
			continue
		}

		var block model.ExamBlock
		if err := db.Where("ma_khoi = ?", r.block).First(&block).Error; err != nil {
			color.Red("  %s: %v", r.block, err)
			continue
		}

		quota := r.quota
		score := model.AdmissionScore{
			MajorId:     major.Id,
			ExamBlockId: block.Id,
			Year:        r.year,
			Score:       r.score,
			Quota:       &quota,
			Gender:      r.gender,
		}
		err = db.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "nganh_id"}, {Name: "khoi_thi_id"}, {Name: "nam"},
				{Name: "gioi_tinh"}, {Name: "khu_vuc"},
			},
			UpdateAll: true,
		}).Create(&score).Error
		if err != nil {
			color.Red("  %s/%s %d: %v", r.school, r.major, r.year, err)
			continue
		}
		inserted++
	}
	color.Green("  %d score rows", inserted)
}

// seedIntentRoutes wipes and re-embeds the labeled router examples.
// Full replace: route definitions are code, the table is just their index.
func seedIntentRoutes(ctx context.Context, db *gorm.DB, embedder embedding.EmbeddingProvider) {
	color.Yellow("\n[4/5] Intent route examples")

	repo := implementation.NewIntentRouteRepository(db)
	if err := repo.DeleteAll(ctx); err != nil {
		color.Red("  wipe failed: %v", err)
		return
	}

	examples := router.Flatten(router.DefaultRoutes)
	inserted := 0
	for _, ex := range examples {
		resp, err := embedder.Generate(ctx, ex.Example, embedding.TaskRetrievalDocument)
		if err != nil {
			color.Red("  embed %q: %v", ex.Example, err)
			continue
		}
		if err := repo.Create(ctx, ex, resp.Embedding.Values); err != nil {
			color.Red("  insert %q: %v", ex.Example, err)
			continue
		}
		inserted++
	}
	color.Green("  %d examples across %d routes", inserted, len(router.DefaultRoutes))
}

func seedSQLExamples(ctx context.Context, db *gorm.DB, embedder embedding.EmbeddingProvider) {
	color.Yellow("\n[5/5] SQL few-shot examples")

	repo := implementation.NewSQLExampleRepository(db)
	count, err := repo.Count(ctx)
	if err != nil {
		color.Red("  count failed: %v", err)
		return
	}
	if count > 0 {
		color.Green("  %d examples already present, skipping", count)
		return
	}

	inserted := 0
	for _, ex := range sqlagent.DefaultExamples {
		resp, err := embedder.Generate(ctx, ex.Question, embedding.TaskRetrievalDocument)
		if err != nil {
			color.Red("  embed %q: %v", ex.Question, err)
			continue
		}
		if err := repo.Create(ctx, ex, resp.Embedding.Values); err != nil {
			color.Red("  insert %q: %v", ex.Question, err)
			continue
		}
		inserted++
	}
	color.Green("  %d examples", inserted)
}
