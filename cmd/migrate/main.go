package main

import (
	"log"
	"os"

	"admission-advisor-be/internal/model"
	"admission-advisor-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (Things GORM AutoMigrate doesn't do)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models (The Core Task)
	log.Println("Step 2: Running AutoMigrate for 8 Tables...")

	models := []interface{}{
		&model.School{},
		&model.Major{},
		&model.ExamBlock{},
		&model.AdmissionScore{},
		&model.LegalChunk{},
		&model.SQLExample{},
		&model.IntentRoute{},
		&model.Checkpoint{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Views
	// view_tra_cuu_diem denormalizes the score tables into the single
	// read surface the generated queries are allowed to touch.
	log.Println("Step 3: Creating Views...")

	postMigrationSQL := []string{
		`CREATE OR REPLACE VIEW view_tra_cuu_diem AS
		 SELECT
		   dc.id          AS diem_chuan_id,
		   t.ma_truong    AS ma_truong,
		   t.ten_truong   AS ten_truong,
		   t.ten_khong_dau AS ten_khong_dau,
		   n.ma_nganh     AS ma_nganh,
		   n.ten_nganh    AS ten_nganh,
		   n.ten_khong_dau AS ten_nganh_khong_dau,
		   k.ma_khoi      AS ma_khoi,
		   k.ten_khoi     AS ten_khoi,
		   k.mon_hoc      AS mon_hoc,
		   dc.nam         AS nam,
		   dc.diem_chuan  AS diem_chuan,
		   dc.chi_tieu    AS chi_tieu,
		   dc.gioi_tinh   AS gioi_tinh,
		   dc.khu_vuc     AS khu_vuc,
		   dc.doi_tuong   AS doi_tuong,
		   dc.ghi_chu     AS ghi_chu
		 FROM diem_chuan dc
		 JOIN nganh n    ON dc.nganh_id = n.id
		 JOIN truong t   ON n.truong_id = t.id
		 JOIN khoi_thi k ON dc.khoi_thi_id = k.id
		 WHERE t.active AND n.active;`,

		// The checkpoint log is append-only; revoke nothing here but make
		// intent explicit for anyone adding migrations later.
		`COMMENT ON TABLE checkpoints IS 'Append-only conversation state log. Rows are never updated or deleted.';`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
