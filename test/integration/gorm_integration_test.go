package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"admission-advisor-be/internal/entity"
	"admission-advisor-be/internal/repository/implementation"
	"admission-advisor-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	ctx := context.Background()

	t.Run("Check Chunk Repository", func(t *testing.T) {
		count, err := implementation.NewChunkRepository(gormDB).Count(ctx)
		assert.NoError(t, err)
		t.Logf("Legal chunk count: %d", count)
	})

	t.Run("Check School Repository", func(t *testing.T) {
		schools, err := implementation.NewSchoolRepository(gormDB).FindAllActive(ctx)
		assert.NoError(t, err)
		t.Logf("Active schools: %d", len(schools))
	})

	t.Run("Check Score Query View", func(t *testing.T) {
		rows, err := implementation.NewScoreQueryRepository(gormDB).
			Execute(ctx, "SELECT nam, diem_chuan FROM view_tra_cuu_diem LIMIT 3;")
		assert.NoError(t, err)
		t.Logf("view_tra_cuu_diem sample rows: %d", len(rows))
	})

	t.Run("Checkpoint Append Latest Rewind", func(t *testing.T) {
		repo := implementation.NewCheckpointRepository(gormDB)
		sessionId := "it-" + uuid.NewString()
		year := 2024

		first := &entity.Checkpoint{
			SessionId: sessionId,
			Memory:    entity.EntityMemory{School: "Học viện Hải quân", Year: &year},
			Turns: []entity.TurnRecord{
				{Role: "user", Content: "điểm chuẩn học viện hải quân 2024?"},
			},
		}
		require.NoError(t, repo.Append(ctx, first))
		assert.Equal(t, 1, first.Seq)

		second := &entity.Checkpoint{SessionId: sessionId}
		require.NoError(t, repo.Append(ctx, second))
		assert.Equal(t, 2, second.Seq)

		latest, err := repo.Latest(ctx, sessionId)
		require.NoError(t, err)
		assert.Equal(t, 2, latest.Seq)

		rewound, err := repo.Rewind(ctx, sessionId, 1)
		require.NoError(t, err)
		assert.Equal(t, "Học viện Hải quân", rewound.Memory.School)

		// Rewind must not shorten the log.
		history, err := repo.History(ctx, sessionId)
		require.NoError(t, err)
		assert.Len(t, history, 2)
	})
}
