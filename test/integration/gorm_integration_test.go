package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"

	"studyhub-be/internal/repository/unitofwork"
	"studyhub-be/pkg/database"
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

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.NodeRepository())
	assert.NotNil(t, uow.QuestionRepository())
	assert.NotNil(t, uow.DocumentRepository())
	assert.NotNil(t, uow.ActivityRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Node Repository", func(t *testing.T) {
		count, err := uow.NodeRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Node count: %d", count)
	})

	t.Run("Check Question Repository", func(t *testing.T) {
		count, err := uow.QuestionRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Question count: %d", count)
	})

	t.Run("Check Document Repository", func(t *testing.T) {
		count, err := uow.DocumentRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Document count: %d", count)
	})
}
