package database

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/thechaitanyaanand/preseguide-api/internal/models"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name   string
		dbPath string
	}{
		{
			name:   "in-memory database",
			dbPath: ":memory:",
		},
		{
			name:   "file database",
			dbPath: filepath.Join(t.TempDir(), "test.db"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Initialize(tt.dbPath, false)
			require.NoError(t, err)
			require.NotNil(t, conn)
			defer conn.Close()

			assert.NoError(t, conn.HealthCheck())
		})
	}
}

func TestDB_Close(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)

	assert.NoError(t, conn.Close())
	assert.Error(t, conn.HealthCheck(), "HealthCheck should fail after the database is closed")
}

func TestDB_HealthCheck_NilConnection(t *testing.T) {
	var conn *DB
	assert.Error(t, conn.HealthCheck())
}

func TestDB_AutoMigrate(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()

	err = conn.AutoMigrate(
		&models.Presentation{},
		&models.Recording{},
		&models.Badge{},
		&models.Job{},
	)
	require.NoError(t, err)

	for _, table := range []string{"presentations", "recordings", "badges", "jobs"} {
		assert.True(t, conn.Migrator().HasTable(table), "expected table %s to exist", table)
	}
}

func TestDB_DomainOperations(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.AutoMigrate(&models.Presentation{}, &models.Recording{}))

	t.Run("create and find presentation", func(t *testing.T) {
		presentation := models.Presentation{UUID: uuid.NewString(), Title: "Quarterly review"}
		require.NoError(t, conn.DB.Create(&presentation).Error)
		assert.NotZero(t, presentation.ID)

		var found models.Presentation
		require.NoError(t, conn.DB.First(&found, presentation.ID).Error)
		assert.Equal(t, "Quarterly review", found.Title)
	})

	t.Run("timestamps are UTC", func(t *testing.T) {
		presentation := models.Presentation{UUID: uuid.NewString(), Title: "Timezone check"}
		require.NoError(t, conn.DB.Create(&presentation).Error)

		_, offset := presentation.CreatedAt.Zone()
		assert.Equal(t, 0, offset)
	})

	t.Run("transaction rollback leaves no rows", func(t *testing.T) {
		var before int64
		conn.DB.Model(&models.Recording{}).Count(&before)

		err := conn.DB.Transaction(func(tx *gorm.DB) error {
			recording := models.Recording{UUID: uuid.NewString(), PresentationID: 1, IterationNumber: 1}
			if err := tx.Create(&recording).Error; err != nil {
				return err
			}
			return gorm.ErrInvalidTransaction
		})
		assert.Error(t, err)

		var after int64
		conn.DB.Model(&models.Recording{}).Count(&after)
		assert.Equal(t, before, after)
	})
}
