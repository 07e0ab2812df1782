package presentations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thechaitanyaanand/preseguide-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Presentation{}, &models.Recording{}, &models.Badge{})
	require.NoError(t, err)

	return db
}

func newTestPresentation(title string) *models.Presentation {
	return &models.Presentation{
		UUID:         uuid.NewString(),
		Title:        title,
		CurrentLevel: 1,
	}
}

func TestRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	presentation := newTestPresentation("Quarterly Review")
	presentation.Description = "Practice run"

	err := repo.Create(context.Background(), presentation)
	require.NoError(t, err)
	assert.NotZero(t, presentation.ID)

	var retrieved models.Presentation
	err = db.First(&retrieved, presentation.ID).Error
	require.NoError(t, err)
	assert.Equal(t, "Quarterly Review", retrieved.Title)
	assert.Equal(t, presentation.UUID, retrieved.UUID)
}

func TestRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	presentation := newTestPresentation("Demo Day")
	require.NoError(t, repo.Create(context.Background(), presentation))

	require.NoError(t, db.Create(&models.Recording{
		UUID:            uuid.NewString(),
		PresentationID:  presentation.ID,
		IterationNumber: 2,
		Status:          models.RecordingStatusCompleted,
	}).Error)
	require.NoError(t, db.Create(&models.Recording{
		UUID:            uuid.NewString(),
		PresentationID:  presentation.ID,
		IterationNumber: 1,
		Status:          models.RecordingStatusCompleted,
	}).Error)

	retrieved, err := repo.GetByID(context.Background(), presentation.ID)
	require.NoError(t, err)
	require.Len(t, retrieved.Recordings, 2)
	assert.Equal(t, 1, retrieved.Recordings[0].IterationNumber)
	assert.Equal(t, 2, retrieved.Recordings[1].IterationNumber)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.GetByID(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestRepository_GetByUUID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	presentation := newTestPresentation("Keynote")
	require.NoError(t, repo.Create(context.Background(), presentation))

	retrieved, err := repo.GetByUUID(context.Background(), presentation.UUID)
	require.NoError(t, err)
	assert.Equal(t, presentation.ID, retrieved.ID)

	_, err = repo.GetByUUID(context.Background(), "does-not-exist")
	assert.True(t, IsNotFound(err))
}

func TestRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(context.Background(), newTestPresentation("Talk")))
	}

	presentations, total, err := repo.List(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, presentations, 3)

	presentations, total, err = repo.List(context.Background(), 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, presentations, 2)
}

func TestRepository_Delete_RemovesChildren(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	presentation := newTestPresentation("Pitch")
	require.NoError(t, repo.Create(context.Background(), presentation))

	require.NoError(t, db.Create(&models.Recording{
		UUID:            uuid.NewString(),
		PresentationID:  presentation.ID,
		IterationNumber: 1,
	}).Error)
	require.NoError(t, db.Create(&models.Badge{
		PresentationID: presentation.ID,
		BadgeType:      models.BadgeFirstRecording,
		Name:           models.BadgeDisplayNames[models.BadgeFirstRecording],
	}).Error)

	require.NoError(t, repo.Delete(context.Background(), presentation.ID))

	var recordingCount, badgeCount int64
	db.Model(&models.Recording{}).Where("presentation_id = ?", presentation.ID).Count(&recordingCount)
	db.Model(&models.Badge{}).Where("presentation_id = ?", presentation.ID).Count(&badgeCount)
	assert.Zero(t, recordingCount)
	assert.Zero(t, badgeCount)

	err := repo.Delete(context.Background(), presentation.ID)
	assert.True(t, IsNotFound(err))
}

func TestRepository_UpdateLocked(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	presentation := newTestPresentation("Standup")
	require.NoError(t, repo.Create(context.Background(), presentation))

	updated, err := repo.UpdateLocked(context.Background(), presentation.ID, func(_ *gorm.DB, p *models.Presentation) error {
		p.TotalXP += 25
		p.CurrentLevel = models.LevelForXP(p.TotalXP)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 25, updated.TotalXP)

	var retrieved models.Presentation
	require.NoError(t, db.First(&retrieved, presentation.ID).Error)
	assert.Equal(t, 25, retrieved.TotalXP)
}

func TestRepository_UpdateLocked_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.UpdateLocked(context.Background(), 424242, func(_ *gorm.DB, p *models.Presentation) error {
		return nil
	})
	assert.True(t, IsNotFound(err))
}

func TestRepository_UpdateLocked_RollsBackRelatedWrites(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	presentation := newTestPresentation("Standup")
	require.NoError(t, repo.Create(context.Background(), presentation))

	// fn writes a related row through the transaction and then fails; the
	// XP change and the badge must both roll back together.
	_, err := repo.UpdateLocked(context.Background(), presentation.ID, func(tx *gorm.DB, p *models.Presentation) error {
		p.TotalXP += 30
		if err := tx.Create(&models.Badge{
			PresentationID: p.ID,
			BadgeType:      models.BadgeFirstCompletion,
			Name:           models.BadgeDisplayNames[models.BadgeFirstCompletion],
			EarnedAt:       time.Now().UTC(),
		}).Error; err != nil {
			return err
		}
		return errors.New("award failed")
	})
	require.Error(t, err)

	var retrieved models.Presentation
	require.NoError(t, db.First(&retrieved, presentation.ID).Error)
	assert.Zero(t, retrieved.TotalXP)

	var badgeCount int64
	db.Model(&models.Badge{}).Where("presentation_id = ?", presentation.ID).Count(&badgeCount)
	assert.Zero(t, badgeCount)
}
