package types

import (
	"github.com/thechaitanyaanand/preseguide-api/internal/database"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/audiostore"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/badges"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/coach"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/jobs"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/presentations"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/recordings"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/workers"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                  *database.DB
	PresentationService presentations.PresentationService
	RecordingService    recordings.RecordingService
	BadgeService        badges.Service
	JobService          jobs.Service
	CoachService        *coach.Service
	AudioStore          audiostore.Store
	WorkerPool          *workers.WorkerPool
}
