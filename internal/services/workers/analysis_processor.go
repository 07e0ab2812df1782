package workers

import (
	"context"
	"fmt"
	"log"

	"github.com/thechaitanyaanand/preseguide-api/internal/models"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/analysis"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/jobs"
)

// AnalysisProcessor processes audio analysis jobs by running the full
// analysis pipeline on the recording named in the job payload.
type AnalysisProcessor struct {
	pipeline   *analysis.Pipeline
	jobService jobs.Service
}

// NewAnalysisProcessor creates a new analysis processor
func NewAnalysisProcessor(pipeline *analysis.Pipeline, jobService jobs.Service) *AnalysisProcessor {
	return &AnalysisProcessor{
		pipeline:   pipeline,
		jobService: jobService,
	}
}

// CanProcess returns true for audio analysis jobs
func (p *AnalysisProcessor) CanProcess(jobType models.JobType) bool {
	return jobType == models.JobTypeAudioAnalysis
}

// ProcessJob runs the analysis pipeline for the job's recording and marks
// the job completed with the pipeline's result.
func (p *AnalysisProcessor) ProcessJob(ctx context.Context, job *models.Job) error {
	recordingID, ok := job.GetPayloadUint("recording_id")
	if !ok {
		return models.NewProcessingError("INVALID_PAYLOAD",
			"job payload has no recording_id", fmt.Sprintf("payload: %v", job.Payload), nil)
	}

	log.Printf("[DEBUG] Processing analysis job %d for recording %d", job.ID, recordingID)

	result, err := p.pipeline.Analyze(ctx, job.ID, recordingID)
	if err != nil {
		return err
	}

	if err := p.jobService.CompleteJob(ctx, job.ID, result); err != nil {
		return fmt.Errorf("failed to complete job %d: %w", job.ID, err)
	}

	return nil
}
