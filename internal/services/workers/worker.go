package workers

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/thechaitanyaanand/preseguide-api/internal/models"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/jobs"
)

// JobProcessor handles one category of queued work.
type JobProcessor interface {
	ProcessJob(ctx context.Context, job *models.Job) error
	CanProcess(jobType models.JobType) bool
}

// claimableTypes is every job type the queue can hold. A worker only
// claims the subset its processors can handle.
var claimableTypes = []models.JobType{
	models.JobTypeAudioAnalysis,
}

// Worker polls the job queue and dispatches claimed jobs to its processors.
type Worker struct {
	id           string
	jobService   jobs.Service
	processors   []JobProcessor
	stopChan     chan struct{}
	wg           sync.WaitGroup
	pollInterval time.Duration
}

// NewWorker creates a worker with no processors registered yet.
func NewWorker(id string, jobService jobs.Service, pollInterval time.Duration) *Worker {
	return &Worker{
		id:           id,
		jobService:   jobService,
		processors:   make([]JobProcessor, 0),
		stopChan:     make(chan struct{}),
		pollInterval: pollInterval,
	}
}

// RegisterProcessor adds a processor to this worker.
func (w *Worker) RegisterProcessor(processor JobProcessor) {
	w.processors = append(w.processors, processor)
}

// Start launches the polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the loop to exit and waits for the current job to finish.
func (w *Worker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log.Printf("Worker %s starting", w.id)
	defer log.Printf("Worker %s stopped", w.id)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case <-ticker.C:
			if err := w.processNextJob(ctx); err != nil {
				log.Printf("Worker %s: error processing job: %v", w.id, err)
			}
		}
	}
}

// supportedTypes returns the job types at least one processor handles.
func (w *Worker) supportedTypes() []models.JobType {
	var types []models.JobType
	for _, jobType := range claimableTypes {
		for _, p := range w.processors {
			if p.CanProcess(jobType) {
				types = append(types, jobType)
				break
			}
		}
	}
	return types
}

// processNextJob claims at most one job and runs it to completion.
func (w *Worker) processNextJob(ctx context.Context) error {
	supported := w.supportedTypes()
	if len(supported) == 0 {
		return fmt.Errorf("no job processors registered")
	}

	job, err := w.jobService.ClaimNextJob(ctx, w.id, supported)
	if err != nil {
		// An empty queue is the normal case, not an error
		return nil
	}
	if job == nil {
		return nil
	}

	log.Printf("Worker %s claimed job %d (type: %s)", w.id, job.ID, job.Type)

	var processor JobProcessor
	for _, p := range w.processors {
		if p.CanProcess(job.Type) {
			processor = p
			break
		}
	}

	if processor == nil {
		return fmt.Errorf("no processor found for job type %s", job.Type)
	}

	if err := processor.ProcessJob(ctx, job); err != nil {
		// FailJob preserves the classification of structured errors
		if failErr := w.jobService.FailJob(ctx, job.ID, err); failErr != nil {
			log.Printf("Worker %s: failed to mark job %d as failed: %v", w.id, job.ID, failErr)
		}
		return fmt.Errorf("job processing failed: %w", err)
	}

	log.Printf("Worker %s completed job %d", w.id, job.ID)
	return nil
}

// WorkerPool runs a fixed set of workers over the shared queue.
type WorkerPool struct {
	workers    []*Worker
	jobService jobs.Service
	mu         sync.RWMutex
	started    bool
}

// NewWorkerPool creates workerCount workers sharing one job service.
func NewWorkerPool(jobService jobs.Service, workerCount int, pollInterval time.Duration) *WorkerPool {
	pool := &WorkerPool{
		jobService: jobService,
		workers:    make([]*Worker, workerCount),
	}

	for i := 0; i < workerCount; i++ {
		workerID := fmt.Sprintf("worker-%d", i+1)
		pool.workers[i] = NewWorker(workerID, jobService, pollInterval)
	}

	return pool
}

// RegisterProcessor registers a processor with every worker in the pool.
func (p *WorkerPool) RegisterProcessor(processor JobProcessor) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, worker := range p.workers {
		worker.RegisterProcessor(processor)
	}
}

// Start launches all workers. Starting twice is an error.
func (p *WorkerPool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return fmt.Errorf("worker pool already started")
	}

	log.Printf("Starting worker pool with %d workers", len(p.workers))

	for _, worker := range p.workers {
		worker.Start(ctx)
	}

	p.started = true
	return nil
}

// Stop stops all workers and waits for in-flight jobs. Safe to call
// when the pool never started.
func (p *WorkerPool) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	log.Printf("Stopping worker pool")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.started = false
}
