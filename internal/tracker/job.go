package tracker

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/minhvu-dev/shopee-track/internal/models"
)

// Status is a job's lifecycle state. Transitions only move forward:
// queued → running → completed | failed.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Job tracks one workbook batch from submission to terminal state.
type Job struct {
	ID         string          `json:"id"`
	File       string          `json:"file"`
	Status     Status          `json:"status"`
	Total      int             `json:"total"`
	Done       int             `json:"done"`
	Failed     int             `json:"failed"`
	Error      string          `json:"error,omitempty"`
	Results    []models.Result `json:"results,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	StartedAt  *time.Time      `json:"started_at,omitempty"`
	FinishedAt *time.Time      `json:"finished_at,omitempty"`
}

// Store is a keyed job store with explicit lifecycle, owned by the batch
// driver. It replaces the original's process-wide job map.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

func NewStore() *Store {
	return &Store{jobs: make(map[string]*Job)}
}

// Create registers a queued job for the given workbook.
func (s *Store) Create(file string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := &Job{
		ID:        uuid.New().String(),
		File:      file,
		Status:    StatusQueued,
		CreatedAt: time.Now(),
	}
	s.jobs[job.ID] = job
	return s.snapshot(job)
}

// Start marks the job running with the number of rows it will process.
func (s *Store) Start(id string, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return
	}
	now := time.Now()
	job.Status = StatusRunning
	job.Total = total
	job.StartedAt = &now
}

// Progress records one finished unit.
func (s *Store) Progress(id string, res models.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return
	}
	job.Done++
	if !res.OK() {
		job.Failed++
	}
	job.Results = append(job.Results, res)
}

// Complete moves the job to its successful terminal state.
func (s *Store) Complete(id string) {
	s.terminal(id, StatusCompleted, "")
}

// Fail moves the job to its failed terminal state with the batch error.
func (s *Store) Fail(id string, err error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	s.terminal(id, StatusFailed, msg)
}

func (s *Store) terminal(id string, status Status, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return
	}
	now := time.Now()
	job.Status = status
	job.Error = errMsg
	job.FinishedAt = &now
}

// Get returns a copy of the job, safe for the caller to hold.
func (s *Store) Get(id string) (*Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job %q not found", id)
	}
	return s.snapshot(job), nil
}

// List returns copies of all jobs, newest first.
func (s *Store) List() []*Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]*Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, s.snapshot(job))
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return jobs
}

func (s *Store) snapshot(job *Job) *Job {
	cp := *job
	cp.Results = append([]models.Result(nil), job.Results...)
	return &cp
}
