package pipeline

import (
	"sync"
	"time"
)

// JobStatus represents the state of a conversion job.
type JobStatus string

const (
	StatusQueued       JobStatus = "queued"
	StatusConverting   JobStatus = "converting"
	StatusTransforming JobStatus = "transforming"
	StatusCompleted    JobStatus = "completed"
	StatusFailed       JobStatus = "failed"
)

// Job tracks one manuscript on its way through convert + transform.
// Jobs never cross the API directly; Snapshot produces the JSON view.
type Job struct {
	mu sync.Mutex

	ID       string
	Filename string
	Title    string
	Status   JobStatus

	CreatedAt time.Time
	UpdatedAt time.Time

	// Per-job transform settings.
	TCYDigit            int
	AutoTextOrientation bool

	fileData []byte
	result   string
	errMsg   string
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.UpdatedAt = time.Now()
}

// Fail records an error and marks the job failed.
func (j *Job) Fail(msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = StatusFailed
	j.errMsg = msg
	j.UpdatedAt = time.Now()
}

// SetResult stores the transformed HTML and completes the job.
func (j *Job) SetResult(title, html string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Title = title
	j.result = html
	j.Status = StatusCompleted
	j.UpdatedAt = time.Now()
}

// SetFileData sets the raw file bytes for processing.
func (j *Job) SetFileData(data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = data
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID       string    `json:"job_id"`
	Filename string    `json:"filename"`
	Title    string    `json:"title,omitempty"`
	Status   JobStatus `json:"status"`
	Error    string    `json:"error,omitempty"`
	HTML     string    `json:"html,omitempty"`
}

// Snapshot returns a JSON-safe copy of the job state. The output HTML
// is included only once the job completed.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	snap := JobSnapshot{
		ID:       j.ID,
		Filename: j.Filename,
		Title:    j.Title,
		Status:   j.Status,
		Error:    j.errMsg,
	}
	if j.Status == StatusCompleted {
		snap.HTML = j.result
	}
	return snap
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		job.mu.Lock()
		expired := now.Sub(job.UpdatedAt) > s.ttl
		job.mu.Unlock()
		if expired {
			delete(s.jobs, id)
		}
	}
}
