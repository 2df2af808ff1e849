package ingest

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// JobStatus is the lifecycle state of an async sync job
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
)

// Job is one async player sync, tracked from submission to completion
type Job struct {
	ID       string    `json:"id"`
	GameName string    `json:"game_name"`
	TagLine  string    `json:"tag_line"`
	Status   JobStatus `json:"status"`

	// PUUID is set once identity resolution succeeds
	PUUID string `json:"puuid,omitempty"`
	// Fetched is the number of matches pulled from upstream
	Fetched int `json:"fetched"`
	// Error carries the failure message for failed jobs
	Error string `json:"error,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// jobRegistry tracks async sync jobs in memory. Jobs do not survive a
// restart; callers that lose a job id simply resubmit.
type jobRegistry struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

func newJobRegistry() *jobRegistry {
	return &jobRegistry{jobs: make(map[string]*Job)}
}

// create registers a new queued job and returns its id
func (r *jobRegistry) create(gameName, tagLine string) *Job {
	job := &Job{
		ID:        uuid.NewString(),
		GameName:  gameName,
		TagLine:   tagLine,
		Status:    JobStatusQueued,
		CreatedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
	return job
}

// get returns a copy of the job so callers never race the workers
func (r *jobRegistry) get(id string) (*Job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return nil, false
	}
	copied := *job
	return &copied, true
}

// update applies a mutation to a job under the registry lock
func (r *jobRegistry) update(id string, fn func(*Job)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if job, ok := r.jobs[id]; ok {
		fn(job)
	}
}

// complete marks a job finished, successfully or not
func (r *jobRegistry) complete(id string, fetched int, jobErr error) {
	now := time.Now().UTC()
	r.update(id, func(job *Job) {
		job.Fetched = fetched
		job.CompletedAt = &now
		if jobErr != nil {
			job.Status = JobStatusFailed
			job.Error = jobErr.Error()
			return
		}
		job.Status = JobStatusSucceeded
	})
}
