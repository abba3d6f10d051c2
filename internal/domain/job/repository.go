package job

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound    = errors.New("job not found")
	ErrDuplicateID = errors.New("duplicate job id")
)

type EventKind string

const (
	EventCreated EventKind = "job_created"
	EventUpdated EventKind = "job_updated"
	EventDeleted EventKind = "job_deleted"
)

type Event struct {
	Kind EventKind
	Job  Job
	At   time.Time
}

// Repository keeps postings in newest-first order.
type Repository interface {
	List(ctx context.Context) ([]Job, error)
	GetByID(ctx context.Context, id string) (Job, error)
	Create(ctx context.Context, d Draft) (Job, error)
	Update(ctx context.Context, id string, mutate func(Job) (Job, error)) (Job, error)
	Delete(ctx context.Context, id string) (Job, error)
	Count(ctx context.Context) (int, error)
}

// Subscriber delivers store events to fn until the returned func is called.
type Subscriber interface {
	Subscribe(fn func(Event)) (unsubscribe func())
}
