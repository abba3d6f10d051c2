package ws

import (
	"encoding/json"
	"time"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/domain/job"
)

type JobsUpdatedEvent struct {
	Type      string          `json:"type"`
	Job       dto.JobResponse `json:"job"`
	Timestamp string          `json:"timestamp"`
}

func NewJobsUpdatedEvent(evt job.Event) JobsUpdatedEvent {
	at := evt.At
	if at.IsZero() {
		at = time.Now()
	}
	return JobsUpdatedEvent{
		Type:      string(evt.Kind),
		Job:       dto.NewJobResponse(evt.Job),
		Timestamp: at.UTC().Format(time.RFC3339),
	}
}

// NotifyJob broadcasts a store event. Pass it to the store's Subscribe.
func (h *Hub) NotifyJob(evt job.Event) {
	if h == nil {
		return
	}
	b, err := json.Marshal(NewJobsUpdatedEvent(evt))
	if err != nil {
		h.logger.Error().Err(err).Str("job_id", evt.Job.ID).Msg("encode job event")
		return
	}
	h.Broadcast(b)
}
