package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"jobboard/internal/domain/job"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(h *Hub) *Client {
	return &Client{hub: h, send: make(chan []byte, sendBuffer)}
}

func TestHub_BroadcastsJobEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(zerolog.Nop())
	go hub.Run(ctx)

	a, b := newTestClient(hub), newTestClient(hub)
	hub.Register(a)
	hub.Register(b)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	hub.NotifyJob(job.Event{
		Kind: job.EventCreated,
		Job:  job.Job{ID: "42", Title: "Go Developer", JobType: job.TypeFullTime, PostedDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		At:   time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC),
	})

	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.send:
			var evt JobsUpdatedEvent
			require.NoError(t, json.Unmarshal(msg, &evt))
			assert.Equal(t, "job_created", evt.Type)
			assert.Equal(t, "42", evt.Job.ID)
			assert.Equal(t, "2024-01-15", evt.Job.PostedDate)
			assert.Equal(t, "2024-01-15T08:30:00Z", evt.Timestamp)
		case <-time.After(time.Second):
			t.Fatal("client did not receive the event")
		}
	}

	hub.Unregister(a)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	_, open := <-a.send
	assert.False(t, open)
}

func TestHub_StopClosesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(zerolog.Nop())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	c := newTestClient(hub)
	hub.Register(c)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	<-stopped
	assert.Equal(t, 0, hub.ClientCount())

	// must not block after shutdown
	hub.Unregister(c)
	hub.Register(newTestClient(hub))
}

func TestHub_NilIsSafe(t *testing.T) {
	var hub *Hub
	hub.Broadcast([]byte("x"))
	hub.NotifyJob(job.Event{})
	assert.Equal(t, 0, hub.ClientCount())
}
