package triggers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForEvent_AlreadyArrived(t *testing.T) {
	client := newTestClient(t, "k1", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"events":[{"id":"evt_1","source":"app","eventType":"user.created","status":"pending","createdAt":"2026-08-28T10:00:00Z"}],"limit":50}`)
	})

	event, err := client.WaitForEvent(context.Background(),
		WithMatchingEventType("user.created"),
		WithWaitTimeout(time.Second),
		WithPollInterval(10*time.Millisecond),
	)
	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
}

func TestWaitForEvent_ArrivesLater(t *testing.T) {
	var polls atomic.Int32
	client := newTestClient(t, "k1", func(w http.ResponseWriter, r *http.Request) {
		if polls.Add(1) < 3 {
			io.WriteString(w, `{"events":[],"limit":50}`)
			return
		}
		io.WriteString(w, `{"events":[{"id":"evt_9","source":"app","eventType":"user.created","status":"pending","createdAt":"2026-08-28T10:00:00Z"}],"limit":50}`)
	})

	event, err := client.WaitForEvent(context.Background(),
		WithMatchingSource("app"),
		WithWaitTimeout(5*time.Second),
		WithPollInterval(5*time.Millisecond),
	)
	require.NoError(t, err)
	assert.Equal(t, "evt_9", event.ID)
	assert.GreaterOrEqual(t, polls.Load(), int32(3))
}

func TestWaitForEvent_FiltersPushedToServer(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, "k1", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `{"events":[{"id":"evt_1","source":"app","eventType":"user.created","status":"pending","createdAt":"2026-08-28T10:00:00Z"}],"limit":50}`)
	})

	_, err := client.WaitForEvent(context.Background(),
		WithMatchingSource("app"),
		WithMatchingEventType("user.created"),
		WithWaitTimeout(time.Second),
	)
	require.NoError(t, err)
	assert.Equal(t, "source=app&eventType=user.created", gotQuery)
}

func TestWaitForEvent_PredicateFiltersClientSide(t *testing.T) {
	client := newTestClient(t, "k1", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"events":[
			{"id":"evt_1","source":"app","eventType":"user.created","payload":{"plan":"free"},"status":"pending","createdAt":"2026-08-28T10:00:00Z"},
			{"id":"evt_2","source":"app","eventType":"user.created","payload":{"plan":"pro"},"status":"pending","createdAt":"2026-08-28T10:01:00Z"}
		],"limit":50}`)
	})

	event, err := client.WaitForEvent(context.Background(),
		WithPredicate(func(e *Event) bool {
			return e.Payload["plan"] == "pro"
		}),
		WithWaitTimeout(time.Second),
		WithPollInterval(10*time.Millisecond),
	)
	require.NoError(t, err)
	assert.Equal(t, "evt_2", event.ID)
}

func TestWaitForEvent_TimesOut(t *testing.T) {
	client := newTestClient(t, "k1", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"events":[],"limit":50}`)
	})

	_, err := client.WaitForEvent(context.Background(),
		WithWaitTimeout(50*time.Millisecond),
		WithPollInterval(5*time.Millisecond),
	)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitForEventCount(t *testing.T) {
	var polls atomic.Int32
	client := newTestClient(t, "k1", func(w http.ResponseWriter, r *http.Request) {
		n := polls.Add(1)
		body := `{"events":[`
		for i := int32(0); i < n && i < 3; i++ {
			if i > 0 {
				body += ","
			}
			body += fmt.Sprintf(`{"id":"evt_%d","source":"app","eventType":"t","status":"pending","createdAt":"2026-08-28T10:00:00Z"}`, i)
		}
		body += `],"limit":50}`
		io.WriteString(w, body)
	})

	events, err := client.WaitForEventCount(context.Background(), 3,
		WithWaitTimeout(5*time.Second),
		WithPollInterval(5*time.Millisecond),
	)
	require.NoError(t, err)
	require.Len(t, events, 3)

	// Distinct events, no duplicates across polls.
	ids := map[string]struct{}{}
	for _, e := range events {
		ids[e.ID] = struct{}{}
	}
	assert.Len(t, ids, 3)
}

func TestWaitForEventCount_ZeroAndNegative(t *testing.T) {
	client := newTestClient(t, "k1", func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request should be sent")
	})

	events, err := client.WaitForEventCount(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, events)

	_, err = client.WaitForEventCount(context.Background(), -1)
	require.Error(t, err)
}
