package queue_test

import (
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	assert "github.com/stretchr/testify/require"

	"github.com/unclebandit/customer-service/internal/queue"
)

func TestPublishWithoutSubscribers(t *testing.T) {
	q := queue.NewInMemoryQueue()
	assert.Error(t, q.Publish("entity_changes", 1))
}

func TestPublishDeliversToEverySubscriber(t *testing.T) {
	q := queue.NewInMemoryQueue()
	var calls int32
	for i := 0; i < 2; i++ {
		assert.NoError(t, q.Subscribe("entity_changes", func(payload any) error {
			atomic.AddInt32(&calls, 1)
			return nil
		}))
	}

	assert.NoError(t, q.Publish("entity_changes", queue.ChangeEvent{Entity: "address", ID: 1}))
	q.Wait()

	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestFailedJobIsRetried(t *testing.T) {
	q := queue.NewInMemoryQueue()
	q.Backoff = time.Millisecond
	var attempts int32
	assert.NoError(t, q.Subscribe("t", func(payload any) error {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return errors.New("not yet")
		}
		return nil
	}))

	assert.NoError(t, q.Publish("t", "x"))
	q.Wait()

	assert.EqualValues(t, 3, atomic.LoadInt32(&attempts))
}

func TestRetriesStopAtMax(t *testing.T) {
	q := queue.NewInMemoryQueue()
	q.Backoff = time.Millisecond
	q.MaxRetries = 2
	var attempts int32
	assert.NoError(t, q.Subscribe("t", func(payload any) error {
		atomic.AddInt32(&attempts, 1)
		return errors.New("always")
	}))

	assert.NoError(t, q.Publish("t", "x"))
	q.Wait()

	// first attempt plus two retries
	assert.EqualValues(t, 3, atomic.LoadInt32(&attempts))
}

func TestDecodeEvent(t *testing.T) {
	ev := queue.ChangeEvent{Entity: "customer", Action: queue.ActionDeleted, ID: 4}

	got, err := queue.DecodeEvent(ev)
	assert.NoError(t, err)
	assert.Equal(t, ev, got)

	got, err = queue.DecodeEvent(&ev)
	assert.NoError(t, err)
	assert.Equal(t, ev, got)

	body, err := json.Marshal(ev)
	assert.NoError(t, err)
	got, err = queue.DecodeEvent(body)
	assert.NoError(t, err)
	assert.Equal(t, "customer", got.Entity)
	assert.Equal(t, 4, got.ID)

	_, err = queue.DecodeEvent([]byte("{"))
	assert.Error(t, err)
	_, err = queue.DecodeEvent(42)
	assert.Error(t, err)
}
