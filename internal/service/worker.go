package service

import (
	"log"

	"github.com/unclebandit/customer-service/internal/queue"
)

// EventSink records change events
type EventSink interface {
	Record(ev queue.ChangeEvent) error
}

// LogSink writes each event to the standard logger
type LogSink struct{}

func (LogSink) Record(ev queue.ChangeEvent) error {
	log.Printf("📝 %s %s id=%d at=%s", ev.Entity, ev.Action, ev.ID, ev.OccurredAt.Format("2006-01-02T15:04:05Z07:00"))
	return nil
}

// Worker processes change events
type Worker struct {
	Sink EventSink
}

// Constructor
func NewWorker(sink EventSink) *Worker {
	return &Worker{Sink: sink}
}

// Handle is a queue subscriber. Undecodable payloads are logged and
// dropped; sink failures are returned so the queue retries them.
func (w *Worker) Handle(payload any) error {
	ev, err := queue.DecodeEvent(payload)
	if err != nil {
		log.Println("⚠️ Invalid change event:", err)
		return nil
	}
	return w.Sink.Record(ev)
}

// Start subscribes the worker to topic on q.
func (w *Worker) Start(q queue.Queue, topic string) error {
	return q.Subscribe(topic, w.Handle)
}
