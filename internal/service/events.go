package service

import (
	"log"
	"time"

	"github.com/unclebandit/customer-service/internal/queue"
)

// DefaultEventsTopic is used when a service has no Topic set.
const DefaultEventsTopic = "entity_changes"

type publisher struct {
	Queue queue.Queue
	Topic string
}

// publish announces a committed write. Failures are logged only; the write
// itself already succeeded.
func (p publisher) publish(entity, action string, id int, payload any) {
	if p.Queue == nil {
		return
	}
	topic := p.Topic
	if topic == "" {
		topic = DefaultEventsTopic
	}

	ev := queue.ChangeEvent{
		Entity:     entity,
		Action:     action,
		ID:         id,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
	if err := p.Queue.Publish(topic, ev); err != nil {
		log.Printf("⚠️ failed to publish %s %s %d: %v", entity, action, id, err)
	}
}
