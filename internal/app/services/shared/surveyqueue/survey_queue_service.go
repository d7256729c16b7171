package surveyqueue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/questionnaire"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// SurveyEvent is the payload published on every lifecycle transition so
// downstream consumers (notifiers, exporters) can react without polling.
type SurveyEvent struct {
	EventID        string               `json:"event_id"`
	SurveyID       string               `json:"survey_id"`
	ServiceID      string               `json:"service_id"`
	Action         string               `json:"action"`
	PreviousStatus questionnaire.Status `json:"previous_status"`
	NewStatus      questionnaire.Status `json:"new_status"`
	ActorID        string               `json:"actor_id"`
	OccurredAt     time.Time            `json:"occurred_at"`
}

// Service publishes survey lifecycle events to a durable queue with
// publisher confirms.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

// Publish sends the event and waits for the broker confirm so a positive
// return means the event is on disk broker-side.
func (s *Service) Publish(ctx context.Context, event *SurveyEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", s.queueName, false, false, msg); err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrQueuePublish(fmt.Errorf("message not confirmed"))
		}
	case <-ctx.Done():
		return exceptions.ErrQueuePublish(ctx.Err())
	}

	s.log.Info("survey event published",
		zap.String("survey_id", event.SurveyID),
		zap.String("action", event.Action),
	)
	return nil
}
