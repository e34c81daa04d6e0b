package events

import (
	"context"
	"fmt"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/diwise/greenhouse-monitoring/internal/pkg/infrastructure/metrics"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/google/uuid"
)

const (
	SensorReadingsCreated = "greenhouse.sensorreadings.created"
	SoilReadingCreated    = "greenhouse.soilreading.created"

	source             = "github.com/diwise/greenhouse-monitoring"
	cloudEventsContent = "application/cloudevents+json"
)

//go:generate moq -rm -out events_mock.go . Publisher

// Publisher hands domain events to a message broker
type Publisher interface {
	Publish(ctx context.Context, eventType string, timestamp time.Time, data any) error
	Close()
}

// NewEvent wraps data in a structured cloud event
func NewEvent(eventType string, timestamp time.Time, data any) (cloudevents.Event, error) {
	event := cloudevents.NewEvent()
	event.SetID(uuid.NewString())
	event.SetSource(source)
	event.SetType(eventType)
	event.SetTime(timestamp)

	err := event.SetData(cloudevents.ApplicationJSON, data)
	if err != nil {
		return event, fmt.Errorf("failed to set event data: %w", err)
	}

	return event, event.Validate()
}

// topicMessage routes a cloud event on the topic exchange by its event type
type topicMessage struct {
	cloudevents.Event
}

func (m topicMessage) ContentType() string {
	return cloudEventsContent
}

func (m topicMessage) TopicName() string {
	return m.Type()
}

type noopPublisher struct{}

// NewNoopPublisher is used when no broker is configured
func NewNoopPublisher() Publisher {
	return &noopPublisher{}
}

func (p *noopPublisher) Publish(ctx context.Context, eventType string, timestamp time.Time, data any) error {
	return nil
}

func (p *noopPublisher) Close() {}

type messagingPublisher struct {
	messenger messaging.MsgContext
}

func NewPublisher(messenger messaging.MsgContext) Publisher {
	return &messagingPublisher{
		messenger: messenger,
	}
}

func (p *messagingPublisher) Publish(ctx context.Context, eventType string, timestamp time.Time, data any) error {
	event, err := NewEvent(eventType, timestamp, data)
	if err != nil {
		return err
	}

	err = p.messenger.PublishOnTopic(ctx, topicMessage{event})
	if err != nil {
		metrics.EventsPublished.WithLabelValues(eventType, "failed").Inc()
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}

	metrics.EventsPublished.WithLabelValues(eventType, "ok").Inc()

	return nil
}

func (p *messagingPublisher) Close() {
	p.messenger.Close()
}
