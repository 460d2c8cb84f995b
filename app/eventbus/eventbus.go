// Package eventbus provides the watermill publisher and subscriber used by
// module routers: NATS when a server URL is configured, an in-process
// channel otherwise.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/fairway/app/shared/handlerwrapper"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	nc "github.com/nats-io/nats.go"
)

// ErrNoTopic is returned when a message is published without a topic and
// carries none in its metadata.
var ErrNoTopic = errors.New("message has no topic")

// EventBus publishes and subscribes to topics.
type EventBus interface {
	message.Publisher
	message.Subscriber
}

// Bus joins a publisher and a subscriber. Publishing to the empty topic
// routes each message by its "topic" metadata, which is how router handlers
// address their results.
type Bus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	logger     *slog.Logger
}

var _ EventBus = (*Bus)(nil)

// Options configures NewNATS.
type Options struct {
	URL        string
	QueueGroup string
}

// NewNATS connects a core NATS publisher and a queue-group subscriber.
func NewNATS(opts Options, logger *slog.Logger) (*Bus, error) {
	wmLogger := watermill.NewSlogLogger(logger)
	natsOptions := []nc.Option{
		nc.RetryOnFailedConnect(true),
		nc.Timeout(30 * time.Second),
		nc.ReconnectWait(1 * time.Second),
	}
	marshaler := &nats.NATSMarshaler{}
	jetStream := nats.JetStreamConfig{Disabled: true}

	publisher, err := nats.NewPublisher(nats.PublisherConfig{
		URL:         opts.URL,
		NatsOptions: natsOptions,
		Marshaler:   marshaler,
		JetStream:   jetStream,
	}, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	queueGroup := opts.QueueGroup
	if queueGroup == "" {
		queueGroup = "fairway"
	}
	subscriber, err := nats.NewSubscriber(nats.SubscriberConfig{
		URL:              opts.URL,
		QueueGroupPrefix: queueGroup,
		SubscribersCount: 1,
		AckWaitTimeout:   30 * time.Second,
		CloseTimeout:     30 * time.Second,
		NatsOptions:      natsOptions,
		Unmarshaler:      marshaler,
		JetStream:        jetStream,
	}, wmLogger)
	if err != nil {
		_ = publisher.Close()
		return nil, fmt.Errorf("failed to create NATS subscriber: %w", err)
	}

	logger.Info("Connected event bus to NATS", slog.String("url", opts.URL))
	return &Bus{publisher: publisher, subscriber: subscriber, logger: logger}, nil
}

// NewInMemory returns a bus backed by a watermill go channel.
func NewInMemory(logger *slog.Logger) *Bus {
	ch := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 256}, watermill.NewSlogLogger(logger))
	return &Bus{publisher: ch, subscriber: ch, logger: logger}
}

// Publish sends msgs to topic, or to each message's metadata topic when
// topic is empty.
func (b *Bus) Publish(topic string, msgs ...*message.Message) error {
	if topic != "" {
		return b.publisher.Publish(topic, msgs...)
	}
	for _, m := range msgs {
		t := m.Metadata.Get(handlerwrapper.MetadataTopic)
		if t == "" {
			return fmt.Errorf("publish %s: %w", m.UUID, ErrNoTopic)
		}
		if err := b.publisher.Publish(t, m); err != nil {
			return err
		}
	}
	return nil
}

// Subscribe streams messages published to topic.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.subscriber.Subscribe(ctx, topic)
}

// Close closes the subscriber and publisher. A shared go channel is closed
// once.
func (b *Bus) Close() error {
	var errs []error
	if err := b.subscriber.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close subscriber: %w", err))
	}
	if pub, ok := b.publisher.(message.Subscriber); !ok || pub != b.subscriber {
		if err := b.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close publisher: %w", err))
		}
	}
	return errors.Join(errs...)
}
