// Package handlerwrapper adapts typed event handlers to watermill handler
// functions: it decodes the payload, runs the handler inside a span and
// encodes every result as an outgoing message addressed by its topic.
package handlerwrapper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/fairway/app/shared/attr"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// MetadataTopic carries the destination topic of a produced message. The
// event bus publisher routes on it when the router has no fixed publish topic.
const MetadataTopic = "topic"

// Result is one outgoing event produced by a handler.
type Result struct {
	Topic    string
	Payload  any
	Metadata map[string]string
}

// Metrics records handler outcomes.
type Metrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, d time.Duration)
}

// WrapTransformingTyped builds a watermill handler around a typed handler.
// A payload that cannot be decoded is logged and acknowledged, since
// redelivering it can never succeed. Handler errors are returned so the
// router's retry middleware can redeliver.
func WrapTransformingTyped[T any](
	handlerName string,
	logger *slog.Logger,
	tracer trace.Tracer,
	metrics Metrics,
	handler func(context.Context, *T) ([]Result, error),
) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		correlationID := middleware.MessageCorrelationID(msg)
		ctx := attr.WithCorrelationID(msg.Context(), correlationID)

		if tracer != nil {
			var span trace.Span
			ctx, span = tracer.Start(ctx, handlerName, trace.WithAttributes(
				attribute.String("message.uuid", msg.UUID),
				attribute.String("correlation_id", correlationID),
			))
			defer span.End()
		}

		if metrics != nil {
			metrics.RecordOperationAttempt(ctx, handlerName)
			start := time.Now()
			defer func() { metrics.RecordOperationDuration(ctx, handlerName, time.Since(start)) }()
		}

		payload := new(T)
		if err := json.Unmarshal(msg.Payload, payload); err != nil {
			logger.ErrorContext(ctx, "Dropping undecodable message",
				attr.String("handler", handlerName),
				attr.String("message_id", msg.UUID),
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			recordFailure(ctx, metrics, handlerName, err)
			return nil, nil
		}

		out, err := handler(ctx, payload)
		if err != nil {
			logger.ErrorContext(ctx, "Handler failed",
				attr.String("handler", handlerName),
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			recordFailure(ctx, metrics, handlerName, err)
			return nil, err
		}

		msgs := make([]*message.Message, 0, len(out))
		for _, r := range out {
			m, err := newMessage(r, correlationID)
			if err != nil {
				recordFailure(ctx, metrics, handlerName, err)
				return nil, fmt.Errorf("%s: %w", handlerName, err)
			}
			msgs = append(msgs, m)
		}

		if metrics != nil {
			metrics.RecordOperationSuccess(ctx, handlerName)
		}
		return msgs, nil
	}
}

func recordFailure(ctx context.Context, metrics Metrics, handlerName string, err error) {
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if metrics != nil {
		metrics.RecordOperationFailure(ctx, handlerName)
	}
}

// NewMessage encodes a payload for topic, carrying correlationID forward.
func NewMessage(topic string, payload any, correlationID string) (*message.Message, error) {
	return newMessage(Result{Topic: topic, Payload: payload}, correlationID)
}

func newMessage(r Result, correlationID string) (*message.Message, error) {
	if r.Topic == "" {
		return nil, fmt.Errorf("result has no topic")
	}
	data, err := json.Marshal(r.Payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload for %s: %w", r.Topic, err)
	}

	m := message.NewMessage(watermill.NewUUID(), data)
	for k, v := range r.Metadata {
		m.Metadata.Set(k, v)
	}
	m.Metadata.Set(MetadataTopic, r.Topic)
	if correlationID == "" {
		correlationID = watermill.NewUUID()
	}
	middleware.SetCorrelationID(correlationID, m)
	return m, nil
}
