// Package events subscribes to catalog change events and drops stale catalog snapshots.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/sirupsen/logrus"
)

// CatalogInvalidator drops cached catalog snapshots
type CatalogInvalidator interface {
	InvalidateCatalog(ctx context.Context)
}

// CatalogEvent is the common envelope of product and category events
type CatalogEvent struct {
	EventType  string    `json:"eventType"`
	Timestamp  time.Time `json:"timestamp"`
	ProductID  string    `json:"productId,omitempty"`
	CategoryID string    `json:"categoryId,omitempty"`
}

type catalogStream struct {
	stream  string
	subject string
	suffix  string
}

var catalogStreams = []catalogStream{
	{stream: "PRODUCT_EVENTS", subject: "product.>", suffix: "products"},
	{stream: "CATEGORY_EVENTS", subject: "category.>", suffix: "categories"},
}

// CatalogEventSubscriber invalidates the catalog cache whenever products or categories change
type CatalogEventSubscriber struct {
	nc           *nats.Conn
	js           jetstream.JetStream
	invalidator  CatalogInvalidator
	consumerName string
	logger       *logrus.Logger
}

// NewCatalogEventSubscriber connects to NATS
func NewCatalogEventSubscriber(natsURL string, invalidator CatalogInvalidator, logger *logrus.Logger) (*CatalogEventSubscriber, error) {
	nc, err := nats.Connect(natsURL,
		nats.Name("storefront-service"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.WithField("url", nc.ConnectedUrl()).Info("[NATS] Reconnected")
		}),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.WithError(err).Warn("[NATS] Disconnected")
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("[NATS] Connection closed")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			logger.WithError(err).Error("[NATS] Error")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	hostname, _ := os.Hostname()

	return &CatalogEventSubscriber{
		nc:           nc,
		js:           js,
		invalidator:  invalidator,
		consumerName: fmt.Sprintf("storefront-%s", hostname),
		logger:       logger,
	}, nil
}

// Start begins listening for catalog events until ctx is cancelled
func (s *CatalogEventSubscriber) Start(ctx context.Context) error {
	for _, cs := range catalogStreams {
		_, err := s.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
			Name:      cs.stream,
			Subjects:  []string{cs.subject},
			Retention: jetstream.LimitsPolicy,
			MaxAge:    24 * time.Hour * 7,
			Storage:   jetstream.FileStorage,
			Replicas:  1,
		})
		if err != nil {
			s.logger.WithError(err).WithField("stream", cs.stream).Warn("Could not ensure stream")
		}
	}

	for _, cs := range catalogStreams {
		go s.subscribe(ctx, cs)
	}

	s.logger.Info("Catalog event subscriber started")
	return nil
}

func (s *CatalogEventSubscriber) subscribe(ctx context.Context, cs catalogStream) {
	consumer, err := s.js.CreateOrUpdateConsumer(ctx, cs.stream, jetstream.ConsumerConfig{
		Durable:       s.consumerName + "-" + cs.suffix,
		FilterSubject: cs.subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       30 * time.Second,
		MaxDeliver:    3,
		DeliverPolicy: jetstream.DeliverNewPolicy,
	})
	if err != nil {
		s.logger.WithError(err).WithField("stream", cs.stream).Warn("Failed to create consumer")
		return
	}

	msgs, err := consumer.Messages()
	if err != nil {
		s.logger.WithError(err).WithField("stream", cs.stream).Warn("Failed to get messages iterator")
		return
	}

	go func() {
		<-ctx.Done()
		msgs.Stop()
	}()

	for {
		msg, err := msgs.Next()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.logger.WithError(err).WithField("stream", cs.stream).Warn("Error getting next message")
			time.Sleep(time.Second)
			continue
		}

		if err := s.handleEvent(ctx, msg.Subject(), msg.Data()); err != nil {
			s.logger.WithError(err).WithField("subject", msg.Subject()).Warn("Error handling catalog event")
			_ = msg.Nak()
			continue
		}
		_ = msg.Ack()
	}
}

// handleEvent invalidates the catalog for any well-formed catalog event
func (s *CatalogEventSubscriber) handleEvent(ctx context.Context, subject string, data []byte) error {
	var event CatalogEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"subject":     subject,
		"event_type":  event.EventType,
		"product_id":  event.ProductID,
		"category_id": event.CategoryID,
	}).Info("Catalog changed, invalidating cache")

	s.invalidator.InvalidateCatalog(ctx)
	return nil
}

// Close drains the NATS connection
func (s *CatalogEventSubscriber) Close() {
	if s.nc != nil {
		_ = s.nc.Drain()
	}
}
