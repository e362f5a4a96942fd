package resolve

import (
	"strings"

	"github.com/segmentio/kafka-go"

	"tickline-hq/keystone/pkg/config"
)

// MessagingConnection is the broker descriptor for tick data.
type MessagingConnection struct {
	Brokers []string `json:"brokers"`
	Topic   string   `json:"topic"`
	GroupID string   `json:"group_id,omitempty"`
}

// Messaging resolves the broker list and topic. The broker field may hold a
// comma-separated list; blank entries are dropped.
func Messaging(snap *config.Snapshot) (MessagingConnection, error) {
	cfg, ok := snap.Messaging()
	if !ok {
		return MessagingConnection{}, &config.MissingSectionError{Section: config.SectionMessaging}
	}

	var brokers []string
	for _, b := range strings.Split(cfg.Broker, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return MessagingConnection{}, &EmptyFieldError{Section: "messaging", Field: "broker"}
	}
	if cfg.Topic == "" {
		return MessagingConnection{}, &EmptyFieldError{Section: "messaging", Field: "topic"}
	}

	return MessagingConnection{
		Brokers: brokers,
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	}, nil
}

// ReaderConfig returns consumer settings for the tick data topic.
func (c MessagingConnection) ReaderConfig() kafka.ReaderConfig {
	return kafka.ReaderConfig{
		Brokers: append([]string(nil), c.Brokers...),
		Topic:   c.Topic,
		GroupID: c.GroupID,
	}
}

// NewWriter returns a producer for the tick data topic. Messages with the
// same key land on the same partition. The writer connects lazily on the
// first write; callers must Close it.
func (c MessagingConnection) NewWriter() *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(c.Brokers...),
		Topic:    c.Topic,
		Balancer: &kafka.Hash{},
	}
}
