package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

// LendingTopic is used when no topic is configured.
const LendingTopic = "library.lending"

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_LENDING_TOPIC"`
}

// Enabled reports whether any broker is configured.
func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3
	defaultCfg.Producer.Timeout = 5 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type EventType string

const (
	BookBorrowed EventType = "BOOK_BORROWED"
	BookReturned EventType = "BOOK_RETURNED"
)

// EventLending is published once per committed borrow or return.
type EventLending struct {
	Type       EventType `json:"type"`
	BookID     int       `json:"bookId"`
	UserID     int       `json:"userId"`
	RecordID   int       `json:"recordId"`
	OccurredAt time.Time `json:"occurredAt"`
}
