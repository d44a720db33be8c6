package events

import (
	"context"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/pkg/circuit_breaker"
	"github.com/Astemirdum/library-lending/pkg/jsonx"
	"github.com/Astemirdum/library-lending/pkg/kafka"
)

type Publisher interface {
	Publish(ctx context.Context, ev kafka.EventLending) error
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

// NewKafkaPublisher sends lending events keyed by book id to topic, or to
// kafka.LendingTopic when topic is empty. A circuit breaker short-circuits
// sends while the brokers keep failing.
func NewKafkaPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) Publisher {
	if topic == "" {
		topic = kafka.LendingTopic
	}
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		cb: circuit_breaker.New(circuit_breaker.Config{
			Window:        10,
			Cooldown:      30 * time.Second,
			FailureRatio:  0.5,
			RecoveryCalls: 3,
		}),
		log: log.Named("events"),
	}
}

func (p *kafkaPublisher) Publish(_ context.Context, ev kafka.EventLending) error {
	data, err := jsonx.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(bookKey(ev.BookID)),
		Value: sarama.ByteEncoder(data),
	}
	return p.cb.Call(func() error {
		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			return errors.Wrap(err, "send message")
		}
		p.log.Debug("published",
			zap.String("type", string(ev.Type)),
			zap.Int32("partition", partition),
			zap.Int64("offset", offset))
		return nil
	})
}

func bookKey(id int) string {
	return "book-" + strconv.Itoa(id)
}

type nopPublisher struct{}

// NewNopPublisher discards every event; used when no brokers are configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, kafka.EventLending) error { return nil }
