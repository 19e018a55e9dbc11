package kafka

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"go-warehouse-ws/internal/event"

	"github.com/IBM/sarama"
)

// queueSize bounds the events waiting for delivery; Notify drops beyond it.
const queueSize = 256

// Producer publishes events to Kafka, one topic per event type, keyed by
// the business key so events for one product stay ordered. Notify hands
// events to a single delivery goroutine and never waits on the brokers.
type Producer struct {
	producer sarama.SyncProducer
	queue    chan event.Event
	done     chan struct{}

	mutex  sync.RWMutex
	closed bool
}

// NewProducer connects to the brokers, retrying while Kafka starts up.
func NewProducer(brokers []string, attempts int, wait time.Duration) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3

	var err error
	for i := 1; i <= attempts; i++ {
		var p sarama.SyncProducer
		p, err = sarama.NewSyncProducer(brokers, config)
		if err == nil {
			log.Println("Kafka producer initialized")
			return newProducer(p, queueSize), nil
		}

		log.Printf("Waiting for Kafka... (%d/%d) Error: %v", i, attempts, err)
		time.Sleep(wait)
	}
	return nil, fmt.Errorf("kafka producer: %w", err)
}

// NewProducerFrom wraps an existing sarama producer.
func NewProducerFrom(p sarama.SyncProducer) *Producer {
	return newProducer(p, queueSize)
}

func newProducer(sp sarama.SyncProducer, size int) *Producer {
	p := &Producer{
		producer: sp,
		queue:    make(chan event.Event, size),
		done:     make(chan struct{}),
	}
	go p.deliver()
	return p
}

func (p *Producer) deliver() {
	defer close(p.done)
	for e := range p.queue {
		if err := p.Publish(e); err != nil {
			log.Printf("Failed to send Kafka message: %v", err)
		}
	}
}

// Notify implements event.Notifier. It queues the event and returns at once;
// when the queue is full or the producer is closed the event is dropped.
func (p *Producer) Notify(e event.Event) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	if p.closed {
		return
	}

	select {
	case p.queue <- e:
	default:
		log.Printf("Kafka queue full, dropping %s event for %s", e.Type, e.Key)
	}
}

func (p *Producer) Publish(e event.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", e.Type, err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     e.Type,
		Key:       sarama.StringEncoder(e.Key),
		Value:     sarama.ByteEncoder(data),
		Timestamp: e.OccurredAt,
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}
	return nil
}

// Close delivers what is already queued, then closes the sarama producer.
func (p *Producer) Close() error {
	p.mutex.Lock()
	if p.closed {
		p.mutex.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mutex.Unlock()

	<-p.done
	return p.producer.Close()
}
