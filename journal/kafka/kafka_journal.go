package kafka

import (
	"context"
	"encoding/json"
	"log"

	"github.com/arunvm123/eventbooking-demo/model"
	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the journal uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaJournal struct {
	writer MessageWriter
}

// NewKafkaJournal builds a journal writing to topic on brokers.
func NewKafkaJournal(brokers []string, topic string) *KafkaJournal {
	return NewKafkaJournalWithWriter(&kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	})
}

func NewKafkaJournalWithWriter(writer MessageWriter) *KafkaJournal {
	return &KafkaJournal{writer: writer}
}

// Publish keys each message by the id of the entity it carries so that
// entries for one event land on one partition.
func (j *KafkaJournal) Publish(ctx context.Context, entry model.JournalEntry) {
	msgBytes, err := json.Marshal(entry)
	if err != nil {
		log.Printf("Failed to encode journal entry %s: %v", entry.Type, err)
		return
	}

	if err := j.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(entryKey(entry)),
		Value: msgBytes,
	}); err != nil {
		log.Printf("Failed to publish journal entry %s: %v", entry.Type, err)
	}
}

func (j *KafkaJournal) Close() error {
	return j.writer.Close()
}

func entryKey(entry model.JournalEntry) string {
	switch {
	case entry.Booking != nil:
		return entry.Booking.EventID
	case entry.Event != nil:
		return entry.Event.ID
	}
	return entry.Type
}
