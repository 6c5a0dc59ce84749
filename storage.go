package main

import (
	"fmt"
	"log"

	"github.com/arunvm123/eventbooking-demo/config"
	"github.com/arunvm123/eventbooking-demo/journal"
	kafkajournal "github.com/arunvm123/eventbooking-demo/journal/kafka"
	"github.com/arunvm123/eventbooking-demo/kvstore"
	"github.com/arunvm123/eventbooking-demo/kvstore/memory"
	"github.com/arunvm123/eventbooking-demo/kvstore/postgres"
	"github.com/arunvm123/eventbooking-demo/kvstore/redis"
	"github.com/arunvm123/eventbooking-demo/repository"
	"github.com/arunvm123/eventbooking-demo/repository/kv"
)

// NewRepository opens the key-value backend named by storage.driver.
func NewRepository(cfg *config.Config) (repository.Repository, error) {
	var (
		backend kvstore.Store
		err     error
	)

	switch cfg.Storage.Driver {
	case config.StorageRedis:
		backend, err = redis.NewRedisStore(cfg.Redis.GetRedisURL(), cfg.Redis.Password, cfg.Redis.DB)
	case config.StoragePostgres:
		backend, err = postgres.NewPostgresStore(&cfg.Database)
	case config.StorageMemory:
		log.Println("Using in-memory storage; data is lost on restart")
		backend = memory.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	if err != nil {
		return nil, err
	}

	return kv.NewKVRepository(backend, cfg.Storage.KeyPrefix), nil
}

// NewJournal returns the Kafka change journal when enabled.
func NewJournal(cfg *config.Config) journal.Publisher {
	if !cfg.Kafka.Enabled {
		return journal.Noop{}
	}
	log.Printf("Mirroring changes to Kafka topic %s", cfg.Kafka.JournalTopic)
	return kafkajournal.NewKafkaJournal(cfg.Kafka.Brokers, cfg.Kafka.JournalTopic)
}
