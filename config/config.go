package config

import (
	// Local Packages
	errors "tx-authorizer/errors"
)

var DefaultConfig = []byte(`
application: "tx-authorizer"

logger:
  level: "debug"

is_prod_mode: false

server:
  port: 8080

mongo:
  uri: "mongodb://localhost:27017"
  database: "payments"

redis:
  uri: "localhost:6379"
  password: ""

kafka:
  brokers:
    - "localhost:9092"
  publish: true
  topic: "transactions"
  producer_name: "tx-authorizer"

bank:
  failure_rate: 30
`)

type Config struct {
	Application string `koanf:"application"`
	Logger      Logger `koanf:"logger"`
	IsProdMode  bool   `koanf:"is_prod_mode"`
	Server      Server `koanf:"server"`
	Mongo       Mongo  `koanf:"mongo"`
	Redis       Redis  `koanf:"redis"`
	Kafka       Kafka  `koanf:"kafka"`
	Bank        Bank   `koanf:"bank"`
}

type Logger struct {
	Level string `koanf:"level"`
}

type Server struct {
	Port int `koanf:"port"`
}

type Mongo struct {
	URI      string `koanf:"uri"`
	Database string `koanf:"database"`
}

type Redis struct {
	URI      string `koanf:"uri"`
	Password string `koanf:"password"`
}

type Kafka struct {
	Brokers      []string `koanf:"brokers"`
	Publish      bool     `koanf:"publish"`
	Topic        string   `koanf:"topic"`
	ProducerName string   `koanf:"producer_name"`
}

type Bank struct {
	// FailureRate is the simulated bank-unavailability threshold: a uniform
	// draw in [0,100) at or below this value fails the mutation.
	FailureRate int `koanf:"failure_rate"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	ve := errors.ValidationErrs()

	if c.Application == "" {
		ve.Add("application", "cannot be empty")
	}
	if c.Logger.Level == "" {
		ve.Add("logger.level", "cannot be empty")
	}
	if c.Server.Port <= 0 {
		ve.Add("server.port", "must be positive")
	}
	if c.Mongo.URI == "" {
		ve.Add("mongo.uri", "cannot be empty")
	}
	if c.Mongo.Database == "" {
		ve.Add("mongo.database", "cannot be empty")
	}
	if c.Redis.URI == "" {
		ve.Add("redis.uri", "cannot be empty")
	}
	if c.Kafka.Publish && len(c.Kafka.Brokers) == 0 {
		ve.Add("kafka.brokers", "cannot be empty")
	}
	if c.Bank.FailureRate < 0 || c.Bank.FailureRate >= 100 {
		ve.Add("bank.failure_rate", "must be in [0, 100)")
	}

	return ve.Err()
}
