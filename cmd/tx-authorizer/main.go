package main

import (
	// Go Internal Packages
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	// Local Packages
	config "tx-authorizer/config"
	helpers "tx-authorizer/helpers"
	kafka "tx-authorizer/kafka"
	mongodb "tx-authorizer/repositories/mongodb"
	redis "tx-authorizer/repositories/redis"
	server "tx-authorizer/server"
	authorizer "tx-authorizer/services/authorizer"

	// External Packages
	"github.com/alecthomas/kingpin/v2"
	_ "github.com/jsternberg/zap-logfmt"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

// LoadSecrets loads the secret variables and overrides the config
func LoadSecrets(k config.Config) config.Config {
	MongoURI := os.Getenv("MONGO_URI")
	if MongoURI != "" {
		k.Mongo.URI = MongoURI
	}

	RedisURI := os.Getenv("REDIS_URI")
	if RedisURI != "" {
		k.Redis.URI = RedisURI
	}

	KafkaBrokers := os.Getenv("KAFKA_BROKERS")
	if KafkaBrokers != "" {
		k.Kafka.Brokers = strings.Split(KafkaBrokers, ",")
	}

	IsProdMode := os.Getenv("IS_PROD_MODE")
	if IsProdMode != "" {
		k.IsProdMode = IsProdMode == "true"
	}
	return k
}

// LoadConfig loads the default configuration and overrides it with the config file
// specified by the path defined in the config flag
func LoadConfig() *koanf.Koanf {
	configPathMsg := "Path to the application config file"
	configPath := kingpin.Flag("config", configPathMsg).Short('c').Default("config.yml").String()

	kingpin.Parse()
	k := koanf.New(".")
	_ = k.Load(rawbytes.Provider(config.DefaultConfig), yaml.Parser())
	if *configPath != "" {
		_ = k.Load(file.Provider(*configPath), yaml.Parser())
	}
	return k
}

func main() {
	k := LoadConfig()
	appKonf := config.Config{}

	// Unmarshalling config into struct
	err := k.Unmarshal("", &appKonf)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Update and validate config before starting the server
	updatedKonf := LoadSecrets(appKonf)
	if err = updatedKonf.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if !updatedKonf.IsProdMode {
		helpers.PrintStruct(updatedKonf)
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "logfmt"
	_ = cfg.Level.UnmarshalText([]byte(k.String("logger.level")))
	cfg.InitialFields = make(map[string]any)
	cfg.InitialFields["host"], _ = os.Hostname()
	cfg.InitialFields["service"] = updatedKonf.Application
	cfg.OutputPaths = []string{"stdout"}
	logger, _ := cfg.Build()
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Mongo Connection
	mongoClient, err := mongodb.Connect(ctx, updatedKonf.Mongo.URI)
	if err != nil {
		logger.Fatal("cannot create mongo client", zap.Error(err))
	}

	// Redis Connection
	redisClient, err := redis.Connect(ctx, updatedKonf.Redis.URI, updatedKonf.Redis.Password)
	if err != nil {
		logger.Fatal("cannot create redis client", zap.Error(err))
	}

	accountsRepo := mongodb.NewAccountsRepository(mongoClient, updatedKonf.Mongo.Database)
	merchantsRepo := mongodb.NewMerchantsRepository(mongoClient, updatedKonf.Mongo.Database)
	auditRepo := mongodb.NewAuditRepository(mongoClient, updatedKonf.Mongo.Database)
	dlQueue := redis.NewDeadLetterQueue(redisClient, logger)

	metrics := kprom.NewMetrics("txa")

	var stream authorizer.AuditStream
	if updatedKonf.Kafka.Publish {
		conf := &kafka.ProducerConfig{
			Brokers: updatedKonf.Kafka.Brokers,
			Name:    updatedKonf.Kafka.ProducerName,
			Topic:   updatedKonf.Kafka.Topic,
		}
		producer, err := kafka.NewAuditProducer(conf, metrics, logger)
		if err != nil {
			logger.Fatal("cannot create audit producer", zap.Error(err))
		}
		defer producer.Close(context.Background())
		stream = producer
	}

	recorder := authorizer.NewRecorder(logger, auditRepo, stream, dlQueue)
	fault := authorizer.NewRandomFault(updatedKonf.Bank.FailureRate)
	engine := authorizer.NewEngine(logger, accountsRepo, merchantsRepo, recorder, fault)

	health := func(ctx context.Context) error {
		if err := mongoClient.Ping(ctx, nil); err != nil {
			return err
		}
		return redisClient.Ping(ctx).Err()
	}

	srv := server.New(logger, engine, metrics, health)
	if err = srv.Run(ctx, updatedKonf.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
