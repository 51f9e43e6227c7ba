package config_test

import (
	// Go Internal Packages
	"testing"

	// Local Packages
	config "tx-authorizer/config"

	// External Packages
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/stretchr/testify/require"
)

func loadDefault(t *testing.T) config.Config {
	t.Helper()
	k := koanf.New(".")
	require.NoError(t, k.Load(rawbytes.Provider(config.DefaultConfig), yaml.Parser()))

	conf := config.Config{}
	require.NoError(t, k.Unmarshal("", &conf))
	return conf
}

func TestDefaultConfigIsValid(t *testing.T) {
	conf := loadDefault(t)
	require.NoError(t, conf.Validate())
	require.Equal(t, "tx-authorizer", conf.Application)
	require.Equal(t, 30, conf.Bank.FailureRate)
	require.Equal(t, "transactions", conf.Kafka.Topic)
}

func TestValidateRejectsBadValues(t *testing.T) {
	conf := loadDefault(t)
	conf.Mongo.URI = ""
	conf.Bank.FailureRate = 100
	err := conf.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "mongo.uri")
	require.Contains(t, err.Error(), "bank.failure_rate")
}

func TestValidateAllowsDisabledKafka(t *testing.T) {
	conf := loadDefault(t)
	conf.Kafka.Publish = false
	conf.Kafka.Brokers = nil
	require.NoError(t, conf.Validate())
}
