package config

import (
	"fmt"
	"jobly/pkg/lib/logger/zaplogger"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

func LoadServiceConfig(log *zap.Logger, configPath, dbPasswordEnv string) (ServiceConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(configPath)

	v.SetDefault("address", DefaultAddress)
	v.SetDefault("env", zaplogger.EnvLocal)
	v.SetDefault("storage", StoragePostgres)
	v.SetDefault("redis.ttl", DefaultCacheTTL)

	v.SetEnvPrefix("JOBLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Error("Failed to Read config", zaplogger.Err(err))
		return ServiceConfig{}, err
	}

	var serviceConfig ServiceConfig
	if err := v.Unmarshal(&serviceConfig); err != nil {
		log.Error("Failed to Unmarshal config", zaplogger.Err(err))
		return ServiceConfig{}, err
	}

	switch serviceConfig.Storage {
	case StorageMemory:
	case StoragePostgres:
		dbConnStr, err := serviceConfig.DSN(dbPasswordEnv)
		if err != nil {
			log.Error("Error generating DSN for database connection", zaplogger.Err(err))
			return ServiceConfig{}, err
		}
		serviceConfig.DbConfig.DBConn = dbConnStr
	default:
		return ServiceConfig{}, fmt.Errorf("unknown storage %q", serviceConfig.Storage)
	}

	log.Info("Config", zap.Any("serviceConfig", serviceConfig))
	return serviceConfig, nil
}

func (d ServiceConfig) DSN(dbPasswordEnv string) (string, error) {
	password := os.Getenv(dbPasswordEnv)
	if password == "" {
		return "", fmt.Errorf("environment variable %s is not set", dbPasswordEnv)
	}

	return fmt.Sprintf("%s://%s:%s@%s:%d/%s",
		d.DbConfig.Driver, d.DbConfig.User, password, d.DbConfig.Host, d.DbConfig.Port, d.DbConfig.DBName), nil
}

type ServiceConfig struct {
	Address     string      `mapstructure:"address"`
	Env         string      `mapstructure:"env"`
	Storage     string      `mapstructure:"storage"`
	DbConfig    DBConfig    `mapstructure:"database"`
	NATSConfig  NATSConfig  `mapstructure:"nats"`
	RedisConfig RedisConfig `mapstructure:"redis"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver"`
	Host   string `mapstructure:"host"`
	Port   int    `mapstructure:"port"`
	User   string `mapstructure:"user"`
	DBName string `mapstructure:"dbname"`
	// Companies are registered with the in-memory storage at startup.
	SeedCompanies []string `mapstructure:"seed_companies"`
	DBConn        string   `json:"-"`
}

// NATSConfig: an empty URL disables event publishing.
type NATSConfig struct {
	URL string `mapstructure:"url"`
}

// RedisConfig: an empty URL disables the company jobs cache.
type RedisConfig struct {
	URL string        `mapstructure:"url"`
	TTL time.Duration `mapstructure:"ttl"`
}
