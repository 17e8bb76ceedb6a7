package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Seed        int    `mapstructure:"seed"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
	ServerPort  int    `mapstructure:"server_port"`

	CityName      string `mapstructure:"city_name"`
	StartLocation string `mapstructure:"start_location"`
	StartZone     string `mapstructure:"start_zone"`

	HistoryFile string `mapstructure:"history_file"`
	OrdersFile  string `mapstructure:"orders_file"`
	SeedOrders  int    `mapstructure:"seed_orders"`

	// DatabaseURL switches the historical log source from the CSV file to
	// Postgres when set.
	DatabaseURL string `mapstructure:"database_url"`

	// RedisURL switches the signal cache from in-memory to Redis when set.
	RedisURL string `mapstructure:"redis_url"`

	// SignalSourceURL points at a live real-time data endpoint. When empty,
	// all signals are synthesized locally.
	SignalSourceURL string        `mapstructure:"signal_source_url"`
	SignalTimeout   time.Duration `mapstructure:"signal_timeout"`

	TrafficTTL  time.Duration `mapstructure:"traffic_ttl"`
	WeatherTTL  time.Duration `mapstructure:"weather_ttl"`
	FestivalTTL time.Duration `mapstructure:"festival_ttl"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	KafkaTopic      string `mapstructure:"kafka_topic"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("environment", "development")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("server_port", 8080)
	viper.SetDefault("city_name", "Ahmedabad")
	viper.SetDefault("start_location", "Iscon Center, Shivranjani Cross Road, Satellite, Ahmedabad, India")
	viper.SetDefault("start_zone", "Satellite")
	viper.SetDefault("history_file", "data/delivery_history.csv")
	viper.SetDefault("orders_file", "data/pending_orders.json")
	viper.SetDefault("seed_orders", 20)
	viper.SetDefault("signal_timeout", "10s")
	viper.SetDefault("traffic_ttl", "15m")
	viper.SetDefault("weather_ttl", "1h")
	viper.SetDefault("festival_ttl", "24h")
	viper.SetDefault("kafka_broker_list", "localhost:9092")
	viper.SetDefault("kafka_topic", "delivery_order_events")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
