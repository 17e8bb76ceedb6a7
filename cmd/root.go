package cmd

import (
	"fmt"
	"os"

	"github.com/parthdave/couriersim/internal/api"
	"github.com/parthdave/couriersim/internal/logger"
	"github.com/parthdave/couriersim/internal/models"
	"github.com/parthdave/couriersim/internal/producers"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "couriersim",
	Short: "Delivery window prediction and route optimization service",
	Long:  `couriersim recommends delivery time windows from historical outcomes and plans multi-stop courier routes, adjusting both with simulated real-time traffic, weather, and festival data.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		log := logger.Get()

		app, err := buildApp(cmd.Context(), cfg, log)
		if err != nil {
			log.Fatal("bootstrap failed", zap.Error(err))
		}
		defer app.Close()

		var producer producers.EventProducer = producers.NoopProducer{}
		if cfg.KafkaEnabled {
			producer, err = producers.NewSaramaProducer(cfg.KafkaBrokerList, log)
			if err != nil {
				log.Fatal("kafka producer failed", zap.Error(err))
			}
			defer producer.Close()
		}

		handler := api.NewHandler(app.Engine, app.Store, app.Generator, producer, cfg.KafkaTopic, log)
		server := api.New(cfg, handler)
		if err := server.Run(); err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().Int("seed", 42, "Random seed for signal synthesis")
	rootCmd.Flags().Int("server-port", 8080, "HTTP listen port")
	rootCmd.Flags().String("history-file", "data/delivery_history.csv", "Historical delivery log path")
	rootCmd.Flags().String("orders-file", "data/pending_orders.json", "Pending orders file path")
	rootCmd.Flags().String("database-url", "", "Postgres URL for the delivery log (CSV when empty)")
	rootCmd.Flags().String("redis-url", "", "Redis URL for the signal cache (in-memory when empty)")
	rootCmd.Flags().String("signal-source-url", "", "Live real-time data endpoint (synthesized when empty)")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka order event output")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")

	viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigType("json")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
