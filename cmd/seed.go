package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/parthdave/couriersim/internal/history"
	"github.com/parthdave/couriersim/internal/logger"
	"github.com/parthdave/couriersim/internal/models"
	"github.com/parthdave/couriersim/internal/orders"
	"github.com/parthdave/couriersim/internal/repositories/postgres"
	"github.com/parthdave/couriersim/internal/zones"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedRecordsPerCustomer int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a mock delivery history and pending order file",
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

		rng := rand.New(rand.NewSource(int64(cfg.Seed)))
		registry := zones.DefaultRegistry()
		gen := orders.NewGenerator(registry, rng)

		names := registry.CustomerNames()
		bar := progressbar.Default(int64(len(names)+2), "seeding")

		var records []models.DeliveryRecord
		for _, name := range names {
			records = append(records, gen.HistoryRecordsFor(name, seedRecordsPerCustomer)...)
			bar.Add(1)
		}

		if err := history.SaveRecords(cfg.HistoryFile, records); err != nil {
			log.Fatal("write delivery history", zap.Error(err))
		}
		bar.Add(1)

		if cfg.DatabaseURL != "" {
			pool, err := postgres.Connect(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				log.Fatal("connect postgres", zap.Error(err))
			}
			defer pool.Close()

			repo := postgres.NewDeliveryRecordRepository(pool)
			if err := repo.DeleteAll(cmd.Context()); err != nil {
				log.Fatal("clear delivery records", zap.Error(err))
			}
			if err := repo.BulkCreate(cmd.Context(), records); err != nil {
				log.Fatal("insert delivery records", zap.Error(err))
			}
		}

		store, err := orders.NewStore(cfg.OrdersFile, log)
		if err != nil {
			log.Fatal("open order store", zap.Error(err))
		}
		if err := store.Replace(gen.PendingOrders(cfg.SeedOrders)); err != nil {
			log.Fatal("write pending orders", zap.Error(err))
		}
		bar.Add(1)

		log.Info("seed complete",
			zap.Int("history_records", len(records)),
			zap.Int("pending_orders", cfg.SeedOrders),
			zap.String("history_file", cfg.HistoryFile),
			zap.String("orders_file", cfg.OrdersFile))
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedRecordsPerCustomer, "records-per-customer", 40, "History rows to generate per customer")
	rootCmd.AddCommand(seedCmd)
}
