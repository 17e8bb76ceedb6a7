package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/parthdave/couriersim/internal/logger"
	"github.com/parthdave/couriersim/internal/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	predictDay  string
	predictTopK int
)

var predictCmd = &cobra.Command{
	Use:   "predict [customer]",
	Short: "Print recommended delivery windows for a customer",
	Args:  cobra.ExactArgs(1),
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

		day := predictDay
		if day == "" {
			day = time.Now().Weekday().String()
		}

		windows := app.Engine.PredictWindows(cmd.Context(), args[0], day, predictTopK)
		out, err := json.MarshalIndent(windows, "", "  ")
		if err != nil {
			log.Fatal("encode predictions", zap.Error(err))
		}
		fmt.Printf("Recommended windows for %s on %s:\n%s\n", args[0], day, out)
	},
}

func init() {
	predictCmd.Flags().StringVar(&predictDay, "day", "", "Day of week (defaults to today)")
	predictCmd.Flags().IntVar(&predictTopK, "top", 3, "Number of windows to recommend")
	rootCmd.AddCommand(predictCmd)
}
