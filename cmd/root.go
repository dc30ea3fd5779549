package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"finaura/api/config"
	"finaura/api/db"
	"finaura/api/logger"
	"finaura/api/mongodb"
	"finaura/api/store"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagConfig string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:               "finaura",
	Short:             "FinAura budget assistant backend",
	Long:              "Serve and query the FinAura safe-to-spend and intervention engine.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "config.yaml", "Path to the YAML config file")
}

func setup(_ *cobra.Command, _ []string) error {
	envErr := godotenv.Load()

	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := logger.Init(cfg.Log.Development, logger.ParseLevel(cfg.Log.Level)); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if envErr != nil {
		logger.Get().Debug(".env file not loaded", zap.Error(envErr))
	}
	return nil
}

// openProvider builds the profile store selected by store.driver. The returned
// close function releases any connection it opened.
func openProvider() (store.Provider, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverMongoDB:
		s, err := mongodb.Connect(cfg.Store.MongoURI, cfg.Store.MongoDatabase, cfg.Store.MongoCollection, cfg.Store.ProfileID)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			s.Close(closeCtx)
		}, nil
	case config.DriverPostgres:
		s, err := db.Open(cfg.Store.PostgresURL, cfg.Store.ProfileID)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		logger.Get().Info("using file profile store", zap.String("path", cfg.Store.FilePath))
		return store.NewFile(cfg.Store.FilePath), func() {}, nil
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
