package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cinderchain/cinder/config"
	"github.com/cinderchain/cinder/logx"
	"github.com/cinderchain/cinder/store"
)

var (
	configPath   string
	dbTuningPath string
)

var rootCmd = &cobra.Command{
	Use:   "cinder",
	Short: "Cinder ledger CLI",
	Long:  "Command line interface for building, signing, and managing pending Cinder transactions.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yml", "Path to node config file")
	rootCmd.PersistentFlags().StringVar(&dbTuningPath, "db-tuning", "", "Path to database tuning .ini file")
}

// openPendingStore builds the configured store; callers own Close.
func openPendingStore() (store.PendingStore, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	tuning := config.DefaultDBTuning()
	if dbTuningPath != "" {
		if tuning, err = config.LoadDBTuning(dbTuningPath); err != nil {
			return nil, err
		}
	}
	return store.NewPendingStore(cfg.Store, tuning)
}
