package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/obralabs/truss/internal/config"
	"github.com/obralabs/truss/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "truss",
	Short: "Construction schedule and cost analysis",
	Long: `Truss computes critical-path schedules for construction projects from a
TOML plan file, and derives Gantt timelines, S-curves, earned-value metrics,
and composition-based budgets from them.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .truss.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable styled output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".truss")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("TRUSS")
	viper.AutomaticEnv()

	_ = viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// newPrinter builds the shared output printer, honoring no_color from flag,
// env, or config file.
func newPrinter() (*ui.Printer, config.Config) {
	cfg := config.Load()
	return ui.New(!cfg.NoColor), cfg
}
