// Command motion inspects scene files and samples their frames into
// recorded draw commands.
//
// Usage:
//
//	motion info scene.yaml
//	motion sample scene.yaml --from 0 --to 1000000 --step 10
//	motion watch scene.toml
//	motion info scene.yaml --shaper shaped
//
// Configuration is read from .motion.yaml in the working or home directory
// and from MOTION_* environment variables.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/scenefile"
)

var rootCmd = &cobra.Command{
	Use:           "motion",
	Short:         "Inspect and sample motion scene files",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		return setupLogging(viper.GetString("log_level"))
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "motion:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .motion.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	rootCmd.PersistentFlags().String("shaper", scenefile.LayouterCluster, "default text layouter: cluster or shaped")
	_ = viper.BindPFlag("shaper", rootCmd.PersistentFlags().Lookup("shaper"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".motion")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("MOTION")
	viper.AutomaticEnv()

	// A missing config file leaves the defaults.
	_ = viper.ReadInConfig()
}

// setupLogging installs a text handler on stderr at the named level.
func setupLogging(level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	motion.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}
