// Package main provides the nexus interactive shell entry point. The shell
// connects to a running daemon, fetches the service catalog once, and starts
// the readline loop with completion and inline hints.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nexus/internal/logger"
	"nexus/internal/rpc"
	"nexus/internal/shell"
	"nexus/internal/version"
)

var (
	addr     string
	logLevel string
	logFile  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nexus",
	Short: "Nexus shell - interactive client for a nexus daemon",
	Long: `Nexus connects to a running nexusd, discovers its service catalog, and
provides an interactive shell with tab completion and inline argument hints.`,
	RunE: runShell,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&addr, "addr", rpc.DefaultEndpoint,
		"Daemon endpoint: host:port for TCP, otherwise a unix socket path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")

	if err := viper.BindPFlag("addr", rootCmd.PersistentFlags().Lookup("addr")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding addr flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-level flag: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// A .env next to the binary may carry NEXUS_ settings; absence is fine.
	_ = godotenv.Load()
	viper.SetEnvPrefix("NEXUS")
	viper.AutomaticEnv()

	if err := logger.Configure(logLevel, logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func runShell(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Connect failure and catalog fetch failure are both fatal; there is no
	// retry loop.
	client, err := rpc.Dial(ctx, addr)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	catalog, err := client.ListServices(ctx)
	if err != nil {
		return err
	}
	logger.Debug("Catalog fetched", "services", len(catalog.Services))

	return shell.New(catalog, client, os.Stdout).Run()
}
