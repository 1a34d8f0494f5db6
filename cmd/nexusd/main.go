// Package main provides the nexus daemon entry point. The daemon registers
// its services, seals the registry, and serves the catalog and command
// dispatch over a TCP address or unix socket.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nexus/internal/logger"
	"nexus/internal/registry"
	"nexus/internal/rpc"
	"nexus/internal/services"
	"nexus/internal/version"
)

var (
	listenAddr string
	logLevel   string
	logFile    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nexusd",
	Short: "Nexus daemon - remote service catalog server",
	Long: `Nexusd exposes a catalog of named services over a TCP address or unix
socket. Clients discover the catalog, validate input against it, and invoke
commands remotely.`,
	RunE: runServe,
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
	rootCmd.PersistentFlags().StringVar(&listenAddr, "listen", rpc.DefaultEndpoint,
		"Endpoint to listen on: host:port for TCP, otherwise a unix socket path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")

	if err := viper.BindPFlag("listen", rootCmd.PersistentFlags().Lookup("listen")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding listen flag: %v\n", err)
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

func runServe(_ *cobra.Command, _ []string) error {
	logger.Info("Starting nexusd", "version", version.GetVersion(), "listen", listenAddr)

	builder := registry.NewBuilder()
	if err := builder.Register(services.NewVolumeService()); err != nil {
		return err
	}
	if err := builder.Register(services.NewBlockService()); err != nil {
		return err
	}
	if err := builder.Register(services.NewNetworkService()); err != nil {
		return err
	}
	if err := builder.Register(services.NewPoolService()); err != nil {
		return err
	}

	server := rpc.NewServer(builder.Seal())
	return server.ListenAndServe(listenAddr)
}
