package main

import (
	"fmt"
	"net"
	"os"

	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/server"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/services/analysis"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the ROI report web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to an analysis configuration profile (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := analysis.DefaultConfig()
	if cfgPath != "" {
		loaded, err := analysis.LoadConfig(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load analysis config: %w", err)
		}
		cfg = *loaded
		logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	}

	service := analysis.NewController(cfg)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}
	addr := net.JoinHostPort(host, port)

	api := server.NewWebAPI(logger, server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Analysis: service,
		},
	})

	logger.Info().Msgf("starting server on %s", addr)
	return api.Start()
}
