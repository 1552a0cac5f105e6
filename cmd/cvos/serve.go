package main

import (
	"log"

	"github.com/spf13/cobra"

	"cvos-backend/internal/bootstrap"
	"cvos-backend/internal/shared/config"
	"cvos-backend/internal/shared/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var servePort string

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (overrides PORT)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if servePort != "" {
		cfg.Port = servePort
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		return err
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)
	return app.Router.Run(addr)
}
