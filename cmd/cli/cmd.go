package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wasmrelay",
	Short: "wasmrelay CLI",
	Long:  `wasmrelay is a command line interface for submitting playground jobs to the wasmrelay-server`,
}

func init() {
	if os.Getenv("DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	rootCmd.PersistentFlags().StringP("relay-url", "r", "http://localhost:3000", "Base URL of the relay server")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "set the logger to this log level")
}

func Execute() error {
	return rootCmd.Execute()
}
