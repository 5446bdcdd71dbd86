package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/voicedesk/core/cmd/api/commands"
)

// @title VoiceDesk API
// @version 1.0
// @description Voice-assistant backend for todos, reminders and calendar entries

// @host localhost:8080
// @BasePath /

func main() {
	rootCmd := &cobra.Command{
		Use:   "voicedesk",
		Short: "VoiceDesk API Server",
		Long:  `VoiceDesk is a voice-assistant backend exposing todo, reminder and calendar operations through tool-call endpoints.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
