package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/monochrome-todo/core/cmd/api/commands"
)

// @title Monochrome Todo API
// @version 1.0
// @description Personal task management backend with calendar scheduling and per-user themes

// @host localhost:5000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	rootCmd := &cobra.Command{
		Use:   "monochrome",
		Short: "Monochrome Todo API Server",
		Long:  `Monochrome Todo is a personal task management backend with JWT authentication, calendar scheduling, and per-user display themes.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewUserCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
