package cmd

import (
	"github.com/nutrobots/nutrobot-go/config"
	"github.com/nutrobots/nutrobot-go/internal/bot"
	"github.com/nutrobots/nutrobot-go/internal/db"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nutrobot",
	Short: "Telegram bot that tracks nutrition from free-text meal reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return bot.StartBot()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return bot.StartBot()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfigOrPanic()
		return db.Migrate(cfg.DBConfig)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
