package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	mailpit "github.com/mailpit/client-go"
)

var (
	client *mailpit.Client
	logger zerolog.Logger

	debug bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mailpit",
	Short: "A command line client for the Mailpit API",
	Long: `mailpit is a CLI for a running Mailpit server. It lists, searches,
tags, sends, exports and deletes captured messages over the HTTP API.

The server address is taken from --url or the MAILPIT_URL environment
variable (default http://localhost:8025). Set MAILPIT_USERNAME and
MAILPIT_PASSWORD if the API is behind basic authentication.`,
	PersistentPreRunE: initializeClient,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("url", "", "Mailpit server URL (default http://localhost:8025)")
	rootCmd.PersistentFlags().String("username", "", "basic auth username")
	rootCmd.PersistentFlags().String("password", "", "basic auth password")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every API request")

	viper.SetDefault("url", "http://localhost:8025")
	viper.SetEnvPrefix("mailpit")
	viper.AutomaticEnv()
	viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))
	viper.BindPFlag("username", rootCmd.PersistentFlags().Lookup("username"))
	viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("password"))

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(messagesCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(chaosCmd)
}

// initializeClient builds the shared logger and API client.
func initializeClient(cmd *cobra.Command, args []string) error {
	logger = setupLogger(debug)

	url := viper.GetString("url")
	username := viper.GetString("username")
	password := viper.GetString("password")

	var err error
	if username != "" {
		client, err = mailpit.NewWithAuth(url, username, password, mailpit.WithLogger(logger))
	} else {
		client, err = mailpit.New(url, mailpit.WithLogger(logger))
	}
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
