// Package main provides a CLI for the Triggers API.
package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	triggers "github.com/triggershq/client-go"
)

var (
	// Global flags
	apiURL        string
	apiKey        string
	signingSecret string
	requestID     string
	timeout       time.Duration
	verbose       bool
)

func main() {
	// A local .env is optional; flags and real env vars win.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "triggers",
	Short: "Triggers API CLI",
	Long: `A command-line client for the Triggers event-ingestion API.

This tool allows you to:
  - Submit events
  - List the event inbox with filters and cursor pagination
  - Fetch event detail
  - Acknowledge and delete events
  - Wait for a matching event to arrive

Environment variables:
  TRIGGERS_URL            - API base URL
  TRIGGERS_API_KEY        - API key
  TRIGGERS_SIGNING_SECRET - Shared secret for request signing (optional)`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "url", "", "API base URL (or TRIGGERS_URL env)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key (or TRIGGERS_API_KEY env)")
	rootCmd.PersistentFlags().StringVar(&signingSecret, "signing-secret", "", "Request signing secret (or TRIGGERS_SIGNING_SECRET env)")
	rootCmd.PersistentFlags().StringVar(&requestID, "request-id", "", "X-Request-ID to attach (default: generated per run)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests to stderr")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(ackCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(waitCmd)
}

// getBaseURL returns the API base URL from flags or environment
func getBaseURL() string {
	if apiURL != "" {
		return apiURL
	}
	return os.Getenv("TRIGGERS_URL")
}

// getAPIKey returns the API key from flags or environment
func getAPIKey() string {
	if apiKey != "" {
		return apiKey
	}
	return os.Getenv("TRIGGERS_API_KEY")
}

// getSigningSecret returns the signing secret from flags or environment
func getSigningSecret() string {
	if signingSecret != "" {
		return signingSecret
	}
	return os.Getenv("TRIGGERS_SIGNING_SECRET")
}

// getRequestID returns the request id from flags, generating one otherwise
func getRequestID() string {
	if requestID != "" {
		return requestID
	}
	return triggers.NewRequestID()
}

// newClient creates a new API client from the global flags
func newClient() (*triggers.Client, error) {
	opts := []triggers.Option{
		triggers.WithTimeout(timeout),
		triggers.WithRequestID(getRequestID()),
	}
	if url := getBaseURL(); url != "" {
		opts = append(opts, triggers.WithBaseURL(url))
	}
	if secret := getSigningSecret(); secret != "" {
		opts = append(opts, triggers.WithSigningSecret(secret))
	}
	if verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		opts = append(opts, triggers.WithLogger(logger))
	}
	return triggers.New(getAPIKey(), opts...)
}
