package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shaharia-lab/salon-notify/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "salon-notify",
	Short: "Checkout notifications for the salon point of sale",
	Long: `salon-notify serves the checkout notification endpoints used by the salon
point-of-sale UI: receipt emails over SMTP and bill summaries over WhatsApp.`,
	SilenceUsage: true,
}

// Execute loads configuration and runs the root command.
func Execute() {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd.AddCommand(NewServeCmd(cfg))
	rootCmd.AddCommand(NewPreviewCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewUpdateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadDotEnv loads variables from path without overriding ones already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
