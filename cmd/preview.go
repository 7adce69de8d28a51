package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shaharia-lab/salon-notify/internal/billing"
	"github.com/shaharia-lab/salon-notify/internal/config"
	"github.com/shaharia-lab/salon-notify/internal/notification"
)

// NewPreviewCmd returns the "preview" subcommand that renders notifications
// from a JSON payload without sending them.
func NewPreviewCmd(cfg *config.AppConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a receipt or WhatsApp bill without sending it",
	}

	var plain bool
	receipt := &cobra.Command{
		Use:   "receipt <checkout.json>",
		Short: "Render the checkout email (HTML by default)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var bill billing.CheckoutBill
			if err := readPayload(args[0], &bill); err != nil {
				return err
			}
			bill.Normalize()

			view := notification.NewReceiptView(&bill, cfg.Profile, time.Now())
			if plain {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), notification.RenderReceiptText(view))
				return err
			}
			html, err := notification.RenderReceiptHTML(view)
			if err != nil {
				return fmt.Errorf("rendering receipt: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
			return err
		},
	}
	receipt.Flags().BoolVar(&plain, "text", false, "Render the plain-text fallback instead of HTML")

	whatsapp := &cobra.Command{
		Use:   "whatsapp <bill.json>",
		Short: "Render the WhatsApp bill summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req billing.WhatsAppBillRequest
			if err := readPayload(args[0], &req); err != nil {
				return err
			}
			req.Normalize()
			_, err := fmt.Fprintln(cmd.OutOrStdout(), notification.RenderWhatsAppBill(&req, cfg.Profile, time.Now()))
			return err
		},
	}

	cmd.AddCommand(receipt, whatsapp)
	return cmd
}

func readPayload(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path supplied by the operator
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
