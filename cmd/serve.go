package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/shaharia-lab/salon-notify/internal/api"
	"github.com/shaharia-lab/salon-notify/internal/build"
	"github.com/shaharia-lab/salon-notify/internal/config"
	"github.com/shaharia-lab/salon-notify/internal/eventbus"
	"github.com/shaharia-lab/salon-notify/internal/logger"
	"github.com/shaharia-lab/salon-notify/internal/metrics"
	"github.com/shaharia-lab/salon-notify/internal/notification"
	"github.com/shaharia-lab/salon-notify/internal/server"
	"github.com/shaharia-lab/salon-notify/internal/service"
	"github.com/shaharia-lab/salon-notify/internal/telemetry"
)

// NewServeCmd returns the "serve" subcommand that starts the HTTP server.
func NewServeCmd(cfg *config.AppConfig) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the notification HTTP server",
		Long: `Start the HTTP server exposing:

  POST /api/send-checkout-email   email a checkout receipt
  POST /api/send-whatsapp-bill    send a bill summary over WhatsApp
  GET  /health                    health check
  GET  /metrics                   Prometheus metrics`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// CLI flags override env config.
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			printBanner(cmd, cfg)
			return runServe(cfg)
		},
	}

	cmd.Flags().IntVar(&port, "port", cfg.Port, "HTTP server port (overrides PORT env var)")
	return cmd
}

func runServe(cfg *config.AppConfig) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sysLogger, err := logger.NewSystemLogger(cfg.LogDir, cfg.SlogLevel())
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	sysLogger.Info("salon-notify starting",
		slog.Int("port", cfg.Port),
		slog.String("environment", cfg.Environment),
		slog.String("version", build.Version),
		slog.String("commit", build.CommitSHA),
		slog.String("build_date", build.BuildDate),
		slog.Bool("email_configured", cfg.SMTP.Configured()),
		slog.Bool("whatsapp_configured", len(cfg.WhatsApp.Missing()) == 0),
		slog.Bool("tracing_enabled", cfg.OTLPEndpoint != ""),
	)

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, build.Current())
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			sysLogger.Warn("failed to flush traces", "error", err)
		}
	}()

	rec := metrics.New()

	bus := eventbus.New(eventbus.Options{
		Logger: logger.Component(sysLogger, "eventbus"),
		OnDrop: func(e eventbus.Event) { rec.EventDropped(e.Type) },
	})
	defer bus.Close()
	bus.Subscribe(notification.NewAuditHandler(logger.Component(sysLogger, "audit")).Handle)

	checkoutSvc := service.NewCheckoutService(cfg.SMTP, cfg.Profile, notification.NewSMTPMailer, rec, bus,
		logger.Component(sysLogger, "email-notifier"))
	whatsAppSvc := service.NewWhatsAppService(cfg.WhatsApp, cfg.Profile, notification.NewTwilioMessenger, rec, bus,
		logger.Component(sysLogger, "whatsapp-notifier"))

	apiSrv := api.New(checkoutSvc, whatsAppSvc, sysLogger, !cfg.IsProduction())
	srv := server.New(apiSrv, rec, server.Options{
		Port:           cfg.Port,
		AllowedOrigins: cfg.AllowedOrigins,
	}, sysLogger)

	sysLogger.Info("server ready", "url", fmt.Sprintf("http://localhost:%d", cfg.Port))
	return srv.Run(ctx)
}

var (
	bannerTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	bannerKey   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(10)
	bannerOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	bannerWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// printBanner writes the startup summary to the command's output. Structured
// logs go to the configured log sink instead.
func printBanner(cmd *cobra.Command, cfg *config.AppConfig) {
	status := func(missing []string) string {
		if len(missing) == 0 {
			return bannerOK.Render("configured")
		}
		return bannerWarn.Render("missing " + strings.Join(missing, ", "))
	}
	var emailMissing []string
	if !cfg.SMTP.Configured() {
		emailMissing = []string{"EMAIL_PASSWORD"}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, bannerTitle.Render(fmt.Sprintf("salon-notify %s · %s", build.Version, cfg.Profile.Name)))
	fmt.Fprintln(out, bannerKey.Render("listen")+fmt.Sprintf("http://localhost:%d", cfg.Port))
	fmt.Fprintln(out, bannerKey.Render("email")+status(emailMissing))
	fmt.Fprintln(out, bannerKey.Render("whatsapp")+status(cfg.WhatsApp.Missing()))
	fmt.Fprintln(out)
}
