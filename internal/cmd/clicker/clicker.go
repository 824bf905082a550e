// Package clicker parses clicker command flags and wires the economy, store
// and transport together.
package clicker

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ynizan/clicker-game/internal/economy"
	platformcmd "github.com/ynizan/clicker-game/internal/platform/cmd"
	"github.com/ynizan/clicker-game/internal/platform/timeouts"
	"github.com/ynizan/clicker-game/internal/services/clicker/domain"
	"github.com/ynizan/clicker-game/internal/services/clicker/service"
	"github.com/ynizan/clicker-game/internal/storage"
	"github.com/ynizan/clicker-game/internal/storage/memory"
	"github.com/ynizan/clicker-game/internal/storage/sqlite"
	"github.com/ynizan/clicker-game/internal/web"
	"github.com/ynizan/clicker-game/internal/web/static"
)

// Config holds clicker command configuration.
type Config struct {
	Transport         string   `env:"CLICKER_TRANSPORT"              envDefault:"stdio"`
	HTTPAddr          string   `env:"CLICKER_HTTP_ADDR"              envDefault:"localhost:8787"`
	AllowedHosts      []string `env:"CLICKER_ALLOWED_HOSTS"          envSeparator:","`
	Store             string   `env:"CLICKER_STORE"                  envDefault:"memory"`
	Balance           string   `env:"CLICKER_BALANCE"                envDefault:"hustle"`
	BalanceFile       string   `env:"CLICKER_BALANCE_FILE"`
	DefaultUser       string   `env:"CLICKER_DEFAULT_USER"           envDefault:"default"`
	VerificationToken string   `env:"OPENAI_APPS_VERIFICATION_TOKEN"`
	DemoURL           string   `env:"CLICKER_DEMO_URL"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	allowedHosts := strings.Join(cfg.AllowedHosts, ",")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&allowedHosts, "allowed-hosts", allowedHosts, "Comma-separated extra hosts accepted by the HTTP transport, or *")
	fs.StringVar(&cfg.Store, "store", cfg.Store, "Game state store: memory or sqlite")
	fs.StringVar(&cfg.Balance, "balance", cfg.Balance, "Balance preset: "+strings.Join(economy.PresetNames(), " or "))
	fs.StringVar(&cfg.BalanceFile, "balance-file", cfg.BalanceFile, "YAML balance file; overrides -balance")
	fs.StringVar(&cfg.DefaultUser, "default-user", cfg.DefaultUser, "User id for calls that carry no identity")
	fs.StringVar(&cfg.DemoURL, "demo-url", cfg.DemoURL, "Redirect target for /demo")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.AllowedHosts = splitHosts(allowedHosts)
	return cfg, nil
}

// Run starts the clicker MCP server.
func Run(ctx context.Context, cfg Config) error {
	options := platformcmd.RunOptions{ShutdownTimeout: timeouts.Shutdown}
	return platformcmd.RunWithTelemetryAndOptions(ctx, platformcmd.ServiceClicker, options, func(ctx context.Context) error {
		return run(ctx, cfg)
	})
}

func run(ctx context.Context, cfg Config) (err error) {
	transport, err := service.ParseTransport(cfg.Transport)
	if err != nil {
		return err
	}
	balance, err := resolveBalance(cfg)
	if err != nil {
		return err
	}
	engine, err := economy.NewEngine(balance)
	if err != nil {
		return err
	}
	store, err := openStore(ctx, cfg.Store, engine.Now)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close store: %w", closeErr))
		}
	}()

	dispatcher, err := domain.NewDispatcher(engine, store)
	if err != nil {
		return err
	}
	pages, err := static.Render(balance, time.Now())
	if err != nil {
		return err
	}
	server, err := service.New(service.Deps{
		Dispatcher:   dispatcher,
		WidgetMarkup: pages.Widget,
		DefaultUser:  cfg.DefaultUser,
	})
	if err != nil {
		return err
	}

	log.Printf("starting transport=%s balance=%s store=%s", transport, balance.Name, cfg.Store)
	return server.Run(ctx, service.Config{
		Transport:    transport,
		HTTPAddr:     cfg.HTTPAddr,
		AllowedHosts: cfg.AllowedHosts,
		Mount: func(mcpHandler http.Handler) http.Handler {
			return web.NewHandler(web.Options{
				Pages:             pages,
				MCP:               mcpHandler,
				VerificationToken: cfg.VerificationToken,
				DemoURL:           cfg.DemoURL,
			})
		},
	})
}

// resolveBalance prefers a balance file over the named preset.
func resolveBalance(cfg Config) (economy.Balance, error) {
	if path := strings.TrimSpace(cfg.BalanceFile); path != "" {
		return economy.LoadBalance(path)
	}
	return economy.Preset(strings.TrimSpace(cfg.Balance))
}

func openStore(ctx context.Context, name string, now func() time.Time) (storage.GameStore, error) {
	backend, err := storage.ParseBackend(strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	switch backend {
	case storage.BackendSQLite:
		return sqlite.Open(ctx, now)
	default:
		return memory.New(now), nil
	}
}

func splitHosts(value string) []string {
	var hosts []string
	for _, host := range strings.Split(value, ",") {
		if host = strings.TrimSpace(host); host != "" {
			hosts = append(hosts, host)
		}
	}
	return hosts
}
