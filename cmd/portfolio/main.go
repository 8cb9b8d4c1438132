package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pbaille/portfolio/internal/api"
	"github.com/pbaille/portfolio/internal/config"
	"github.com/pbaille/portfolio/internal/domain"
	"github.com/pbaille/portfolio/internal/importer"
	"github.com/pbaille/portfolio/internal/kv"
	"github.com/pbaille/portfolio/internal/logging"
	"github.com/pbaille/portfolio/internal/portfolio"
	"github.com/pbaille/portfolio/internal/session"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	storage string
	dbPath  string
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Personal portfolio store with an editable HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default $HOME/.portfolio/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&storage, "storage", "", "storage backend: sqlite, redis, or memory")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "sqlite database path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(projectsCmd())
	rootCmd.AddCommand(skillsCmd())
	rootCmd.AddCommand(experiencesCmd())
	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(resetCmd())
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app is everything a command needs, wired from config
type app struct {
	cfg   config.Config
	log   zerolog.Logger
	kv    kv.Store
	store *portfolio.Store
	gate  *session.Gate
}

func getApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if storage != "" {
		cfg.Storage.Backend = storage
	}
	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Format)

	backend, err := kv.Open(ctx, kv.Options{
		Backend: cfg.Storage.Backend,
		Path:    cfg.Storage.Path,
		Redis: kv.RedisOptions{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
			Prefix:   cfg.Storage.Redis.Prefix,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "open storage")
	}

	store := portfolio.New(backend,
		portfolio.WithKey(cfg.Storage.DocumentKey),
		portfolio.WithLogger(log),
		portfolio.WithWriteTimeout(cfg.Storage.WriteTimeout),
	)
	store.Load(ctx)

	gate := session.NewGate(backend, session.Credentials{
		Email:    cfg.Owner.Email,
		Password: cfg.Owner.Password,
	}, log).WithKey(cfg.Storage.SessionKey)
	gate.Restore(ctx)

	return &app{cfg: cfg, log: log, kv: backend, store: store, gate: gate}, nil
}

func (a *app) Close() error {
	return a.kv.Close()
}

// requireLogin refuses edits while the gate is locked
func (a *app) requireLogin() error {
	if !a.gate.IsAuthenticated() {
		return errors.New("edit mode is locked; run 'portfolio login' first")
	}
	return nil
}

// saved turns a save failure into a warning and passes other errors on
func saved(err error) error {
	if errors.Is(err, portfolio.ErrNotSaved) {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return nil
	}
	return err
}

// withApp runs fn against a freshly wired app and closes it afterwards
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := getApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Start the REST API server.

Read routes are open. Edit routes need a login through POST /session with the
owner email and password from the config file (owner.email, owner.password) or
PORTFOLIO_OWNER_EMAIL and PORTFOLIO_OWNER_PASSWORD. Without them edit mode
stays locked; 'portfolio config init' writes a config with placeholders.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := getApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			server := api.New(a.store, a.gate, a.log, addr)
			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "server address (default from config)")
	return cmd
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the portfolio overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				doc := a.store.Document()
				info := doc.PersonalInfo

				fmt.Printf("%s\n%s\n", info.Name, info.Title)
				fmt.Printf("Email:    %s\n", info.Email)
				fmt.Printf("Location: %s\n", info.Location)
				if info.GitHub != "" {
					fmt.Printf("GitHub:   %s\n", info.GitHub)
				}
				if info.Summary != "" {
					fmt.Printf("\n%s\n", info.Summary)
				}

				fmt.Printf("\nFeatured projects:\n")
				for _, p := range domain.Showcase(doc.Projects, 3) {
					fmt.Printf("  %s  %s\n", shortID(p.ID), p.Title)
				}

				counts := domain.CountExperiencesByType(doc.Experiences)
				fmt.Printf("\n%d projects, %d skills, %d experiences (%d work, %d organization, %d event)\n",
					len(doc.Projects), len(doc.Skills), len(doc.Experiences),
					counts[domain.ExperienceWork], counts[domain.ExperienceOrganization], counts[domain.ExperienceEvent])
				fmt.Printf("%d education, %d achievements, %d languages\n",
					len(doc.Education), len(doc.Achievements), len(doc.Languages))
				return nil
			})
		},
	}
}

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Unlock edit mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if !a.gate.Login(ctx, email, password) {
					return errors.New("invalid email or password")
				}
				fmt.Println("Edit mode unlocked.")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "owner email")
	cmd.Flags().StringVar(&password, "password", "", "owner password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Lock edit mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				a.gate.Logout(ctx)
				fmt.Println("Edit mode locked.")
				return nil
			})
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show storage and edit-mode status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				fmt.Printf("Storage:   %s", a.cfg.Storage.Backend)
				switch a.cfg.Storage.Backend {
				case kv.BackendSQLite:
					fmt.Printf(" (%s)", a.cfg.Storage.Path)
				case kv.BackendRedis:
					fmt.Printf(" (%s)", a.cfg.Storage.Redis.Addr)
				}
				fmt.Println()
				fmt.Printf("Key:       %s\n", a.cfg.Storage.DocumentKey)
				if err := a.store.PersistError(); err != nil {
					fmt.Printf("Last save: failed (%v)\n", err)
				}
				if !a.gate.Configured() {
					fmt.Println("Owner:     not configured (set owner.email and owner.password)")
				}
				if a.gate.IsAuthenticated() {
					fmt.Println("Edit mode: unlocked")
				} else {
					fmt.Println("Edit mode: locked")
				}
				return nil
			})
		},
	}
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file or url]",
		Short: "Replace the portfolio with a JSON document or exported page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.requireLogin(); err != nil {
					return err
				}

				source := args[0]
				if importer.IsURL(source) {
					fmt.Printf("Fetching %s...\n", source)
				}
				doc, err := importer.Fetch(ctx, source)
				if err != nil {
					return err
				}

				if err := saved(a.store.Replace(doc)); err != nil {
					return err
				}
				fmt.Printf("Imported %d projects, %d skills, %d experiences.\n",
					len(doc.Projects), len(doc.Skills), len(doc.Experiences))
				return nil
			})
		},
	}
}

func exportCmd() *cobra.Command {
	var (
		asHTML bool
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the portfolio as JSON or as an HTML page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				w := os.Stdout
				if out != "" {
					f, err := os.Create(out)
					if err != nil {
						return errors.Wrap(err, "create output")
					}
					defer f.Close()
					w = f
				}

				doc := a.store.Document()
				if asHTML {
					return importer.Export(w, doc)
				}

				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return errors.Wrap(enc.Encode(doc), "encode portfolio")
			})
		},
	}

	cmd.Flags().BoolVar(&asHTML, "html", false, "render a static HTML page")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the bundled default portfolio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.requireLogin(); err != nil {
					return err
				}
				if err := saved(a.store.Reset()); err != nil {
					return err
				}
				fmt.Println("Portfolio reset to defaults.")
				return nil
			})
		},
	}
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(cfgPath); err != nil {
				return err
			}
			fmt.Println("Config written. Set owner.email and owner.password before logging in.")
			return nil
		},
	})
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, max int) string {
	// Replace newlines with spaces for display
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
