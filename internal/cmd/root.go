// Package cmd implements the wmsctl command tree. Every command that talks
// to the backend goes through app(), which resolves the stored session and
// enforces the same guard and role gates as the interactive console.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wmstack/wmsctl/internal/api"
	"github.com/wmstack/wmsctl/internal/auth"
	"github.com/wmstack/wmsctl/internal/config"
	"github.com/wmstack/wmsctl/internal/errors"
	"github.com/wmstack/wmsctl/internal/guard"
	"github.com/wmstack/wmsctl/internal/log"
	"github.com/wmstack/wmsctl/internal/rbac"
)

var rootCmd = &cobra.Command{
	Use:   "wmsctl",
	Short: "Warehouse management console",
	Long: `wmsctl is a terminal client for a warehouse management backend.

It keeps a login session across invocations, enforces the same role-based
access rules as the web frontend, and exposes inventory, procurement,
sales, reports, and settings both as subcommands and as an interactive
console (wmsctl console).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wmsctl/config.yaml)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// App bundles everything a command needs to talk to the backend
type App struct {
	Config  *config.Config
	Client  *api.Client
	Store   *auth.Store
	Manager *auth.Manager
	Loader  *auth.Loader
}

// newApp builds the application wiring from configuration. It does not
// resolve the session; login and console want it unresolved.
func newApp() (*App, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	logConfig := log.DefaultConfig()
	logConfig.Level = log.ParseLevel(cfg.Log.Level)
	if cfg.Log.File != "" {
		logConfig = log.FileConfig(cfg.Log.File, logConfig.Level)
	}
	log.SetDefaultLogger(log.New(logConfig))

	client := api.NewClient(cfg.APIURL)
	client.SetTimeout(cfg.Timeout())

	store := auth.NewStore(cfg.StateDir)
	if cfg.SessionPassphrase != "" {
		store = store.WithPassphrase(cfg.SessionPassphrase)
	}

	manager := auth.NewManager(client, store)
	if cfg.LogoutRevoke {
		manager.EnableLogoutRevocation()
	}

	return &App{
		Config:  cfg,
		Client:  client,
		Store:   store,
		Manager: manager,
		Loader:  auth.NewLoader(manager),
	}, nil
}

// app builds the wiring and resolves the stored session. Commands calling
// this require a live session: anything short of an authenticated state is
// an auth error before a single domain request goes out.
func app(ctx context.Context) (*App, error) {
	a, err := newApp()
	if err != nil {
		return nil, err
	}

	a.Loader.Load(ctx)

	switch guard.Decide(a.Manager.State()) {
	case guard.DecisionAllow:
		return a, nil
	default:
		return nil, errors.NewNotLoggedInError()
	}
}

// requireEntry enforces the navigation policy for a command, mirroring
// what the console sidebar hides. Fail closed: an unknown entry or an
// unrecognized role denies.
func (a *App) requireEntry(entryID string) error {
	entry, ok := rbac.FindEntry(entryID)
	if !ok {
		return errors.NewForbiddenError(entryID)
	}
	role := rbac.ParseRole(a.Manager.State().User.Role)
	if !rbac.CanSee(role, entry.Required) {
		return errors.NewForbiddenError(entry.Title)
	}
	return nil
}

// User returns the authenticated user. Only valid after app() succeeded.
func (a *App) User() *api.User {
	return a.Manager.State().User
}

func printList[T any](items []T, noun string, line func(T) string) {
	fmt.Printf("%d %s\n", len(items), noun)
	for _, item := range items {
		fmt.Println("  " + line(item))
	}
}
