package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"outliner/internal/config"
	"outliner/internal/editor"
	applog "outliner/internal/log"
	"outliner/internal/preferences"
	"outliner/internal/storage"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "outliner",
		Short: "AI-assisted blog outline generator and editor",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			applog.Set(debug)
		},
	}
	configPath string
	sessionID  string
	debug      bool
)

func main() {
	defer applog.Flush()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVarP(&sessionID, "session", "s", "", "Session to operate on (defaults to the last opened one)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(titleCmd)
	rootCmd.AddCommand(sectionCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(redoCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(settingsCmd)
}

// app bundles what every command needs: config, session store and
// preferences.
type app struct {
	cfg   *config.Config
	store storage.Store
	prefs *preferences.Store
}

func openApp() (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	store, err := storage.NewSQLiteStore(cfg.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &app{
		cfg:   cfg,
		store: store,
		prefs: preferences.NewStore(cfg.Storage.PreferencesDir),
	}, nil
}

func (a *app) Close() {
	_ = a.store.Close()
}

// openEditor loads the selected session into an editor. Without any
// session there is no outline to edit, which maps to editor.ErrNoOutline.
func (a *app) openEditor(ctx context.Context) (*storage.Session, *editor.Controller, error) {
	id := sessionID
	if id == "" {
		current, err := a.prefs.CurrentSession()
		if err != nil {
			return nil, nil, err
		}
		id = current
	}
	if id == "" {
		return nil, nil, fmt.Errorf("%w: run `outliner generate` first", editor.ErrNoOutline)
	}

	sess, h, err := a.store.LoadSession(ctx, id)
	if errors.Is(err, storage.ErrSessionNotFound) {
		return nil, nil, fmt.Errorf("%w: %v", editor.ErrNoOutline, err)
	}
	if err != nil {
		return nil, nil, err
	}
	ctrl, err := editor.New(h, sess.RawContent)
	if err != nil {
		return nil, nil, err
	}
	if err := a.prefs.SetCurrentSession(sess.ID); err != nil {
		return nil, nil, err
	}
	return sess, ctrl, nil
}

func (a *app) persist(ctx context.Context, sess *storage.Session, ctrl *editor.Controller) error {
	return a.store.SaveHistory(ctx, sess.ID, ctrl.History())
}
