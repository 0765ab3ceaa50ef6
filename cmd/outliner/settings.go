package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"outliner/internal/preferences"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change default generation preferences",
	Run: func(cmd *cobra.Command, args []string) {
		withPreferences(func(s *preferences.Store) {
			p, err := s.Load()
			if err != nil {
				log.Fatalf("Failed to load preferences: %v", err)
			}
			printPreferences(p)
		})
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one preference (defaultTone, defaultOutputType, defaultAudience, darkMode, competitorMode)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		withPreferences(func(s *preferences.Store) {
			p, err := s.Load()
			if err != nil {
				log.Fatalf("Failed to load preferences: %v", err)
			}
			if err := p.Set(args[0], args[1]); err != nil {
				log.Fatal(err)
			}
			if err := s.Save(p); err != nil {
				log.Fatalf("Failed to save preferences: %v", err)
			}
			fmt.Println("✅ Settings saved")
		})
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all preferences to defaults",
	Run: func(cmd *cobra.Command, args []string) {
		withPreferences(func(s *preferences.Store) {
			p, err := s.Reset()
			if err != nil {
				log.Fatalf("Failed to reset preferences: %v", err)
			}
			fmt.Println("✅ Settings reset")
			printPreferences(p)
		})
	},
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}

func withPreferences(fn func(*preferences.Store)) {
	a, err := openApp()
	if err != nil {
		log.Fatalf("Setup failed: %v", err)
	}
	defer a.Close()
	fn(a.prefs)
}

func printPreferences(p preferences.Preferences) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Key"), bold("Value"))
	tbl.AddRow("defaultTone", p.DefaultTone)
	tbl.AddRow("defaultOutputType", p.DefaultOutputType)
	tbl.AddRow("defaultAudience", p.DefaultAudience)
	tbl.AddRow("darkMode", strconv.FormatBool(p.DarkMode))
	tbl.AddRow("competitorMode", strconv.FormatBool(p.CompetitorMode))
	fmt.Fprintln(color.Output, tbl)
}
