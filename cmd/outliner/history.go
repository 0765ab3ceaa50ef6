package main

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"outliner/internal/editor"
	"outliner/internal/storage"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	marker = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// historyMove runs one history operation on the current session and
// persists the new cursor.
func historyMove(name string, move func(*editor.Controller) (bool, error)) {
	ctx := context.Background()
	a, err := openApp()
	if err != nil {
		log.Fatalf("Setup failed: %v", err)
	}
	defer a.Close()

	sess, ctrl, err := a.openEditor(ctx)
	if err != nil {
		log.Fatal(err)
	}
	moved, err := move(ctrl)
	if err != nil {
		log.Fatal(err)
	}
	if !moved {
		fmt.Printf("Nothing to %s.\n", name)
		return
	}
	if err := a.persist(ctx, sess, ctrl); err != nil {
		log.Fatalf("Failed to save history: %v", err)
	}
	h := ctrl.History()
	fmt.Printf("↩️  %s: now at %d/%d %q\n", name, h.Cursor()+1, h.Len(), ctrl.Current().Title)
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Step back to the previous outline state",
	Run: func(cmd *cobra.Command, args []string) {
		historyMove("undo", (*editor.Controller).Undo)
	},
}

var redoCmd = &cobra.Command{
	Use:   "redo",
	Short: "Step forward to the next outline state",
	Run: func(cmd *cobra.Command, args []string) {
		historyMove("redo", (*editor.Controller).Redo)
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Return to the generated outline, keeping later states redoable",
	Run: func(cmd *cobra.Command, args []string) {
		historyMove("reset", func(c *editor.Controller) (bool, error) {
			return true, c.Reset()
		})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the outline states of the current session",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			log.Fatalf("Setup failed: %v", err)
		}
		defer a.Close()

		_, ctrl, err := a.openEditor(context.Background())
		if err != nil {
			log.Fatal(err)
		}

		h := ctrl.History()
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow("", bold("#"), bold("Title"), bold("Sections"))
		for i, o := range h.Entries() {
			cur := ""
			if i == h.Cursor() {
				cur = marker("▶")
			}
			tbl.AddRow(cur, strconv.Itoa(i+1), o.Title, strconv.Itoa(len(o.Sections)))
		}
		fmt.Fprintln(color.Output, tbl)
	},
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List stored generation sessions",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			log.Fatalf("Setup failed: %v", err)
		}
		defer a.Close()

		sessions, err := a.store.ListSessions(context.Background())
		if err != nil {
			log.Fatalf("Failed to list sessions: %v", err)
		}
		current, _ := a.prefs.CurrentSession()
		fmt.Fprintln(color.Output, sessionTable(sessions, current))
	},
}

func sessionTable(sessions []storage.Session, current string) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold("ID"), bold("Title"), bold("Type"), bold("At"), bold("Created"))
	for _, s := range sessions {
		cur := ""
		if s.ID == current {
			cur = marker("▶")
		}
		tbl.AddRow(cur, s.ID, s.Title, s.Request.OutputType, strconv.Itoa(s.Cursor+1), s.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return tbl
}
