package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"outliner/internal/editor"
	"outliner/internal/generation"
	"outliner/internal/history"
	"outliner/internal/outline"
	"outliner/internal/render"
	"outliner/internal/storage"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var (
	exportDir  string
	exportHTML bool
	exportJSON bool
	copyView   string
)

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", ".", "Directory to write the export into")
	exportCmd.Flags().BoolVar(&exportHTML, "html", false, "Also write the blog view as HTML")
	exportCmd.Flags().BoolVar(&exportJSON, "json", false, "Also write the structured outline as JSON")
	copyCmd.Flags().StringVarP(&copyView, "view", "v", "markdown", "Active view: markdown copies canonical markdown, blog or tree copy the edit buffer")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the outline as a markdown file named after its title",
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

		name, content := ctrl.Export()
		path := filepath.Join(exportDir, name)
		if err := os.MkdirAll(exportDir, 0755); err != nil {
			log.Fatalf("Failed to create export directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			log.Fatalf("Failed to write export: %v", err)
		}
		fmt.Printf("📄 Markdown written to %s\n", path)

		base := strings.TrimSuffix(path, ".md")
		if exportHTML {
			page, err := render.HTML(ctrl.Current())
			if err != nil {
				log.Fatalf("Failed to render HTML: %v", err)
			}
			if err := os.WriteFile(base+".html", []byte(page), 0644); err != nil {
				log.Fatalf("Failed to write HTML: %v", err)
			}
			fmt.Printf("🌐 HTML written to %s.html\n", base)
		}
		if exportJSON {
			if err := outline.SaveFile(base+".json", ctrl.Current()); err != nil {
				log.Fatalf("Failed to write JSON: %v", err)
			}
			fmt.Printf("🧩 JSON written to %s.json\n", base)
		}
	},
}

var importCmd = &cobra.Command{
	Use:   "import <outline.json>",
	Short: "Open an outline saved with `export --json` as a new session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		a, err := openApp()
		if err != nil {
			log.Fatalf("Setup failed: %v", err)
		}
		defer a.Close()

		sess, err := importSession(ctx, a.store, args[0])
		if err != nil {
			log.Fatalf("Failed to import outline: %v", err)
		}
		if err := a.prefs.SetCurrentSession(sess.ID); err != nil {
			log.Fatalf("Failed to record current session: %v", err)
		}
		fmt.Printf("📥 Imported %q (session %s)\n", sess.Title, sess.ID)
	},
}

// importSession starts a session whose history holds only the outline read
// from path. There is no generated text behind it, so the edit buffer is
// the annotated form.
func importSession(ctx context.Context, store storage.SessionStore, path string) (*storage.Session, error) {
	o, err := outline.LoadFile(path)
	if err != nil {
		return nil, err
	}
	sess := &storage.Session{Request: generation.Request{Topic: o.Title}}
	if err := store.CreateSession(ctx, sess, history.New(o)); err != nil {
		return nil, err
	}
	return sess, nil
}

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy the outline to the clipboard",
	Run: func(cmd *cobra.Command, args []string) {
		view, err := editor.ParseViewMode(copyView)
		if err != nil {
			log.Fatal(err)
		}

		a, err := openApp()
		if err != nil {
			log.Fatalf("Setup failed: %v", err)
		}
		defer a.Close()

		_, ctrl, err := a.openEditor(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		ctrl.SetView(view)
		if err := clipboard.WriteAll(ctrl.ClipboardText()); err != nil {
			log.Fatalf("Failed to copy to clipboard: %v", err)
		}
		fmt.Println("📋 Copied to clipboard")
	},
}
