package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"outliner/internal/editor"
	"outliner/internal/render"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

var (
	showView     string
	showIDs      bool
	editFile     string
	sectionTitle string
	sectionBrief string
)

func init() {
	showCmd.Flags().StringVarP(&showView, "view", "v", "blog", "View to display: blog, tree or markdown")
	showCmd.Flags().BoolVar(&showIDs, "ids", false, "List section ids instead of rendering a view")
	editCmd.Flags().StringVarP(&editFile, "file", "f", "", "Read the edited text from this file instead of opening $EDITOR")
	sectionCmd.Flags().StringVar(&sectionTitle, "title", "", "New section title (defaults to the current one)")
	sectionCmd.Flags().StringVar(&sectionBrief, "brief", "", "New section brief")
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current outline in the blog, tree or markdown view",
	Run: func(cmd *cobra.Command, args []string) {
		view, err := editor.ParseViewMode(showView)
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

		if showIDs {
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold("ID"), bold("Level"), bold("Title"))
			for _, s := range ctrl.Current().Sections {
				tbl.AddRow(s.ID, strconv.Itoa(s.Level), s.Title)
			}
			fmt.Fprintln(color.Output, tbl)
			return
		}

		switch view {
		case editor.ViewBlog:
			prefs, err := a.prefs.Load()
			if err != nil {
				log.Fatalf("Failed to load preferences: %v", err)
			}
			out, err := render.Blog(ctrl.Current(), prefs.DarkMode, 0)
			if err != nil {
				log.Fatalf("Failed to render blog view: %v", err)
			}
			fmt.Print(out)
		case editor.ViewTree:
			fmt.Print(render.Tree(ctrl.Current()))
		default:
			fmt.Print(ctrl.Display())
		}
	},
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the outline as raw text and commit the result",
	Run: func(cmd *cobra.Command, args []string) {
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

		ctrl.BeginEdit()
		text, err := editedText(ctrl.Buffer())
		if err != nil {
			_ = ctrl.Cancel()
			log.Fatalf("Edit aborted: %v", err)
		}
		if text == ctrl.Buffer() {
			_ = ctrl.Cancel()
			fmt.Println("✅ No changes.")
			return
		}
		if err := ctrl.SetBuffer(text); err != nil {
			log.Fatal(err)
		}
		saved, err := ctrl.Save()
		if err != nil {
			log.Fatalf("Failed to save edit: %v", err)
		}
		if err := a.persist(ctx, sess, ctrl); err != nil {
			log.Fatalf("Failed to save history: %v", err)
		}
		fmt.Printf("💾 Saved: %d sections (history %d/%d)\n", len(saved.Sections), ctrl.History().Cursor()+1, ctrl.History().Len())
	},
}

// editedText returns the replacement buffer, from --file or from $EDITOR
// run over a temporary copy of buffer.
func editedText(buffer string) (string, error) {
	if editFile != "" {
		b, err := os.ReadFile(editFile)
		return string(b), err
	}

	dir, err := os.MkdirTemp("", "outliner-edit-")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "outline.md")
	if err := os.WriteFile(path, []byte(buffer), 0600); err != nil {
		return "", err
	}

	ed := os.Getenv("EDITOR")
	if ed == "" {
		ed = "vi"
	}
	c := exec.Command(ed, path)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return "", err
	}

	b, err := os.ReadFile(path)
	return string(b), err
}

var titleCmd = &cobra.Command{
	Use:   "title <new title>",
	Short: "Change the outline title",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
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
		if err := ctrl.UpdateTitle(args[0]); err != nil {
			log.Fatal(err)
		}
		if err := a.persist(ctx, sess, ctrl); err != nil {
			log.Fatalf("Failed to save history: %v", err)
		}
		fmt.Printf("✅ Title set to %q\n", ctrl.Current().Title)
	},
}

var sectionCmd = &cobra.Command{
	Use:   "section <id>",
	Short: "Change a section title or brief",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
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
		current, ok := ctrl.Current().SectionByID(args[0])
		if !ok {
			log.Fatalf("No section %q in the current outline", args[0])
		}
		title, brief := current.Title, current.Brief
		if cmd.Flags().Changed("title") {
			title = sectionTitle
		}
		if cmd.Flags().Changed("brief") {
			brief = sectionBrief
		}
		if _, err := ctrl.UpdateSection(args[0], title, brief); err != nil {
			log.Fatal(err)
		}
		if err := a.persist(ctx, sess, ctrl); err != nil {
			log.Fatalf("Failed to save history: %v", err)
		}
		fmt.Printf("✅ Section %s updated\n", args[0])
	},
}
