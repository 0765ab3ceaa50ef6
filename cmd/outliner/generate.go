package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"outliner/internal/generation"
	"outliner/internal/history"
	applog "outliner/internal/log"
	"outliner/internal/outline"
	"outliner/internal/render"
	"outliner/internal/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	genOutputType string
	genAudience   string
	genTone       string
	genRawFile    string
)

func init() {
	generateCmd.Flags().StringVarP(&genOutputType, "output-type", "o", "", "outline, outline-brief or outline-brief-intro")
	generateCmd.Flags().StringVarP(&genAudience, "audience", "a", "", "general, tech-savvy, marketing, students or professionals")
	generateCmd.Flags().StringVarP(&genTone, "tone", "t", "", "friendly, formal, technical, persuasive or conversational")
	generateCmd.Flags().StringVar(&genRawFile, "raw-file", "", "Use this file as the generated content instead of calling the generator")
}

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a new outline for a topic and open it as the current session",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		keyword := strings.Join(args, " ")

		a, err := openApp()
		if err != nil {
			log.Fatalf("Setup failed: %v", err)
		}
		defer a.Close()

		prefs, err := a.prefs.Load()
		if err != nil {
			log.Fatalf("Failed to load preferences: %v", err)
		}
		req := generation.Request{
			Topic:      keyword,
			OutputType: genOutputType,
			Audience:   genAudience,
			Tone:       genTone,
		}.WithDefaults(generation.Defaults{
			OutputType: prefs.DefaultOutputType,
			Audience:   prefs.DefaultAudience,
			Tone:       prefs.DefaultTone,
		})
		if err := req.Validate(); err != nil {
			log.Fatalf("Please fill in all fields before generating an outline: %v", err)
		}

		res, err := fetchResult(ctx, a, req)
		if err != nil {
			log.Fatalf("Failed to generate outline: %v", err)
		}

		o, fallback := outline.FromGenerated(res.GeneratedContent, res.Title(keyword))
		if fallback {
			applog.Get().Warn("no sections found in generated content, using fallback outline", zap.String("topic", req.Topic))
			fmt.Println("⚠️  No outline structure detected. Raw content kept in a single section.")
		}

		sess := &storage.Session{
			Request:    req,
			RawContent: res.GeneratedContent,
			Fallback:   fallback,
		}
		if err := a.store.CreateSession(ctx, sess, history.New(o)); err != nil {
			log.Fatalf("Failed to save session: %v", err)
		}
		if err := a.prefs.SetCurrentSession(sess.ID); err != nil {
			log.Fatalf("Failed to record current session: %v", err)
		}

		fmt.Printf("✅ Outline generated: %d sections (session %s)\n\n", len(o.Sections), sess.ID)
		fmt.Print(render.Tree(o))
	},
}

func fetchResult(ctx context.Context, a *app, req generation.Request) (*generation.Result, error) {
	if genRawFile != "" {
		raw, err := os.ReadFile(genRawFile)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(string(raw)) == "" {
			return nil, generation.ErrInvalidResponse
		}
		return &generation.Result{GeneratedContent: string(raw), Topic: req.Topic}, nil
	}

	gen, err := generation.NewGenerator(ctx, generation.Options{
		Provider: a.cfg.Generation.Provider,
		APIURL:   a.cfg.Generation.APIURL,
		APIKey:   a.cfg.Generation.APIKey,
		Model:    a.cfg.Generation.Model,
		BaseURL:  a.cfg.Generation.BaseURL,
		Timeout:  a.cfg.Timeout(),
	})
	if err != nil {
		return nil, err
	}
	fmt.Printf("🚀 Generating outline for %q via %s...\n", req.Topic, a.cfg.Generation.Provider)
	return gen.Generate(ctx, req)
}
