package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"outliner/internal/generation"

	"github.com/spf13/cobra"
)

var (
	suggestLocal    bool
	suggestTrending bool
)

func init() {
	suggestCmd.Flags().BoolVar(&suggestLocal, "local", false, "Match against the built-in phrase list instead of the generation service")
	suggestCmd.Flags().BoolVar(&suggestTrending, "trending", false, "List trending topics")
}

var suggestCmd = &cobra.Command{
	Use:   "suggest [query]",
	Short: "Suggest topics for a partial query",
	Run: func(cmd *cobra.Command, args []string) {
		if suggestTrending {
			for _, t := range generation.TrendingTopics() {
				fmt.Println(t)
			}
			return
		}
		query := strings.Join(args, " ")
		if suggestLocal {
			for _, s := range generation.SuggestKeywords(query) {
				fmt.Println(s)
			}
			return
		}

		a, err := openApp()
		if err != nil {
			log.Fatalf("Setup failed: %v", err)
		}
		defer a.Close()

		client := generation.NewAPIClient(a.cfg.Generation.APIURL, a.cfg.Timeout())
		suggestions, err := client.Suggest(context.Background(), query)
		if err != nil {
			log.Fatalf("Failed to fetch keyword suggestions: %v", err)
		}
		for _, s := range suggestions {
			fmt.Println(s)
		}
	},
}
