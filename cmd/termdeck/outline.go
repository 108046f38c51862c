package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	deckloader "github.com/termdeck/termdeck/internal/adapters/secondary/deck"
	"github.com/termdeck/termdeck/internal/domain/entities"
	"github.com/termdeck/termdeck/internal/domain/services"
)

// outlineCmd represents the outline command
var outlineCmd = &cobra.Command{
	Use:   "outline [deck]",
	Short: "List the slides of a deck without presenting it",
	Args:  cobra.ExactArgs(1),
	RunE:  runOutline,
}

func init() {
	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, args []string) error {
	service := services.NewDeckService(deckloader.NewYAMLLoader(), nil)

	deck, err := service.LoadDeck(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if deck.Title != "" {
		fmt.Fprintln(cmd.OutOrStdout(), deck.Title)
	}
	for i := range deck.Slides {
		slide := &deck.Slides[i]
		fmt.Fprintf(cmd.OutOrStdout(), "%3d. %-9s %s\n", i+1, slide.Kind, slideTitle(slide))
	}

	return nil
}

// slideTitle returns the best available title for an outline line:
// markdown slides use their first heading, everything else the slide
// label.
func slideTitle(slide *entities.Slide) string {
	if slide.Kind == entities.KindMarkdown {
		if title, err := markdownTitle(slide.Payload); err == nil && title != "" {
			return title
		}
	}
	return slide.Label()
}

// markdownTitle extracts the first heading of a markdown document.
func markdownTitle(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 - slide paths come from the user's deck file
	if err != nil {
		return "", fmt.Errorf("reading markdown slide: %w", err)
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(data))

	var title string
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok {
			title = string(heading.Text(data))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", fmt.Errorf("walking markdown AST: %w", err)
	}

	return title, nil
}
