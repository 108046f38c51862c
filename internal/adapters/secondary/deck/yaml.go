// Package deck loads slide decks from YAML files. A deck file is an
// optional title plus a list of slide entries, each carrying exactly one
// kind key:
//
//	title: demo
//	slides:
//	  - markdown: intro.md
//	  - image: gopher.png
//	  - text: |
//	      hello
package deck

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/termdeck/termdeck/internal/domain/entities"
)

// YAMLLoader implements the DeckLoader interface using YAML files.
type YAMLLoader struct{}

// NewYAMLLoader creates a new YAML deck loader.
func NewYAMLLoader() *YAMLLoader {
	return &YAMLLoader{}
}

// deckFile mirrors the on-disk deck format.
type deckFile struct {
	Title  string       `yaml:"title"`
	Slides []slideEntry `yaml:"slides"`
}

// slideEntry holds one kind key with its payload. Exactly one field may
// be set.
type slideEntry struct {
	Markdown  string `yaml:"markdown"`
	Image     string `yaml:"image"`
	Animation string `yaml:"animation"`
	Open      string `yaml:"open"`
	Text      string `yaml:"text"`
	Banner    string `yaml:"banner"`
	Source    string `yaml:"source"`
}

// Load reads and parses a deck file.
func (l *YAMLLoader) Load(ctx context.Context, path string) (*entities.Deck, error) {
	data, err := os.ReadFile(path) // #nosec G304 - the deck path is supplied by the user on the command line
	if err != nil {
		return nil, fmt.Errorf("reading deck file: %w", err)
	}

	var file deckFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing deck YAML: %w", err)
	}

	slides := make([]entities.Slide, 0, len(file.Slides))
	for i, entry := range file.Slides {
		slide, err := entry.toSlide()
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		slide.Index = i
		slides = append(slides, slide)
	}

	return &entities.Deck{
		Title:  file.Title,
		Path:   path,
		Slides: slides,
	}, nil
}

// toSlide converts an entry to a slide, enforcing the one-key rule.
func (e *slideEntry) toSlide() (entities.Slide, error) {
	fields := []struct {
		kind    entities.SlideKind
		payload string
	}{
		{entities.KindMarkdown, e.Markdown},
		{entities.KindImage, e.Image},
		{entities.KindAnimation, e.Animation},
		{entities.KindExternalOpen, e.Open},
		{entities.KindText, e.Text},
		{entities.KindBanner, e.Banner},
		{entities.KindSource, e.Source},
	}

	var slide entities.Slide
	var set int
	for _, f := range fields {
		if f.payload == "" {
			continue
		}
		set++
		slide = entities.Slide{Kind: f.kind, Payload: f.payload}
	}

	switch set {
	case 0:
		return entities.Slide{}, fmt.Errorf("entry must have one of the keys %v", kindKeys())
	case 1:
		return slide, nil
	default:
		return entities.Slide{}, fmt.Errorf("entry must have exactly one kind key, found %d", set)
	}
}

func kindKeys() []string {
	kinds := entities.Kinds()
	keys := make([]string, len(kinds))
	for i, k := range kinds {
		keys[i] = string(k)
	}
	return keys
}
