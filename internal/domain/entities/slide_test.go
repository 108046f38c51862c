package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlide_Validate(t *testing.T) {
	tests := []struct {
		name    string
		slide   Slide
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid markdown slide",
			slide:   Slide{Kind: KindMarkdown, Payload: "intro.md", Index: 0},
			wantErr: false,
		},
		{
			name:    "valid text slide",
			slide:   Slide{Kind: KindText, Payload: "hello", Index: 3},
			wantErr: false,
		},
		{
			name:    "unknown kind",
			slide:   Slide{Kind: SlideKind("video"), Payload: "clip.mp4"},
			wantErr: true,
			errMsg:  "unknown slide kind",
		},
		{
			name:    "empty payload",
			slide:   Slide{Kind: KindImage, Payload: ""},
			wantErr: true,
			errMsg:  "slide payload cannot be empty",
		},
		{
			name:    "whitespace only payload",
			slide:   Slide{Kind: KindText, Payload: "   \n\t  "},
			wantErr: true,
			errMsg:  "slide payload cannot be empty",
		},
		{
			name:    "negative index",
			slide:   Slide{Kind: KindText, Payload: "hello", Index: -1},
			wantErr: true,
			errMsg:  "slide index must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.slide.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlideKind_Valid(t *testing.T) {
	for _, k := range Kinds() {
		assert.True(t, k.Valid(), "kind %q should be valid", k)
	}

	assert.False(t, SlideKind("").Valid())
	assert.False(t, SlideKind("video").Valid())
}

func TestSlideKind_PayloadIsPath(t *testing.T) {
	pathKinds := []SlideKind{KindMarkdown, KindImage, KindAnimation, KindExternalOpen, KindSource}
	for _, k := range pathKinds {
		assert.True(t, k.PayloadIsPath(), "kind %q carries a path", k)
	}

	assert.False(t, KindText.PayloadIsPath())
	assert.False(t, KindBanner.PayloadIsPath())
}

func TestSlideKind_Activatable(t *testing.T) {
	assert.True(t, KindExternalOpen.Activatable())
	assert.True(t, KindImage.Activatable())
	assert.True(t, KindAnimation.Activatable())

	assert.False(t, KindMarkdown.Activatable())
	assert.False(t, KindText.Activatable())
	assert.False(t, KindBanner.Activatable())
	assert.False(t, KindSource.Activatable())
}

func TestSlide_Label(t *testing.T) {
	t.Run("path kinds use the base name", func(t *testing.T) {
		s := Slide{Kind: KindSource, Payload: "cmd/app/main.go"}
		assert.Equal(t, "main.go", s.Label())
	})

	t.Run("literal kinds use the first line", func(t *testing.T) {
		s := Slide{Kind: KindText, Payload: "hello world\nsecond line"}
		assert.Equal(t, "hello world", s.Label())
	})

	t.Run("single line literal", func(t *testing.T) {
		s := Slide{Kind: KindBanner, Payload: "GO"}
		assert.Equal(t, "GO", s.Label())
	})
}
