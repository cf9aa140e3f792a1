package preview

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/simplemarkdown-go/internal/types"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(types.DefaultRenderConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func countPixels(img *image.RGBA, c color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#ffffff", want: color.RGBA{255, 255, 255, 255}},
		{in: "#1a4fd8", want: color.RGBA{0x1a, 0x4f, 0xd8, 255}},
		{in: "#fff", want: color.RGBA{255, 255, 255, 255}},
		{in: "ffffff", wantErr: true},
		{in: "#ggg", wantErr: true},
		{in: "#12345", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_InvalidColor(t *testing.T) {
	t.Parallel()

	cfg := types.DefaultRenderConfig()
	cfg.Preview.Background = "white"
	_, err := New(cfg)
	assert.ErrorIs(t, err, ErrColor)
	assert.NotErrorIs(t, err, ErrFont)
	assert.Contains(t, err.Error(), "background")
}

func TestRender_MissingGlyphFallback(t *testing.T) {
	t.Parallel()

	r := newRenderer(t)
	var logged []string
	r.Logf = func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}

	_, err := r.Render("pin 📌 and 📌 again", nil)
	require.NoError(t, err)
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "📌")

	logged = nil
	_, err = r.Render("plain text", nil)
	require.NoError(t, err)
	assert.Empty(t, logged)
}

func TestWithFallback(t *testing.T) {
	t.Parallel()

	r := newRenderer(t)
	face, err := r.face(styleRegular, 16)
	require.NoError(t, err)

	missing := map[rune]bool{}
	assert.Equal(t, "ab c", withFallback(face, "ab c", missing))
	assert.Empty(t, missing)
	assert.Equal(t, "a?b", withFallback(face, "a📌b", missing))
	assert.Equal(t, map[rune]bool{'📌': true}, missing)
}

func TestRender_DrawsText(t *testing.T) {
	t.Parallel()

	r := newRenderer(t)
	cfg := types.DefaultRenderConfig()

	img, err := r.Render("Title\n\nBody text", []types.Span{
		{Kind: types.TagHeader, Weight: 1, Start: 0, End: 5},
		{Kind: types.TagSectionSpacer, Start: 6, End: 7, Gap: 16},
	})
	require.NoError(t, err)
	assert.Equal(t, cfg.Preview.Width, img.Bounds().Dx())
	assert.Greater(t, img.Bounds().Dy(), 2*cfg.Preview.Margin)

	bg, _ := ParseColor(cfg.Preview.Background)
	assert.Less(t, countPixels(img, bg), img.Bounds().Dx()*img.Bounds().Dy(), "nothing drawn")
}

func TestRender_LinkColor(t *testing.T) {
	t.Parallel()

	r := newRenderer(t)
	img, err := r.Render("a link here", []types.Span{
		{Kind: types.TagLink, Start: 2, End: 6, Extra: "https://example.com"},
	})
	require.NoError(t, err)

	link, _ := ParseColor(types.DefaultRenderConfig().Preview.LinkColor)
	assert.Positive(t, countPixels(img, link), "underline uses the link color")
}

func TestRender_Wraps(t *testing.T) {
	t.Parallel()

	r := newRenderer(t)
	short, err := r.Render("word", nil)
	require.NoError(t, err)

	long := ""
	for i := 0; i < 80; i++ {
		long += "word "
	}
	wrapped, err := r.Render(long, nil)
	require.NoError(t, err)
	assert.Greater(t, wrapped.Bounds().Dy(), short.Bounds().Dy())
}

func TestRender_Empty(t *testing.T) {
	t.Parallel()

	r := newRenderer(t)
	img, err := r.Render("", nil)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultRenderConfig().Preview.Width, img.Bounds().Dx())
}

func TestSegments(t *testing.T) {
	t.Parallel()

	text := "ab cd"
	resolved := make([]attrs, len(text))
	for i := range resolved {
		resolved[i].scale = 1
	}
	resolved[4].bold = true

	got := segments(text, resolved, 0, len(text))
	assert.Equal(t, []segment{
		{0, 2, false},
		{2, 3, true},
		{3, 4, false},
		{4, 5, false},
	}, got)
}
