package fontload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/math/fixed"
)

func TestEmbeddedFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sizechart.chart")
	defer teardown()
	//
	r, err := Regular()
	require.NoError(t, err)
	b, err := Bold()
	require.NoError(t, err)
	assert.Contains(t, r.Fontname, "Go")
	assert.Contains(t, b.Fontname, "Bold")
	r2, _ := Regular()
	assert.Same(t, r, r2, "embedded fonts must be parsed once")
}

func TestFaceMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sizechart.chart")
	defer teardown()
	//
	r, err := Regular()
	require.NoError(t, err)
	small, err := r.Face(16)
	require.NoError(t, err)
	defer small.Close()
	large, err := r.Face(32)
	require.NoError(t, err)
	defer large.Close()
	ws := measure(small, "SIZE CHART")
	wl := measure(large, "SIZE CHART")
	assert.Greater(t, ws, 0)
	assert.Greater(t, wl, ws)
}

func TestLoadFromFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sizechart.chart")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "gobold.ttf")
	require.NoError(t, os.WriteFile(path, gobold.TTF, 0o644))
	f, err := LoadOpenTypeFont(path)
	require.NoError(t, err)
	assert.Contains(t, f.Fontname, "Bold")
	_, err = LoadOpenTypeFont(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Error(t, err)
	_, err = ParseOpenTypeFont([]byte("not a font"))
	assert.Error(t, err)
	var none *ScalableFont
	_, err = none.Face(12)
	assert.Error(t, err)
}

func measure(f interface {
	GlyphAdvance(rune) (fixed.Int26_6, bool)
}, s string) int {
	var w fixed.Int26_6
	for _, r := range s {
		a, _ := f.GlyphAdvance(r)
		w += a
	}
	return w.Ceil()
}
