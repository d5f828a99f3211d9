// ABOUTME: Terminal markdown rendering via glamour with per-width memoization
// ABOUTME: Tab content is fixed per run, so the cache keys on width alone

package interactive

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// mdCache memoizes glamour renderings of one fixed document per width.
// Resizes re-render; repeated views at the same width hit the cache.
type mdCache struct {
	source   string
	rendered map[int]string
}

func newMDCache(source string) *mdCache {
	return &mdCache{source: source, rendered: make(map[int]string)}
}

// at returns the document rendered for the given width, falling back to the
// raw source when glamour cannot build a renderer.
func (c *mdCache) at(width int) string {
	if out, ok := c.rendered[width]; ok {
		return out
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return c.source
	}
	out, err := r.Render(c.source)
	if err != nil {
		return c.source
	}

	out = strings.TrimRight(out, "\n ")
	c.rendered[width] = out
	return out
}
