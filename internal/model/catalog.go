package model

// DefaultFontNames lists the fonts bundled with the app, in picker order
var DefaultFontNames = []string{
	"Go Bold",
	"Go Smallcaps",
	"Go Mono Bold",
	"Go Medium",
	"Go Regular",
	"Go Bold Italic",
}

// FontCatalog is the ordered, fixed list of font names offered by the picker
type FontCatalog struct {
	names []string
}

// NewFontCatalog creates a catalog from the given names, dropping empty and
// duplicate entries while keeping order.
func NewFontCatalog(names ...string) FontCatalog {
	seen := make(map[string]bool, len(names))
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		kept = append(kept, name)
	}
	return FontCatalog{names: kept}
}

// Len returns the number of fonts in the catalog
func (c FontCatalog) Len() int {
	return len(c.names)
}

// Name returns the font at index i, or "" when i is out of range
func (c FontCatalog) Name(i int) string {
	if i < 0 || i >= len(c.names) {
		return ""
	}
	return c.names[i]
}

// Index returns the position of name in the catalog, or -1
func (c FontCatalog) Index(name string) int {
	for i, n := range c.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Clamp maps any index into the catalog's bounds. An empty catalog clamps to 0.
func (c FontCatalog) Clamp(i int) int {
	if i < 0 || len(c.names) == 0 {
		return 0
	}
	if i >= len(c.names) {
		return len(c.names) - 1
	}
	return i
}

// Names returns a copy of the catalog entries
func (c FontCatalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}
