package catalog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fruit-order/api/internal/enum"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// fileItem is the YAML shape of one catalog entry.
type fileItem struct {
	ID        int    `yaml:"id"`
	Name      string `yaml:"name"`
	Unit      string `yaml:"unit"`
	UnitPrice string `yaml:"unit_price"`
	Glyph     string `yaml:"glyph"`
}

type fileCatalog struct {
	Items []fileItem `yaml:"items"`
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode parses a YAML catalog document and validates it with New.
func Decode(r io.Reader) (*Catalog, error) {
	var doc fileCatalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, ErrNoItems
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	items := make([]Item, 0, len(doc.Items))
	for i, fi := range doc.Items {
		unit, ok := parseUnit(fi.Unit)
		if !ok {
			return nil, fmt.Errorf("items[%d]: %w %q", i, ErrInvalidUnit, fi.Unit)
		}
		p, err := decimal.NewFromString(strings.TrimSpace(fi.UnitPrice))
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, ErrInvalidUnitPrice)
		}
		items = append(items, Item{
			ID:        fi.ID,
			Name:      strings.TrimSpace(fi.Name),
			Unit:      unit,
			UnitPrice: p,
			Glyph:     fi.Glyph,
		})
	}
	return New(items)
}

// Encode writes c as a YAML document readable by Decode.
func Encode(w io.Writer, c *Catalog) error {
	doc := fileCatalog{Items: make([]fileItem, 0, c.Len())}
	for _, it := range c.Items() {
		doc.Items = append(doc.Items, fileItem{
			ID:        it.ID,
			Name:      it.Name,
			Unit:      strings.ToLower(it.Unit),
			UnitPrice: it.UnitPrice.StringFixed(2),
			Glyph:     it.Glyph,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}

func parseUnit(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kg", "kilogram":
		return enum.UnitKilogram, true
	case "piece", "pièce", "pc":
		return enum.UnitPiece, true
	}
	return "", false
}
