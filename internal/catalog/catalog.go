// Package catalog holds the fixed set of coffee varieties a user can plant.
package catalog

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/validation"
)

//go:embed varieties.json varieties.schema.json
var files embed.FS

const (
	defaultFile = "varieties.json"
	schemaFile  = "varieties.schema.json"
)

// Supported document formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type document struct {
	Version   string           `json:"version"`
	Varieties []domain.Variety `json:"varieties"`
}

// Catalog is an immutable, validated set of varieties
type Catalog struct {
	byName map[string]domain.Variety
	order  []string
}

// Default returns the catalog embedded in the binary
func Default() (*Catalog, error) {
	data, err := files.ReadFile(defaultFile)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalog, defaultFile, err)
	}
	return Parse(data, FormatJSON)
}

// Load reads a catalog file. The format follows the extension: .yaml/.yml or JSON otherwise.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalog, path, err)
	}

	format := FormatJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	}
	return Parse(data, format)
}

// Parse validates a catalog document against the embedded schema and builds a Catalog.
// YAML input is normalised to JSON first so both formats go through the same schema.
func Parse(data []byte, format string) (*Catalog, error) {
	if format == FormatYAML {
		var generic interface{}
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf(ErrMsgDecodeCatalog, err)
		}
		converted, err := json.Marshal(generic)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgDecodeCatalog, err)
		}
		data = converted
	}

	if err := validation.NewSchemaValidator(files).ValidateBytes(data, schemaFile); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	var doc document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeCatalog, err)
	}
	return New(doc.Varieties)
}

// New builds a catalog from explicit varieties. Names are case-insensitive.
func New(varieties []domain.Variety) (*Catalog, error) {
	if len(varieties) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyCatalog)
	}

	c := &Catalog{byName: make(map[string]domain.Variety, len(varieties))}
	for _, v := range varieties {
		key := normalize(v.Name)
		if key == "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgVarietyNameEmpty)
		}
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("%w: "+ErrMsgDuplicateVariety, domain.ErrInvalidInput, key)
		}
		if len(v.Stages) == 0 {
			return nil, fmt.Errorf("%w: "+ErrMsgNoStages, domain.ErrInvalidInput, key)
		}
		for _, s := range v.Stages {
			if s.Days <= 0 {
				return nil, fmt.Errorf("%w: "+ErrMsgBadStageDays, domain.ErrInvalidInput, key, s.Name)
			}
		}
		if !v.HarvestMultiplier.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: "+ErrMsgBadMultiplier, domain.ErrInvalidInput, key)
		}

		v.Name = key
		v.Stages = append([]domain.Stage(nil), v.Stages...)
		c.byName[key] = v
		c.order = append(c.order, key)
	}
	sort.Strings(c.order)
	return c, nil
}

// Get looks up a variety by name
func (c *Catalog) Get(name string) (domain.Variety, error) {
	v, ok := c.byName[normalize(name)]
	if !ok {
		return domain.Variety{}, domain.UnknownVarietyError{Variety: name}
	}
	return v, nil
}

// List returns all varieties sorted by name
func (c *Catalog) List() []domain.Variety {
	out := make([]domain.Variety, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
