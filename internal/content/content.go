// Package content holds the static copy the landing page is built from.
// The catalog is parsed once at startup and never mutated afterwards.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/beaconhouse/beacon/internal/domain"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed benefits.yaml
var embeddedBenefits []byte

var validate = validator.New()

// Catalog is the ordered, immutable list of benefits.
type Catalog struct {
	benefits []domain.Benefit
}

type catalogFile struct {
	Benefits []domain.Benefit `yaml:"benefits" validate:"required,min=1,dive"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(embeddedBenefits)
	})
	return defaultCatalog, defaultErr
}

// MustDefault is Default for callers that cannot continue without content.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded content catalog: %v", err))
	}
	return c
}

// Load returns the catalog stored at path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: failed to parse YAML: %v", domain.ErrInvalidContent, err)
	}
	// Blank fields must fail the required check.
	for i := range file.Benefits {
		b := &file.Benefits[i]
		b.Title = strings.TrimSpace(b.Title)
		b.Description = strings.TrimSpace(b.Description)
		b.Icon = strings.TrimSpace(b.Icon)
	}
	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidContent, err)
	}
	return &Catalog{benefits: file.Benefits}, nil
}

// Benefits returns a copy of the benefit list in declared order.
func (c *Catalog) Benefits() []domain.Benefit {
	out := make([]domain.Benefit, len(c.benefits))
	copy(out, c.benefits)
	return out
}

// Len reports the number of benefits.
func (c *Catalog) Len() int {
	return len(c.benefits)
}
