// Package catalog keeps a named set of message schemas.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/danmuck/fixwire/internal/protocol/schema"
	"github.com/rs/zerolog/log"
)

var (
	ErrDuplicateSchema = errors.New("catalog: duplicate schema name")
	ErrUnknownSchema   = errors.New("catalog: unknown schema")
)

// Catalog maps schema names to schemas. It is safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	schemas map[string]*schema.Schema
}

// New returns a catalog holding schemas.
func New(schemas ...*schema.Schema) (*Catalog, error) {
	c := &Catalog{schemas: make(map[string]*schema.Schema, len(schemas))}
	for _, s := range schemas {
		if err := c.Register(s); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Register adds s under its name.
func (c *Catalog) Register(s *schema.Schema) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.schemas[s.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSchema, s.Name())
	}
	c.schemas[s.Name()] = s
	log.Debug().Str("schema", s.Name()).Int("length", s.Len()).Msg("catalog.Register")
	return nil
}

func (c *Catalog) Lookup(name string) (*schema.Schema, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.schemas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}
	return s, nil
}

// Names returns registered schema names, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.schemas))
	for name := range c.schemas {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Merge registers every schema of other into c.
func (c *Catalog) Merge(other *Catalog) error {
	for _, name := range other.Names() {
		s, err := other.Lookup(name)
		if err != nil {
			return err
		}
		if err := c.Register(s); err != nil {
			return err
		}
	}
	return nil
}

// Override registers every schema of other into c, replacing schemas with
// the same name. It returns the replaced names, sorted.
func (c *Catalog) Override(other *Catalog) []string {
	var replaced []string
	for _, name := range other.Names() {
		s, err := other.Lookup(name)
		if err != nil {
			continue
		}
		c.mu.Lock()
		if _, ok := c.schemas[name]; ok {
			replaced = append(replaced, name)
		}
		c.schemas[name] = s
		c.mu.Unlock()
		log.Debug().Str("schema", name).Int("length", s.Len()).Msg("catalog.Override")
	}
	return replaced
}
