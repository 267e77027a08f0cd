package profile

import (
	"fmt"
)

// Config is the complete, validated interaction configuration: the mode
// table and the tables of every handler type. A Config is read-only and may
// be shared by any number of managers.
type Config struct {
	modes  *ModeTable
	tables map[*HandlerType]*Tables
}

// Modes returns the mode table.
func (c *Config) Modes() *ModeTable {
	return c.modes
}

// Tables returns the tables of ht. Handler types without tables get an
// empty set.
func (c *Config) Tables(ht *HandlerType) *Tables {
	if t, ok := c.tables[ht]; ok {
		return t
	}
	return emptyTables
}

// HandlerType looks up a bound handler type by name.
func (c *Config) HandlerType(name string) (*HandlerType, error) {
	for _, ht := range c.modes.HandlerTypes() {
		if ht.Name() == name {
			return ht, nil
		}
	}
	return nil, fmt.Errorf("%w: handler type %q", ErrNotFound, name)
}

// Resolve is shorthand for c.Modes().Resolve.
func (c *Config) Resolve(view ViewType, name string) (*HandlerType, error) {
	return c.modes.Resolve(view, name)
}

// Validate checks the whole configuration and returns a *ConfigError
// listing every problem, or nil.
func (c *Config) Validate() error {
	var is issues

	seen := make(map[bindingKey]bool, len(c.modes.order))
	for _, b := range c.modes.order {
		k := bindingKey{b.View, b.Name}
		if seen[k] {
			is.addf("", "duplicate binding for profile %q on %s view", b.Name, b.View)
		}
		seen[k] = true
		if b.Handler == nil {
			is.addf("", "profile %q on %s view has no handler type", b.Name, b.View)
		}
		if b.Name == "" {
			is.addf("", "unnamed profile on %s view", b.View)
		}
	}

	bound := c.modes.HandlerTypes()
	names := make(map[string]*HandlerType, len(bound))
	for _, ht := range bound {
		if other, ok := names[ht.Name()]; ok && other != ht {
			is.addf(ht.Name(), "handler type name used twice")
		}
		names[ht.Name()] = ht
		ht.validate(&is)
		c.Tables(ht).validate(ht, &is)
	}

	for ht := range c.tables {
		if names[ht.Name()] != ht {
			is.addf(ht.Name(), "tables registered for a handler type absent from the mode table")
		}
	}

	return is.err()
}

// Builder assembles a Config.
type Builder struct {
	bindings []Binding
	tables   map[*HandlerType]*Tables
}

// NewBuilder starts an empty configuration.
func NewBuilder() *Builder {
	return &Builder{tables: make(map[*HandlerType]*Tables)}
}

// BuilderFrom starts a configuration holding everything in c, so that
// tables can be overridden before building a new Config.
func BuilderFrom(c *Config) *Builder {
	b := NewBuilder()
	b.bindings = c.modes.Bindings()
	for ht, t := range c.tables {
		b.tables[ht] = t
	}
	return b
}

// Bind adds a (view, name) -> handler binding.
func (b *Builder) Bind(view ViewType, name string, ht *HandlerType) *Builder {
	b.bindings = append(b.bindings, Binding{View: view, Name: name, Handler: ht})
	return b
}

// Tables sets the tables of a handler type.
func (b *Builder) Tables(ht *HandlerType, t *Tables) *Builder {
	b.tables[ht] = t
	return b
}

// Edit rebuilds the tables of a handler type: fn receives a builder holding
// the current entries.
func (b *Builder) Edit(ht *HandlerType, fn func(*TablesBuilder)) *Builder {
	tb := NewTables().Extend(b.tables[ht])
	fn(tb)
	b.tables[ht] = tb.Build()
	return b
}

// HandlerType looks up a handler type bound so far by name.
func (b *Builder) HandlerType(name string) (*HandlerType, bool) {
	for _, bd := range b.bindings {
		if bd.Handler != nil && bd.Handler.Name() == name {
			return bd.Handler, true
		}
	}
	return nil, false
}

// Build validates and freezes the configuration.
func (b *Builder) Build() (*Config, error) {
	mt := &ModeTable{
		bindings: make(map[bindingKey]*HandlerType, len(b.bindings)),
		order:    append([]Binding(nil), b.bindings...),
	}
	for _, bd := range b.bindings {
		k := bindingKey{bd.View, bd.Name}
		if _, ok := mt.bindings[k]; !ok {
			mt.bindings[k] = bd.Handler
		}
	}

	tables := make(map[*HandlerType]*Tables, len(b.tables))
	for ht, t := range b.tables {
		if t != nil {
			tables[ht] = t
		}
	}

	c := &Config{modes: mt, tables: tables}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustBuild is like Build but panics on an invalid configuration. It is
// meant for static tables compiled into the program.
func (b *Builder) MustBuild() *Config {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}
