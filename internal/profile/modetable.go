package profile

import (
	"fmt"
	"slices"
)

// Binding associates a (ViewType, profile name) pair with a handler type.
type Binding struct {
	View    ViewType
	Name    string
	Handler *HandlerType
}

type bindingKey struct {
	view ViewType
	name string
}

// ModeTable maps view panels and profile names to handler types.
type ModeTable struct {
	bindings map[bindingKey]*HandlerType
	order    []Binding
}

// Resolve returns the handler type bound to (view, name).
func (mt *ModeTable) Resolve(view ViewType, name string) (*HandlerType, error) {
	ht, ok := mt.bindings[bindingKey{view, name}]
	if !ok || ht == nil {
		return nil, fmt.Errorf("%w: profile %q for %s view", ErrNotFound, name, view)
	}
	return ht, nil
}

// Profiles returns the profile names available for view, in declaration
// order.
func (mt *ModeTable) Profiles(view ViewType) []string {
	var names []string
	for _, b := range mt.order {
		if b.View == view {
			names = append(names, b.Name)
		}
	}
	return names
}

// Default returns the first profile declared for view.
func (mt *ModeTable) Default(view ViewType) (string, bool) {
	for _, b := range mt.order {
		if b.View == view {
			return b.Name, true
		}
	}
	return "", false
}

// Views returns the views that have at least one profile.
func (mt *ModeTable) Views() []ViewType {
	var views []ViewType
	for _, b := range mt.order {
		if !slices.Contains(views, b.View) {
			views = append(views, b.View)
		}
	}
	return views
}

// Bindings returns every binding in declaration order.
func (mt *ModeTable) Bindings() []Binding {
	return slices.Clone(mt.order)
}

// HandlerTypes returns the distinct handler types of the table, in
// declaration order.
func (mt *ModeTable) HandlerTypes() []*HandlerType {
	var out []*HandlerType
	for _, b := range mt.order {
		if b.Handler != nil && !slices.Contains(out, b.Handler) {
			out = append(out, b.Handler)
		}
	}
	return out
}
