package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNestedGroup is returned when a navigation group is found inside another group.
// Only one level of grouping is supported.
var ErrNestedGroup = errors.New("navigation groups cannot be nested")

// NavItem is a sidebar entry: either a Leaf or a Group.
type NavItem interface {
	navItem()
}

// Leaf is a navigable entry with a route path.
type Leaf struct {
	Path  string
	Label string
	Icon  string
}

// Group collects leaves under a heading. It has no route of its own.
type Group struct {
	Label    string
	Icon     string
	Children []Leaf
}

func (Leaf) navItem()  {}
func (Group) navItem() {}

// navItemJSON is the wire form shared by both shapes (same as the dashboard's menu objects).
type navItemJSON struct {
	Path     string        `json:"path,omitempty"`
	Label    string        `json:"label,omitempty"`
	Icon     string        `json:"icon,omitempty"`
	Children []navItemJSON `json:"children,omitempty"`
}

func (l Leaf) MarshalJSON() ([]byte, error) {
	return json.Marshal(navItemJSON{Path: l.Path, Label: l.Label, Icon: l.Icon})
}

func (g Group) MarshalJSON() ([]byte, error) {
	children := make([]navItemJSON, 0, len(g.Children))
	for _, c := range g.Children {
		children = append(children, navItemJSON{Path: c.Path, Label: c.Label, Icon: c.Icon})
	}
	// children is always emitted for a group, even when empty.
	return json.Marshal(struct {
		Label    string        `json:"label,omitempty"`
		Icon     string        `json:"icon,omitempty"`
		Children []navItemJSON `json:"children"`
	}{Label: g.Label, Icon: g.Icon, Children: children})
}

// NavItems is a navigation list that can be decoded from JSON.
type NavItems []NavItem

// UnmarshalJSON decodes items; an object with a non-null "children" value becomes a Group.
func (items *NavItems) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(NavItems, 0, len(raw))
	for i, r := range raw {
		item, err := decodeNavItem(r)
		if err != nil {
			return fmt.Errorf("navigation item %d: %w", i, err)
		}
		out = append(out, item)
	}
	*items = out
	return nil
}

// navItemWire is the decode form. Children stays raw so a present-but-null value can be
// told apart from an array.
type navItemWire struct {
	Path     string          `json:"path"`
	Label    string          `json:"label"`
	Icon     string          `json:"icon"`
	Children json.RawMessage `json:"children"`
}

// hasChildren reports whether a decoded item is a group: "children" is present and not null.
func (w navItemWire) hasChildren() bool {
	raw := bytes.TrimSpace(w.Children)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

func decodeNavItem(b json.RawMessage) (NavItem, error) {
	var w navItemWire
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, err
	}
	if !w.hasChildren() {
		return Leaf{Path: w.Path, Label: w.Label, Icon: w.Icon}, nil
	}
	var children []navItemWire
	if err := json.Unmarshal(w.Children, &children); err != nil {
		return nil, err
	}
	g := Group{Label: w.Label, Icon: w.Icon, Children: make([]Leaf, 0, len(children))}
	for _, c := range children {
		if c.hasChildren() {
			return nil, ErrNestedGroup
		}
		g.Children = append(g.Children, Leaf{Path: c.Path, Label: c.Label, Icon: c.Icon})
	}
	return g, nil
}
