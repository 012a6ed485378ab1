package style

import (
	"regexp"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Property is a raw CSS property value.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

var uriPattern = regexp.MustCompile(`(?i)^url\(\s*(['"]?)(.*?)(['"]?)\s*\)$`)

// URI returns the reference of a property value of the form `url(…)`, with
// optional quotes stripped.
func (p Property) URI() (string, bool) {
	m := uriPattern.FindStringSubmatch(strings.TrimSpace(string(p)))
	if len(m) < 4 || m[1] != m[3] {
		return "", false
	}
	if m[2] == "" {
		return "", false
	}
	return m[2], true
}

// --- Declaration ------------------------------------------------------------

type entry struct {
	value     Property
	important bool
}

// Declaration is an ordered set of CSS property/value pairs. Property names
// are case-insensitive and stored in lower case. The zero value is an empty
// declaration ready to use.
type Declaration struct {
	props *linkedhashmap.Map // name → entry, in order of first insertion
}

// NewDeclaration creates an empty declaration.
func NewDeclaration() *Declaration {
	return &Declaration{props: linkedhashmap.New()}
}

func (d *Declaration) m() *linkedhashmap.Map {
	if d.props == nil {
		d.props = linkedhashmap.New()
	}
	return d.props
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Set sets a property. Setting an empty value removes the property.
func (d *Declaration) Set(name string, value Property) {
	d.set(name, value, false)
}

// SetImportant sets a property flagged as `!important`.
func (d *Declaration) SetImportant(name string, value Property) {
	d.set(name, value, true)
}

func (d *Declaration) set(name string, value Property, important bool) {
	name = normalizeName(name)
	if name == "" {
		return
	}
	value = Property(strings.TrimSpace(string(value)))
	if value == NullStyle {
		d.Remove(name)
		return
	}
	d.m().Put(name, entry{value: value, important: important})
}

// Get returns the value of a property.
func (d *Declaration) Get(name string) (Property, bool) {
	if d == nil || d.props == nil {
		return NullStyle, false
	}
	e, ok := d.props.Get(normalizeName(name))
	if !ok {
		return NullStyle, false
	}
	return e.(entry).value, true
}

// GetProperty returns the value of a property or NullStyle.
func (d *Declaration) GetProperty(name string) Property {
	p, _ := d.Get(name)
	return p
}

// IsImportant returns true if a property is set and flagged `!important`.
func (d *Declaration) IsImportant(name string) bool {
	if d == nil || d.props == nil {
		return false
	}
	e, ok := d.props.Get(normalizeName(name))
	return ok && e.(entry).important
}

// Remove removes a property and returns its former value.
func (d *Declaration) Remove(name string) Property {
	if d == nil || d.props == nil {
		return NullStyle
	}
	name = normalizeName(name)
	e, ok := d.props.Get(name)
	if !ok {
		return NullStyle
	}
	d.props.Remove(name)
	return e.(entry).value
}

// Len returns the number of properties.
func (d *Declaration) Len() int {
	if d == nil || d.props == nil {
		return 0
	}
	return d.props.Size()
}

// Names returns the property names in order.
func (d *Declaration) Names() []string {
	if d == nil || d.props == nil {
		return nil
	}
	keys := d.props.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Each calls f for every property, in order.
func (d *Declaration) Each(f func(name string, value Property, important bool)) {
	if d == nil || d.props == nil {
		return
	}
	d.props.Each(func(k, v interface{}) {
		e := v.(entry)
		f(k.(string), e.value, e.important)
	})
}

// Merge copies all properties of other into d. Properties of other override
// properties of d with the same name.
func (d *Declaration) Merge(other *Declaration) {
	other.Each(func(name string, value Property, important bool) {
		d.set(name, value, important)
	})
}

// String returns the declaration as CSS text, e.g. "color: red; width: 10px".
func (d *Declaration) String() string {
	var b strings.Builder
	d.Each(func(name string, value Property, important bool) {
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(string(value))
		if important {
			b.WriteString(" !important")
		}
	})
	return b.String()
}
