/*
Package shorthand expands CSS shorthand properties into longhand properties.

The rule table is static configuration data: it maps the name of a shorthand
property (e.g. "margin" or "border") to a rule, which is a pure function from
the shorthand's value to a list of longhand name/value pairs. Properties
without a rule pass through unchanged.

	var buf strings.Builder
	shorthand.Expand(&buf, "margin", "1px 2px")
	// buf: "margin-top:1px;margin-right:2px;margin-bottom:1px;margin-left:2px;"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package shorthand

import (
	"sort"
	"strings"

	"github.com/derekparker/trie"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmlstyle.style'.
func tracer() tracing.Trace {
	return tracing.Select("htmlstyle.style")
}

// Longhand is a single CSS property resulting from expanding a shorthand.
type Longhand struct {
	Name, Value string
}

// Rule expands the value of a shorthand property. A rule returns nil if it
// cannot make sense of the value.
type Rule func(value string) []Longhand

var rules *trie.Trie

func init() {
	rules = trie.New()
	rules.Add("margin", boxRule("margin-%s"))
	rules.Add("padding", boxRule("padding-%s"))
	rules.Add("border-width", boxRule("border-%s-width"))
	rules.Add("border-style", boxRule("border-%s-style"))
	rules.Add("border-color", boxRule("border-%s-color"))
	rules.Add("border", borderRule(sides...))
	for _, side := range sides {
		rules.Add("border-"+side, borderRule(side))
	}
	rules.Add("font", Rule(fontRule))
	rules.Add("background", Rule(backgroundRule))
	rules.Add("list-style", Rule(listStyleRule))
}

// Lookup returns the rule for a shorthand property.
func Lookup(name string) (Rule, bool) {
	node, ok := rules.Find(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return nil, false
	}
	rule, ok := node.Meta().(Rule)
	return rule, ok
}

// Names returns the names of all shorthand properties starting with prefix.
// An empty prefix enumerates the complete table.
func Names(prefix string) []string {
	names := rules.PrefixSearch(strings.ToLower(prefix))
	sort.Strings(names)
	return names
}

// Longhands expands a property into longhand properties. Properties without
// a rule, and shorthands whose value the rule cannot interpret, are returned
// as a single unchanged pair.
//
// A trailing `!important` of a shorthand applies to each of its longhands.
func Longhands(name, value string) []Longhand {
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if rule, ok := Lookup(name); ok {
		v, important := SplitImportant(value)
		if lh := rule(v); len(lh) > 0 {
			if important {
				for i := range lh {
					lh[i].Value += " !important"
				}
			}
			return lh
		}
		tracer().Debugf("shorthand %s: cannot interpret %q, passing it on", name, value)
	}
	return []Longhand{{Name: name, Value: value}}
}

// SplitImportant removes a trailing `!important` flag from a property value.
// It returns the trimmed value and whether the flag was present.
func SplitImportant(value string) (string, bool) {
	v := strings.TrimSpace(value)
	const flag = "important"
	if len(v) < len(flag) || !strings.EqualFold(v[len(v)-len(flag):], flag) {
		return v, false
	}
	rest := strings.TrimSpace(v[:len(v)-len(flag)])
	if !strings.HasSuffix(rest, "!") {
		return v, false
	}
	return strings.TrimSpace(rest[:len(rest)-1]), true
}

// Expand appends the longhand properties of name:value to buf, as CSS
// declaration text. Pairs with an empty name or value are not written.
func Expand(buf *strings.Builder, name, value string) {
	for _, lh := range Longhands(name, value) {
		if lh.Name == "" || lh.Value == "" {
			continue
		}
		buf.WriteString(lh.Name)
		buf.WriteByte(':')
		buf.WriteString(lh.Value)
		buf.WriteByte(';')
	}
}
