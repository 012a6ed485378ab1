/*
Package css provides typed access to CSS property values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/htmlstyle/core/dimen"
	"github.com/npillmayer/htmlstyle/engine/dom/style"
)

// PropertyType is a helper type for special values of properties, e.g.:
//
//     auto
//     initial
//     inherit
//
type PropertyType int

// Auto, Inherit and Initial are constant values for comparing with Equals.
const (
	Auto       PropertyType = 1
	Inherit    PropertyType = 2
	Initial    PropertyType = 3
	FontScaled PropertyType = 4 // dimension is font-dependent
	ViewScaled PropertyType = 5 // dimension is viewport-dependent
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	keywordMask   uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPRCNT   uint32 = 0x0900
	relativeMask uint32 = 0x0f00
)

// relative magnitudes are kept in fixed point with this scale
const relScale = dimen.Dimen(65536)

// --- DimenT-----------------------------------------------------------------

// DimenT is an option type for CSS dimensions. It is either unset, a keyword
// (auto, inherit, initial), an absolute dimension or a relative dimension
// (em, %, …).
type DimenT struct {
	d     dimen.Dimen
	flags uint32
}

// SomeDimen creates an optional dimen with an initial value of x.
func SomeDimen(x dimen.Dimen) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Dimen creates an optional dimen without an initial value.
func Dimen() DimenT {
	return DimenT{d: 0, flags: dimenNone}
}

// Equals compares o to another DimenT, to a plain dimension or to a
// property type.
func (o DimenT) Equals(other interface{}) bool {
	switch i := other.(type) {
	case DimenT:
		return o.d == i.d && o.flags == i.flags
	case dimen.Dimen:
		return o.IsAbsolute() && o.d == i
	case int:
		return o.IsAbsolute() && o.d == dimen.Dimen(i)
	case PropertyType:
		switch i {
		case Auto:
			return o.flags&keywordMask == dimenAuto
		case Initial:
			return o.flags&keywordMask == dimenInitial
		case Inherit:
			return o.flags&keywordMask == dimenInherit
		case FontScaled:
			u := o.flags & relativeMask
			return u == dimenEM || u == dimenEX || u == dimenREM || u == dimenCH
		case ViewScaled:
			u := o.flags & relativeMask
			return u == dimenVW || u == dimenVH || u == dimenVMIN || u == dimenVMAX
		}
	case string:
		switch i {
		case "%":
			return o.flags&relativeMask == dimenPRCNT
		}
	}
	return false
}

// Unwrap returns the underlying dimension of o. For relative dimensions this
// is the magnitude in fixed point; use Magnitude instead.
func (o DimenT) Unwrap() dimen.Dimen {
	return o.d
}

// Magnitude returns the numeric value of o: points for absolute dimensions,
// the number in front of the unit for relative ones.
func (o DimenT) Magnitude() float64 {
	if o.IsRelative() {
		return float64(o.d) / float64(relScale)
	}
	return o.d.Points()
}

// Unit returns the unit of Magnitude: the unit of a relative dimension, "bp"
// for absolute dimensions and "" otherwise.
func (o DimenT) Unit() string {
	if o.IsRelative() {
		return relUnitMap[o.flags&relativeMask]
	}
	if o.IsAbsolute() {
		return "bp"
	}
	return ""
}

// IsNone returns true if o is unset.
func (o DimenT) IsNone() bool {
	return o.flags == dimenNone
}

// IsRelative returns true if o represents a valid relative dimension (`%`, `em`, etc.).
func (o DimenT) IsRelative() bool {
	return o.flags&relativeMask > 0
}

// IsAbsolute returns true if o represents a valid absolute dimension.
func (o DimenT) IsAbsolute() bool {
	return o.flags == dimenAbsolute
}

func (o DimenT) String() string {
	if o.IsNone() {
		return "DimenT.None"
	}
	switch o.flags & keywordMask {
	case dimenAuto:
		return "auto"
	case dimenInitial:
		return "initial"
	case dimenInherit:
		return "inherit"
	}
	if o.IsRelative() {
		return strconv.FormatFloat(o.Magnitude(), 'f', -1, 64) + o.Unit()
	}
	return fmt.Sprintf("%dsp", o.d)
}

var relUnitMap = map[uint32]string{
	dimenEM:    "em",
	dimenEX:    "ex",
	dimenCH:    "ch",
	dimenREM:   "rem",
	dimenVW:    "vw",
	dimenVH:    "vh",
	dimenVMIN:  "vmin",
	dimenVMAX:  "vmax",
	dimenPRCNT: "%",
}

var relUnitStringMap = map[string]uint32{
	"em":   dimenEM,
	"ex":   dimenEX,
	"ch":   dimenCH,
	"rem":  dimenREM,
	"vw":   dimenVW,
	"vh":   dimenVH,
	"vmin": dimenVMIN,
	"vmax": dimenVMAX,
	"%":    dimenPRCNT,
}

// DimenOption returns an optional dimension type from a property string.
// It will never return an error, even with illegal input, but instead will then
// return an unset dimension.
func DimenOption(p style.Property) DimenT {
	switch strings.ToLower(strings.TrimSpace(string(p))) {
	case string(style.NullStyle):
		return Dimen()
	case "auto":
		return DimenT{flags: dimenAuto}
	case "initial":
		return DimenT{flags: dimenInitial}
	case "inherit":
		return DimenT{flags: dimenInherit}
	}
	d, err := ParseDimen(string(p))
	if err != nil {
		return Dimen()
	}
	return d
}

var dimenPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+))(%|[a-zA-Z]{2,4})?$`)

var errDimenFormat = errors.New("format error parsing dimension")

// ParseDimen parses a string to return an optional dimension. Syntax is CSS Unit.
// Valid dimensions are
//
//     15px
//     80%
//     -33rem
//     1.5in
//
// A number without a unit is taken as pixels.
//
func ParseDimen(s string) (DimenT, error) {
	d := dimenPattern.FindStringSubmatch(strings.TrimSpace(s))
	if len(d) < 2 {
		return Dimen(), errDimenFormat
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil { // this cannot happen
		return Dimen(), errDimenFormat
	}
	unit := strings.ToLower(d[2])
	if unit == "" {
		unit = "px"
	}
	if rel, ok := relUnitStringMap[unit]; ok {
		x, err := dimen.Scale(n, relScale)
		if err != nil {
			return Dimen(), err
		}
		return DimenT{d: x, flags: rel}, nil
	}
	scale, ok := dimen.Unit(unit)
	if !ok {
		return Dimen(), errDimenFormat
	}
	x, err := dimen.Scale(n, scale)
	if err != nil {
		return Dimen(), err
	}
	return SomeDimen(x), nil
}

// MaxDimen returns the greater of two absolute dimensions. If one of them is
// unset, the other one is returned.
func MaxDimen(d1, d2 DimenT) DimenT {
	if d1.IsNone() {
		return d2
	}
	if d2.IsNone() || !d1.IsAbsolute() || !d2.IsAbsolute() {
		return d1
	}
	return SomeDimen(dimen.Max(d1.d, d2.d))
}

// MinDimen returns the lesser of two absolute dimensions. If one of them is
// unset, the other one is returned.
func MinDimen(d1, d2 DimenT) DimenT {
	if d1.IsNone() {
		return d2
	}
	if d2.IsNone() || !d1.IsAbsolute() || !d2.IsAbsolute() {
		return d1
	}
	return SomeDimen(dimen.Min(d1.d, d2.d))
}
