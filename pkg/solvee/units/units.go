// Package units provides the dimensional model behind unit conversion:
// base dimensions, named units with scale factors, and affine (offset)
// units for temperature. Conversion goes through a per-dimension base unit:
//
//	value_in_base = value*Scale + Offset
//
// Offset is zero for everything except temperature scales, where the
// affine form is required for correctness (0 °C is 273.15 K, not 0 K).
package units

import (
	"strings"

	serrors "github.com/GiuseppeAngenica/Solvee/pkg/solvee/errors"
)

// Dimension is a vector of signed exponents over the base dimensions.
// Two units are convertible only when their vectors match exactly.
type Dimension struct {
	Length      int8
	Mass        int8
	Time        int8
	Temperature int8
	Volume      int8
}

// Base dimension vectors used by the default table and by YAML definitions.
var (
	Scalar      = Dimension{}
	Length      = Dimension{Length: 1}
	Mass        = Dimension{Mass: 1}
	Time        = Dimension{Time: 1}
	Temperature = Dimension{Temperature: 1}
	Volume      = Dimension{Volume: 1}
)

// IsZero reports whether the dimension is the scalar (dimensionless) vector.
func (d Dimension) IsZero() bool {
	return d == Dimension{}
}

// Mul returns the dimension of a product of quantities.
func (d Dimension) Mul(o Dimension) Dimension {
	return Dimension{
		Length:      d.Length + o.Length,
		Mass:        d.Mass + o.Mass,
		Time:        d.Time + o.Time,
		Temperature: d.Temperature + o.Temperature,
		Volume:      d.Volume + o.Volume,
	}
}

// Div returns the dimension of a quotient of quantities.
func (d Dimension) Div(o Dimension) Dimension {
	return Dimension{
		Length:      d.Length - o.Length,
		Mass:        d.Mass - o.Mass,
		Time:        d.Time - o.Time,
		Temperature: d.Temperature - o.Temperature,
		Volume:      d.Volume - o.Volume,
	}
}

// String renders the vector for error messages, e.g. "length" or
// "volume/time".
func (d Dimension) String() string {
	if d.IsZero() {
		return "scalar"
	}

	parts := []struct {
		name string
		exp  int8
	}{
		{"length", d.Length},
		{"mass", d.Mass},
		{"time", d.Time},
		{"temperature", d.Temperature},
		{"volume", d.Volume},
	}

	var num, den []string
	for _, p := range parts {
		switch {
		case p.exp > 0:
			num = append(num, p.name)
		case p.exp < 0:
			den = append(den, p.name)
		}
	}

	if len(num) == 0 {
		num = append(num, "1")
	}
	s := strings.Join(num, "·")
	if len(den) > 0 {
		s += "/" + strings.Join(den, "·")
	}
	return s
}

// Unit describes a named unit: its dimension vector and the affine map to
// the dimension's base unit (meter, gram, second, kelvin, milliliter).
type Unit struct {
	Name    string   // canonical name, e.g. "tablespoon"
	Aliases []string // alternate spellings, e.g. "tbsp", "tablespoons"
	Label   string   // display label; defaults to Name
	Dim     Dimension
	Scale   float64 // multiplicative factor to the base unit
	Offset  float64 // additive offset to the base unit (temperature only)
}

// IsAffine reports whether conversion involves an additive offset.
func (u *Unit) IsAffine() bool {
	return u.Offset != 0
}

// ToBase converts a magnitude in this unit to the dimension's base unit.
func (u *Unit) ToBase(v float64) float64 {
	return v*u.Scale + u.Offset
}

// FromBase converts a magnitude in the dimension's base unit to this unit.
func (u *Unit) FromBase(v float64) float64 {
	return (v - u.Offset) / u.Scale
}

// DisplayLabel returns the label shown after converted magnitudes.
func (u *Unit) DisplayLabel() string {
	if u.Label != "" {
		return u.Label
	}
	return u.Name
}

// Registry maps unit names and aliases to units. The registry contents are
// data, not logic: the default table can be extended or overridden from
// declarative definitions (see LoadDefinitions).
type Registry struct {
	byName map[string]*Unit
	units  []*Unit // registration order
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Unit),
	}
}

// Default returns a registry populated with the built-in unit table.
func Default() *Registry {
	r := NewRegistry()
	for i := range defaultUnitTable {
		r.Register(&defaultUnitTable[i])
	}
	return r
}

// Register adds a unit under its name and all aliases. Later registrations
// win on collision, which is what lets definition files override the
// defaults.
func (r *Registry) Register(u *Unit) {
	r.units = append(r.units, u)
	r.byName[normalizeName(u.Name)] = u
	for _, alias := range u.Aliases {
		r.byName[normalizeName(alias)] = u
	}
}

// Lookup resolves a unit name or alias. Matching is exact first, then
// lower-cased, with internal whitespace collapsed ("fluid  ounce" works).
func (r *Registry) Lookup(name string) (*Unit, bool) {
	key := normalizeName(name)
	if u, ok := r.byName[key]; ok {
		return u, true
	}
	if u, ok := r.byName[strings.ToLower(key)]; ok {
		return u, true
	}
	return nil, false
}

// Names returns every registered name and alias, in registration order.
// Used for fuzzy "did you mean" hints and for REPL completion.
func (r *Registry) Names() []string {
	var names []string
	seen := make(map[string]bool)
	for _, u := range r.units {
		if !seen[u.Name] {
			names = append(names, u.Name)
			seen[u.Name] = true
		}
		for _, alias := range u.Aliases {
			if !seen[alias] {
				names = append(names, alias)
				seen[alias] = true
			}
		}
	}
	return names
}

// Units returns the registered units in registration order.
func (r *Registry) Units() []*Unit {
	return r.units
}

// Convert converts a magnitude between two units. Conversion is permitted
// only when the dimension vectors match exactly.
func (r *Registry) Convert(v float64, from, to *Unit) (float64, *serrors.SolveeError) {
	if from.Dim != to.Dim {
		return 0, serrors.New("UNIT-0002", map[string]any{
			"From": from.Name,
			"To":   to.Name,
		})
	}
	return to.FromBase(from.ToBase(v)), nil
}

// normalizeName trims and collapses internal whitespace so that multi-word
// aliases like "fluid ounce" match regardless of spacing.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
