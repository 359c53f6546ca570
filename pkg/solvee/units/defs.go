package units

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// unitDef is the YAML shape of one unit definition:
//
//	units:
//	  - name: smoot
//	    aliases: [smoots]
//	    dimension: length
//	    scale: 1.7018
//
// Offset and label are optional. Dimension names the base dimension the
// scale factor converts to.
type unitDef struct {
	Name      string   `yaml:"name"`
	Aliases   []string `yaml:"aliases"`
	Label     string   `yaml:"label"`
	Dimension string   `yaml:"dimension"`
	Scale     float64  `yaml:"scale"`
	Offset    float64  `yaml:"offset"`
}

type defsFile struct {
	Units []unitDef `yaml:"units"`
}

var dimensionsByName = map[string]Dimension{
	"length":      Length,
	"mass":        Mass,
	"time":        Time,
	"temperature": Temperature,
	"volume":      Volume,
}

// LoadDefinitions reads YAML unit definitions and registers them. A
// definition that reuses an existing name overrides it, so user files can
// both extend and correct the built-in table. The registry is unchanged
// when an error is returned.
func (r *Registry) LoadDefinitions(rd io.Reader) error {
	data, err := io.ReadAll(rd)
	if err != nil {
		return fmt.Errorf("reading unit definitions: %w", err)
	}

	var file defsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing unit definitions: %w", err)
	}

	parsed := make([]*Unit, 0, len(file.Units))
	for i, def := range file.Units {
		if def.Name == "" {
			return fmt.Errorf("unit definition %d: missing name", i+1)
		}
		dim, ok := dimensionsByName[def.Dimension]
		if !ok {
			return fmt.Errorf("unit %q: unknown dimension %q", def.Name, def.Dimension)
		}
		if def.Scale == 0 {
			return fmt.Errorf("unit %q: scale must be non-zero", def.Name)
		}
		parsed = append(parsed, &Unit{
			Name:    def.Name,
			Aliases: def.Aliases,
			Label:   def.Label,
			Dim:     dim,
			Scale:   def.Scale,
			Offset:  def.Offset,
		})
	}

	for _, u := range parsed {
		r.Register(u)
	}
	return nil
}
