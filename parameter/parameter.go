package parameter

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"ppdmap/model"
)

//go:embed standard.yaml
var standard []byte

// Parameter describes one model parameter. Min and Max are informational
// fitting bounds and are not enforced.
type Parameter struct {
	Name        string   `yaml:"name" json:"name"`
	Unit        string   `yaml:"unit" json:"unit"`
	Description string   `yaml:"description" json:"description"`
	Value       float64  `yaml:"value" json:"value"`
	Free        bool     `yaml:"free" json:"free"`
	Min         *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max         *float64 `yaml:"max,omitempty" json:"max,omitempty"`
}

func (p Parameter) String() string {
	state := "fixed"
	if p.Free {
		state = "free"
	}
	msg := fmt.Sprintf("Parameter: %s has the value %.2f and is %s", p.Name, p.Value, state)
	if p.Min != nil && p.Max != nil {
		msg += fmt.Sprintf(" with its limits being %.1f-%.1f", *p.Min, *p.Max)
	}
	return msg
}

type Catalog struct {
	Parameters []Parameter `yaml:"parameters" json:"parameters"`

	index map[string]int
}

// 参数名到 model.Params 字段的映射
var setters = map[string]func(p *model.Params, v float64){
	"dim":         func(p *model.Params, v float64) { p.Dim = int(v) },
	"pixel_size":  func(p *model.Params, v float64) { p.PixelSize = v },
	"pixel_angle": func(p *model.Params, v float64) { p.PixelAngle = v },
	"pa":          func(p *model.Params, v float64) { p.Pa = v },
	"elong":       func(p *model.Params, v float64) { p.Elong = v },
	"eff_radius":  func(p *model.Params, v float64) { p.Star.Radius = v },
	"eff_temp":    func(p *model.Params, v float64) { p.Star.Temperature = v },
	"rin":         func(p *model.Params, v float64) { p.Disk.InnerRadius = v },
	"inner_temp":  func(p *model.Params, v float64) { p.Disk.InnerTemperature = v },
	"q":           func(p *model.Params, v float64) { p.Disk.Q = v },
	"inner_sigma": func(p *model.Params, v float64) { p.Disk.InnerSigma = v },
	"p":           func(p *model.Params, v float64) { p.Disk.P = v },
	"kappa_abs":   func(p *model.Params, v float64) { p.Disk.Opacity = v },
	"a":           func(p *model.Params, v float64) { p.Disk.A = v },
	"phi":         func(p *model.Params, v float64) { p.Disk.Phi = v },
	"wavelength":  func(p *model.Params, v float64) { p.Wavelength = v },
}

// Load decodes the embedded standard catalog.
func Load() (*Catalog, error) {
	return Parse(standard)
}

func Parse(data []byte) (*Catalog, error) {
	c := &Catalog{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse parameter catalog: %w", err)
	}
	c.index = make(map[string]int, len(c.Parameters))
	for i, p := range c.Parameters {
		if _, ok := setters[p.Name]; !ok {
			return nil, fmt.Errorf("parse parameter catalog: unknown parameter %q", p.Name)
		}
		if _, ok := c.index[p.Name]; ok {
			return nil, fmt.Errorf("parse parameter catalog: duplicate parameter %q", p.Name)
		}
		c.index[p.Name] = i
	}
	return c, nil
}

func (c *Catalog) Get(name string) (Parameter, bool) {
	i, ok := c.index[name]
	if !ok {
		return Parameter{}, false
	}
	return c.Parameters[i], true
}

// Defaults builds model parameters from the catalog values. Switches
// (elliptic, asymmetric, constant temperature) stay off.
func (c *Catalog) Defaults() model.Params {
	p := model.Params{}
	for _, param := range c.Parameters {
		setters[param.Name](&p, param.Value)
	}
	return p
}
