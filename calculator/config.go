package calculator

import (
	"gopkg.in/ini.v1"

	"ppdmap/model"
)

type Config struct {
	Workers    int
	Dim        int
	PixelSize  float64
	Wavelength float64

	Addr   string
	Path   string
	MaxDim int

	LogLevel string
}

// LoadConfig reads an ini file. When the file cannot be read the defaults are
// returned together with the error so callers may carry on.
func LoadConfig(path string) (Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return loadCfg(ini.Empty()), err
	}
	return loadCfg(file), nil
}

func loadCfg(file *ini.File) Config {
	return Config{
		Workers:    file.Section("calculator").Key("Workers").MustInt(1),
		Dim:        file.Section("calculator").Key("Dim").MustInt(0),
		PixelSize:  file.Section("calculator").Key("PixelSize").MustFloat64(0),
		Wavelength: file.Section("calculator").Key("Wavelength").MustFloat64(0),
		Addr:       file.Section("server").Key("Addr").MustString(":9000"),
		Path:       file.Section("server").Key("Path").MustString("/ws"),
		MaxDim:     file.Section("server").Key("MaxDim").MustInt(1024),
		LogLevel:   file.Section("log").Key("Level").MustString("info"),
	}
}

// Apply overrides the grid and wavelength settings of p with the non-zero
// values from the config.
func (c Config) Apply(p model.Params) model.Params {
	if c.Dim > 0 {
		p.Dim = c.Dim
	}
	if c.PixelSize > 0 {
		p.PixelSize = c.PixelSize
	}
	if c.Wavelength > 0 {
		p.Wavelength = c.Wavelength
	}
	return p
}
