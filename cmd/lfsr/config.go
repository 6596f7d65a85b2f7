package main

import (
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/renproject/lfsr"
	"gopkg.in/yaml.v2"
)

// Preset is a named register configuration.
type Preset struct {
	Name    string   `yaml:"name"`
	Variant string   `yaml:"variant"`
	Width   uint32   `yaml:"width"`
	Taps    []uint32 `yaml:"taps"`
	Seed    uint64   `yaml:"seed"`
}

// PresetFile is the layout of the --presets YAML file.
type PresetFile struct {
	Presets []Preset `yaml:"presets"`
}

var defaultPresets = PresetFile{
	Presets: []Preset{
		{Name: "ace1", Variant: "right", Width: 16, Taps: []uint32{16, 14, 13, 11}, Seed: 0xACE1},
		{Name: "ace1-32", Variant: "right", Width: 32, Taps: []uint32{16, 14, 13, 11}, Seed: 0xACE1},
		{Name: "druaga", Variant: "inverted", Width: 8, Taps: []uint32{8, 5}, Seed: 0},
	},
}

func parseYAMLPresets(path string) (*PresetFile, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "ReadFile()")
	}

	var file PresetFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, errors.Wrapf(err, "parsing %v", path)
	}

	seen := make(map[string]bool, len(file.Presets))
	for _, p := range file.Presets {
		if p.Name == "" {
			return nil, errors.Errorf("%v: preset without a name", path)
		}
		if seen[p.Name] {
			return nil, errors.Errorf("%v: duplicate preset %q", path, p.Name)
		}
		seen[p.Name] = true
	}

	return &file, nil
}

// Lookup returns the preset called name.
func (f *PresetFile) Lookup(name string) (Preset, error) {
	for _, p := range f.Presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, errors.Errorf("no preset named %q", name)
}

// Build creates the register described by the preset.
func (p Preset) Build() (lfsr.Engine, error) {
	v, err := lfsr.ParseVariant(p.Variant)
	if err != nil {
		return nil, errors.Wrapf(err, "preset %q", p.Name)
	}
	e, err := lfsr.Build(v, p.Width, p.Taps, p.Seed)
	if err != nil {
		return nil, errors.Wrapf(err, "preset %q", p.Name)
	}
	return e, nil
}

// parseTaps parses a comma separated list such as "16,14,13,11".
func parseTaps(s string) ([]uint32, error) {
	var taps []uint32
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		tap, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "tap %q", field)
		}
		taps = append(taps, uint32(tap))
	}
	return taps, nil
}

// parseWidth range checks a width flag before narrowing it to uint32.
func parseWidth(w uint) (uint32, error) {
	if w < 1 || w > lfsr.MaxWidth {
		return 0, errors.Wrapf(lfsr.ErrWidthOutOfRange, "width %v not in [1, %v]", w, lfsr.MaxWidth)
	}
	return uint32(w), nil
}

// parseSeed accepts decimal, 0x hex, 0o octal and 0b binary seeds.
func parseSeed(s string) (uint64, error) {
	seed, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "seed %q", s)
	}
	return seed, nil
}
