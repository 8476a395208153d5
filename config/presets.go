// SPDX-License-Identifier: MIT

package config

// Presets are named numeric policies selectable from the command line.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"exact": {
		Precision: 512, Epsilon: 0, RootPlaces: 12, MaxIterations: 50000,
		Prompt: DefaultPrompt, Color: true,
	},
	"loose": {
		Precision: 64, Epsilon: 1e-6, RootPlaces: 6, MaxIterations: 2000,
		Prompt: DefaultPrompt, Color: true,
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}
