// Package replay drives the engine headlessly from YAML input scripts
package replay

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/bell-fighter/engine"
)

// Script is a deterministic input recording: a seed, a step count, held ranges and presses
type Script struct {
	Seed  uint64  `yaml:"seed"`
	Steps int     `yaml:"steps"`
	Hold  []Hold  `yaml:"hold"`
	Press []Press `yaml:"press"`

	held    []heldRange
	presses map[int][]engine.Command
}

// Hold keeps controls down for steps in [From, To)
type Hold struct {
	Controls []string `yaml:"controls"`
	From     int      `yaml:"from"`
	To       int      `yaml:"to"`
}

// Press fires a command at the start of step At
type Press struct {
	Command string `yaml:"command"`
	At      int    `yaml:"at"`
}

type heldRange struct {
	controls engine.Controls
	from, to int
}

// Load reads and parses a script file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse script %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a script and resolves every control and command name
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := s.resolve(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) resolve() error {
	if s.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", s.Steps)
	}

	s.held = make([]heldRange, 0, len(s.Hold))
	for i, h := range s.Hold {
		if h.From < 0 || h.To < h.From {
			return fmt.Errorf("hold[%d]: invalid range [%d, %d)", i, h.From, h.To)
		}
		var c engine.Controls
		for _, name := range h.Controls {
			bit, ok := engine.ParseControl(name)
			if !ok {
				return fmt.Errorf("hold[%d]: unknown control %q", i, name)
			}
			c |= bit
		}
		s.held = append(s.held, heldRange{controls: c, from: h.From, to: h.To})
	}

	s.presses = make(map[int][]engine.Command, len(s.Press))
	for i, p := range s.Press {
		cmd, ok := engine.ParseCommand(p.Command)
		if !ok {
			return fmt.Errorf("press[%d]: unknown command %q", i, p.Command)
		}
		if p.At < 0 || p.At >= s.Steps {
			return fmt.Errorf("press[%d]: step %d outside [0, %d)", i, p.At, s.Steps)
		}
		s.presses[p.At] = append(s.presses[p.At], cmd)
	}
	return nil
}

// Snapshot returns the input for one step
func (s *Script) Snapshot(step int) engine.Snapshot {
	var held engine.Controls
	for _, h := range s.held {
		if step >= h.from && step < h.to {
			held |= h.controls
		}
	}
	return engine.Snapshot{Held: held, Pressed: s.presses[step]}
}
