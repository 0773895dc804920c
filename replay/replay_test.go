package replay

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/bell-fighter/engine"
)

const sampleScript = `
seed: 7
steps: 400
hold:
  - controls: [fire, left]
    from: 0
    to: 120
  - controls: [up]
    from: 100
    to: 140
press:
  - command: force_boss
    at: 300
  - command: toggle_debug
    at: 300
`

// TestParseResolvesNames verifies held ranges and presses are resolved
func TestParseResolvesNames(t *testing.T) {
	s, err := Parse([]byte(sampleScript))
	if err != nil {
		t.Fatalf("Expected parse success, got %v", err)
	}

	if got := s.Snapshot(0).Held; got != engine.ControlFire|engine.ControlLeft {
		t.Errorf("Expected fire|left at step 0, got %v", got)
	}
	if got := s.Snapshot(110).Held; got != engine.ControlFire|engine.ControlLeft|engine.ControlUp {
		t.Errorf("Expected overlap at step 110, got %v", got)
	}
	if got := s.Snapshot(120).Held; got != engine.ControlUp {
		t.Errorf("Expected range end exclusive, got %v", got)
	}
	if got := s.Snapshot(200).Held; got != 0 {
		t.Errorf("Expected nothing held at 200, got %v", got)
	}

	pressed := s.Snapshot(300).Pressed
	if len(pressed) != 2 || pressed[0] != engine.CommandForceBoss || pressed[1] != engine.CommandToggleDebug {
		t.Errorf("Expected presses in script order, got %v", pressed)
	}
	if len(s.Snapshot(299).Pressed) != 0 {
		t.Errorf("Expected no presses at 299")
	}
}

// TestParseErrors verifies invalid scripts are rejected
func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"unknown control": "steps: 10\nhold:\n  - controls: [jump]\n    from: 0\n    to: 5\n",
		"unknown command": "steps: 10\npress:\n  - command: pause\n    at: 1\n",
		"no steps":        "seed: 1\n",
		"bad range":       "steps: 10\nhold:\n  - controls: [up]\n    from: 5\n    to: 2\n",
		"press past end":  "steps: 10\npress:\n  - command: reset\n    at: 10\n",
		"bad yaml":        "steps: [",
	}
	for name, src := range cases {
		if _, err := Parse([]byte(src)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

// TestParseErrorNamesCulprit verifies the message carries the offending name
func TestParseErrorNamesCulprit(t *testing.T) {
	_, err := Parse([]byte("steps: 10\npress:\n  - command: pause\n    at: 1\n"))
	if err == nil || !strings.Contains(err.Error(), "pause") {
		t.Errorf("Expected error naming the command, got %v", err)
	}
}

// TestLoad verifies file reading and wrapping of missing files
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	if err := os.WriteFile(path, []byte(sampleScript), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("Expected load success, got %v", err)
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

// TestRunDeterministic verifies identical scripts produce identical summaries
func TestRunDeterministic(t *testing.T) {
	s, err := Parse([]byte(sampleScript))
	if err != nil {
		t.Fatal(err)
	}

	a := Run(s, nil)
	b := Run(s, nil)
	if a != b {
		t.Errorf("Expected identical summaries, got %v and %v", a, b)
	}
	if a.Steps != 400 {
		t.Errorf("Expected 400 steps, got %d", a.Steps)
	}
}

// TestRunForcedBoss verifies a forced boss is present in the summary
func TestRunForcedBoss(t *testing.T) {
	s, err := Parse([]byte("seed: 3\nsteps: 5\npress:\n  - command: force_boss\n    at: 0\n"))
	if err != nil {
		t.Fatal(err)
	}

	sum := Run(s, nil)
	if sum.Phase != engine.PhaseBoss {
		t.Errorf("Expected BOSS phase, got %v", sum.Phase)
	}
	if sum.BossHP != 400 {
		t.Errorf("Expected full boss HP 400, got %d", sum.BossHP)
	}
}

// TestSummaryString verifies the printable form
func TestSummaryString(t *testing.T) {
	sum := Summary{Steps: 10, Phase: engine.PhasePlaying, Lives: 3}
	want := "steps=10 phase=PLAYING score=0 lives=3 boss_hp=0 enemies=0 enemy_bullets=0"
	if sum.String() != want {
		t.Errorf("Expected %q, got %q", want, sum.String())
	}
}

// TestBundledScript verifies the example script loads and runs to a boss fight or beyond
func TestBundledScript(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "boss_rush.yaml"))
	if err != nil {
		t.Fatalf("Expected bundled script to load, got %v", err)
	}

	sum := Run(s, nil)
	if sum.Phase == engine.PhasePlaying {
		t.Errorf("Expected boss to have been forced, still PLAYING")
	}
}
