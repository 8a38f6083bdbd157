package sprig

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string       `json:"action"`
	Label  string       `json:"label,omitempty"`
	Keys   []ebiten.Key `json:"keys,omitempty"`
	Frames int          `json:"frames,omitempty"`
	Speed  float64      `json:"speed,omitempty"`
	Sprite string       `json:"sprite,omitempty"`
	Sheet  string       `json:"sheet,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected keys, clock changes, sheet switches and
// screenshots across ticks for automated visual testing. Attach to a Stage
// via SetTestRunner.
//
// Actions: "screenshot" (label), "hold" (keys, frames), "tap" (keys),
// "wait" (frames), "speed" (speed), "sheet" (sprite, sheet).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Stage via SetTestRunner. Key names are those accepted
// by ebiten.Key.UnmarshalText, e.g. "ArrowUp" or "W".
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("sprig: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("sprig: parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("sprig: parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func (st testStep) validate() error {
	switch st.Action {
	case "screenshot", "wait":
	case "hold", "tap":
		if len(st.Keys) == 0 {
			return fmt.Errorf("%s needs keys", st.Action)
		}
	case "speed":
		if st.Speed < 0 {
			return fmt.Errorf("negative speed %v", st.Speed)
		}
	case "sheet":
		if st.Sprite == "" || st.Sheet == "" {
			return fmt.Errorf("sheet needs sprite and sheet")
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// SetTestRunner attaches a TestRunner to the stage. The runner's step method
// is called from Stage.Step before input is advanced each tick.
func (s *Stage) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one tick. Called from Stage.Step.
func (r *TestRunner) step(s *Stage) {
	if r.done {
		return
	}
	// Wait for injected keys to drain before advancing.
	if s.Input.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "hold":
		s.Input.InjectHold(st.Frames, st.Keys...)
	case "tap":
		s.Input.InjectTap(st.Keys...)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "speed":
		s.Clock.Speed = st.Speed
	case "sheet":
		if err := s.setSpriteSheet(st.Sprite, st.Sheet); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[sprig] test script: %v\n", err)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && s.Input.Pending() == 0 {
		r.done = true
	}
}

// setSpriteSheet switches the named animated sprite to sheet.
func (s *Stage) setSpriteSheet(spriteName, sheet string) error {
	for _, sp := range s.sprites {
		if sp.Name != spriteName || sp.anim == nil {
			continue
		}
		return sp.anim.SetActiveSheet(sheet)
	}
	return fmt.Errorf("no animated sprite named %q", spriteName)
}
