package sprig

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "hold", "keys": ["ArrowRight", "W"], "frames": 4},
			{"action": "wait", "frames": 3},
			{"action": "speed", "speed": 0.5},
			{"action": "sheet", "sprite": "hero", "sheet": "idle"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	hold := runner.steps[1]
	if len(hold.Keys) != 2 || hold.Keys[0] != ebiten.KeyArrowRight || hold.Keys[1] != ebiten.KeyW || hold.Frames != 4 {
		t.Errorf("step 1 = %+v", hold)
	}
	if runner.steps[3].Speed != 0.5 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "click"}]}`},
		{"hold without keys", `{"steps": [{"action": "hold", "frames": 2}]}`},
		{"bad key name", `{"steps": [{"action": "tap", "keys": ["NotAKey"]}]}`},
		{"negative speed", `{"steps": [{"action": "speed", "speed": -1}]}`},
		{"sheet without sprite", `{"steps": [{"action": "sheet", "sheet": "idle"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerDrivesStage(t *testing.T) {
	s := newTestStage()
	hero := newTestStatic(4, 4)
	s.Add(hero)
	s.OnUpdate = func(Tick) {
		hero.MoveWithKeys(s.Input, 1, ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight)
	}

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "hold", "keys": ["ArrowRight"], "frames": 3},
		{"action": "speed", "speed": 0.5},
		{"action": "screenshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	// Ticks 1-3 replay the hold; the runner waits for it to drain.
	for i := 0; i < 3; i++ {
		s.Step(frameTick)
		if runner.Done() {
			t.Fatalf("done after tick %d", i+1)
		}
	}
	s.Step(frameTick)
	if s.Clock.Speed != 0.5 {
		t.Errorf("Clock.Speed = %v, want 0.5", s.Clock.Speed)
	}
	s.Step(frameTick)

	if !runner.Done() {
		t.Error("runner should be done after all steps executed")
	}
	if hero.Position.X != 3 {
		t.Errorf("X = %v, want 3", hero.Position.X)
	}
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "done" {
		t.Errorf("screenshotQueue = %v", s.screenshotQueue)
	}
}

func TestRunnerWait(t *testing.T) {
	s := newTestStage()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	for i := 0; i < 3; i++ {
		s.Step(frameTick)
		if runner.Done() {
			t.Fatalf("done after %d ticks, want 4", i+1)
		}
	}
	s.Step(frameTick)
	if !runner.Done() {
		t.Error("runner not done after wait elapsed")
	}
}

func TestRunnerSwitchesSheet(t *testing.T) {
	s := newTestStage()
	draft := NewAnimatedSprite("hero")
	if err := draft.AddSheet("walk", newTestSheet(2, 4, 4, 100*time.Millisecond, true)); err != nil {
		t.Fatal(err)
	}
	if err := draft.AddSheet("idle", newTestSheet(1, 6, 6, 100*time.Millisecond, true)); err != nil {
		t.Fatal(err)
	}
	hero, err := draft.Ready(s.Pixels)
	if err != nil {
		t.Fatal(err)
	}
	s.Add(hero)

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "sheet", "sprite": "ghost", "sheet": "idle"},
		{"action": "sheet", "sprite": "hero", "sheet": "idle"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	s.Step(frameTick)
	if hero.Animation().SheetName() != "walk" {
		t.Error("unknown sprite step changed hero")
	}
	s.Step(frameTick)
	if hero.Animation().SheetName() != "idle" {
		t.Errorf("sheet = %q, want idle", hero.Animation().SheetName())
	}
	if w, _ := hero.Size(); w != 6 {
		t.Errorf("width = %d, want 6 after resync", w)
	}
	if !runner.Done() {
		t.Error("runner not done")
	}
}
