package sprig

import (
	"fmt"
	"image"
	"time"
)

// AnimationState is the playback state of an Animation.
type AnimationState uint8

const (
	// AnimationInactive: stopped by the caller; the current frame is shown.
	AnimationInactive AnimationState = iota
	// AnimationPlaying: frames advance as time accumulates.
	AnimationPlaying
	// AnimationFrozenAtEnd: a non-looping sheet ran past its last frame and
	// rests on frame 0.
	AnimationFrozenAtEnd
)

// String returns the state name.
func (s AnimationState) String() string {
	switch s {
	case AnimationInactive:
		return "inactive"
	case AnimationPlaying:
		return "playing"
	case AnimationFrozenAtEnd:
		return "frozen"
	default:
		return "unknown"
	}
}

// Animation plays frame sheets for one sprite. Every Animation owns its own
// frame-action lists, copied from the sheets when it is created, so binding
// an action never affects another sprite sharing the same sheet.
type Animation struct {
	sheets  *SheetSet
	actions map[string]map[int][]FrameAction

	sheetName string
	sheet     *SpriteSheet
	frame     int
	elapsed   time.Duration
	active    bool
	frozen    bool

	sourceRect image.Rectangle

	// onEnter, when set, is told about every frame entered during advance.
	onEnter func(sheet string, frame int)
}

// newAnimation selects the first sheet of set and starts playing it.
func newAnimation(set *SheetSet) (*Animation, error) {
	name, first, ok := set.First()
	if !ok {
		return nil, ErrNoSheets
	}
	a := &Animation{
		sheets:  set,
		actions: make(map[string]map[int][]FrameAction, set.Len()),
		active:  true,
	}
	for _, n := range set.Names() {
		a.sheetActions(n)
	}
	a.sheetName = name
	a.sheet = first
	a.sourceRect = first.SourceRect(0)
	return a, nil
}

// Sheet returns the active sprite sheet.
func (a *Animation) Sheet() *SpriteSheet { return a.sheet }

// SheetName returns the name of the active sprite sheet.
func (a *Animation) SheetName() string { return a.sheetName }

// Frame returns the current frame index, always in [0, FrameCount).
func (a *Animation) Frame() int { return a.frame }

// Elapsed returns the time accumulated on the current frame.
func (a *Animation) Elapsed() time.Duration { return a.elapsed }

// Active reports whether frames are advancing.
func (a *Animation) Active() bool { return a.active }

// SourceRect returns the current frame's rectangle in sheet coordinates.
func (a *Animation) SourceRect() image.Rectangle { return a.sourceRect }

// State returns the playback state.
func (a *Animation) State() AnimationState {
	switch {
	case a.active:
		return AnimationPlaying
	case a.frozen:
		return AnimationFrozenAtEnd
	default:
		return AnimationInactive
	}
}

// SetActiveSheet switches to the named sheet and resets the frame and
// elapsed time to zero. The active flag is left unchanged.
func (a *Animation) SetActiveSheet(name string) error {
	sheet, ok := a.sheets.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSheet, name)
	}
	a.sheetActions(name)
	a.sheetName = name
	a.sheet = sheet
	a.frame = 0
	a.elapsed = 0
	a.frozen = false
	return nil
}

// Play switches to the named sheet and starts it from frame 0.
func (a *Animation) Play(name string) error {
	if err := a.SetActiveSheet(name); err != nil {
		return err
	}
	a.active = true
	return nil
}

// Stop freezes the animation on its current frame. Takes effect on the next
// Update.
func (a *Animation) Stop() {
	a.active = false
	a.frozen = false
}

// Resume continues from the current frame.
func (a *Animation) Resume() {
	a.active = true
	a.frozen = false
}

// SetFrame jumps to frame, wrapped into the sheet's range. Elapsed time is
// reset. No actions fire; the new frame becomes visible on the next Update
// even while inactive.
func (a *Animation) SetFrame(frame int) {
	n := a.sheet.FrameCount
	frame %= n
	if frame < 0 {
		frame += n
	}
	a.frame = frame
	a.elapsed = 0
}

// OnFrame binds fn to a frame of the named sheet for this animation only.
// Actions run in registration order.
func (a *Animation) OnFrame(sheet string, frame int, fn FrameAction) error {
	s, ok := a.sheets.Get(sheet)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSheet, sheet)
	}
	if frame < 0 || frame >= s.FrameCount {
		return fmt.Errorf("%w: frame %d of %d", ErrInvalidSheet, frame, s.FrameCount)
	}
	table := a.sheetActions(sheet)
	table[frame] = append(table[frame], fn)
	return nil
}

// sheetActions returns this animation's action table for a sheet, copying
// the sheet's own actions the first time the sheet is seen. Sheets added to
// the set after the animation was created are picked up here.
func (a *Animation) sheetActions(name string) map[int][]FrameAction {
	if table, ok := a.actions[name]; ok {
		return table
	}
	sheet, _ := a.sheets.Get(name)
	table := sheet.cloneActions()
	a.actions[name] = table
	return table
}

// advance accumulates elapsed time and moves to the next frame once the
// frame time is reached. At most one frame is advanced per tick and the
// accumulator restarts at zero, so a FrameTime <= 0 advances every tick.
// The source rect is recomputed whether or not the animation is active.
func (a *Animation) advance(elapsed time.Duration) (changed bool) {
	if a.active {
		a.elapsed += elapsed
		if a.elapsed >= a.sheet.FrameTime {
			a.frame++
			if a.frame >= a.sheet.FrameCount {
				a.frame = 0
				if !a.sheet.Loop {
					a.active = false
					a.frozen = true
				}
			}
			a.elapsed = 0
			changed = true
			a.fire(a.frame)
		}
	}
	a.sourceRect = a.sheet.SourceRect(a.frame)
	return changed
}

// fire runs the actions bound to frame on the current sheet.
func (a *Animation) fire(frame int) {
	if a.onEnter != nil {
		a.onEnter(a.sheetName, frame)
	}
	for _, fn := range a.actions[a.sheetName][frame] {
		fn()
	}
}
