package sprig

import (
	"errors"
	"fmt"
	"image"
	"time"
)

var (
	// ErrInvalidSheet is returned for sprite sheets with no frames or a
	// non-positive frame size.
	ErrInvalidSheet = errors.New("sprig: invalid sprite sheet")
	// ErrDuplicateSheet is returned when a sheet name is registered twice.
	ErrDuplicateSheet = errors.New("sprig: duplicate sprite sheet name")
	// ErrUnknownSheet is returned when a sheet name is not registered.
	ErrUnknownSheet = errors.New("sprig: unknown sprite sheet")
	// ErrNoSheets is returned when an animated sprite is readied without
	// any sprite sheets.
	ErrNoSheets = errors.New("sprig: no sprite sheets")
)

// FrameAction is a callback bound to a frame index. It runs synchronously
// inside Update each time its frame is entered and must not call Update on
// the sprite that fired it.
type FrameAction func()

// SpriteSheet describes a strip of equally sized frames laid out
// horizontally, starting at the top-left of Image.
type SpriteSheet struct {
	// Image is the pixel source. *ebiten.Image satisfies image.Image, as
	// does any decoded image.
	Image image.Image

	FrameWidth  int
	FrameHeight int
	FrameCount  int

	// FrameTime is how long each frame is shown. A value <= 0 advances one
	// frame every tick.
	FrameTime time.Duration

	// Loop restarts at frame 0 after the last frame. Without it the
	// animation deactivates and rests on frame 0.
	Loop bool

	// Actions are copied into every Animation that uses this sheet, so
	// each animated sprite owns its own callback lists.
	Actions map[int][]FrameAction
}

// OnFrame appends fn to the actions bound to frame. Returns the sheet for
// chaining.
func (s *SpriteSheet) OnFrame(frame int, fn FrameAction) *SpriteSheet {
	if s.Actions == nil {
		s.Actions = make(map[int][]FrameAction)
	}
	s.Actions[frame] = append(s.Actions[frame], fn)
	return s
}

// Validate reports descriptor errors the animation core does not defend
// against.
func (s *SpriteSheet) Validate() error {
	switch {
	case s.FrameCount <= 0:
		return fmt.Errorf("%w: frame count %d", ErrInvalidSheet, s.FrameCount)
	case s.FrameWidth <= 0 || s.FrameHeight <= 0:
		return fmt.Errorf("%w: frame size %dx%d", ErrInvalidSheet, s.FrameWidth, s.FrameHeight)
	}
	for frame := range s.Actions {
		if frame < 0 || frame >= s.FrameCount {
			return fmt.Errorf("%w: action bound to frame %d of %d", ErrInvalidSheet, frame, s.FrameCount)
		}
	}
	return nil
}

// SourceRect returns the frame's rectangle in sheet coordinates:
// [frame*FrameWidth, 0, FrameWidth, FrameHeight].
func (s *SpriteSheet) SourceRect(frame int) image.Rectangle {
	x := frame * s.FrameWidth
	return image.Rect(x, 0, x+s.FrameWidth, s.FrameHeight)
}

// cloneActions copies the action table so the caller owns its lists.
func (s *SpriteSheet) cloneActions() map[int][]FrameAction {
	out := make(map[int][]FrameAction, len(s.Actions))
	for frame, list := range s.Actions {
		out[frame] = append([]FrameAction(nil), list...)
	}
	return out
}

// SheetSet is a named collection of sprite sheets that remembers insertion
// order. The first sheet added is the default when a sprite is readied.
type SheetSet struct {
	names  []string
	sheets map[string]*SpriteSheet
}

// NewSheetSet returns an empty set.
func NewSheetSet() *SheetSet {
	return &SheetSet{sheets: make(map[string]*SpriteSheet)}
}

// Add validates sheet and registers it under name.
func (s *SheetSet) Add(name string, sheet *SpriteSheet) error {
	if _, ok := s.sheets[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSheet, name)
	}
	if err := sheet.Validate(); err != nil {
		return fmt.Errorf("sheet %q: %w", name, err)
	}
	s.names = append(s.names, name)
	s.sheets[name] = sheet
	return nil
}

// Get returns the sheet registered under name.
func (s *SheetSet) Get(name string) (*SpriteSheet, bool) {
	sheet, ok := s.sheets[name]
	return sheet, ok
}

// First returns the earliest registered sheet.
func (s *SheetSet) First() (string, *SpriteSheet, bool) {
	if len(s.names) == 0 {
		return "", nil, false
	}
	name := s.names[0]
	return name, s.sheets[name], true
}

// Names returns sheet names in insertion order. The returned slice MUST NOT
// be mutated.
func (s *SheetSet) Names() []string {
	return s.names
}

// Len returns the number of sheets.
func (s *SheetSet) Len() int {
	return len(s.names)
}
