package model

// NoteEvent is a note on or off at an absolute tick. The track it came from is
// not kept.
type NoteEvent struct {
	Tick      int64
	IsNoteOff bool
	Note      uint8
}

// PitchRange is the lowest and highest note seen anywhere in a file.
type PitchRange struct {
	Min uint8
	Max uint8
}

type Segment struct {
	Mask       uint8
	DurationMs uint32
}
