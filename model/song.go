package model

type MessageType int

const (
	MessageOther MessageType = iota
	MessageNoteOn
	MessageNoteOff
	MessageSetTempo
)

func (t MessageType) String() string {
	switch t {
	case MessageNoteOn:
		return "note_on"
	case MessageNoteOff:
		return "note_off"
	case MessageSetTempo:
		return "set_tempo"
	}
	return "other"
}

// Message is one track message with its delta time in ticks. Note and Velocity
// are only meaningful for note messages, Tempo (microseconds per beat) only for
// set tempo.
type Message struct {
	Delta    uint32
	Type     MessageType
	Note     uint8
	Velocity uint8
	Tempo    uint32
}

type Track = []Message

type Song struct {
	TicksPerBeat int
	Tracks       []Track
}
