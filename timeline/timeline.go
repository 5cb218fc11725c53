package timeline

import (
	"sort"

	"github.com/jsphweid/relayseq/model"
	"github.com/pkg/errors"
)

func trackEvents(track model.Track) []model.NoteEvent {
	var events []model.NoteEvent
	var absTicks int64
	for _, msg := range track {
		// every message moves the clock, notes or not
		absTicks += int64(msg.Delta)
		switch msg.Type {
		case model.MessageNoteOn:
			events = append(events, model.NoteEvent{
				Tick:      absTicks,
				IsNoteOff: msg.Velocity == 0,
				Note:      msg.Note,
			})
		case model.MessageNoteOff:
			events = append(events, model.NoteEvent{
				Tick:      absTicks,
				IsNoteOff: true,
				Note:      msg.Note,
			})
		}
	}
	return events
}

// Sort orders events by tick. At a shared tick all note offs come before all
// note ons; otherwise the incoming order is kept.
func Sort(events []model.NoteEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Tick != events[j].Tick {
			return events[i].Tick < events[j].Tick
		}
		return events[i].IsNoteOff && !events[j].IsNoteOff
	})
}

func Range(events []model.NoteEvent) model.PitchRange {
	var r model.PitchRange
	for i, evt := range events {
		if i == 0 || evt.Note < r.Min {
			r.Min = evt.Note
		}
		if i == 0 || evt.Note > r.Max {
			r.Max = evt.Note
		}
	}
	return r
}

// Build merges the note events of every track into one sorted timeline and
// reports the pitch range over all of them, note offs included.
func Build(s model.Song) ([]model.NoteEvent, model.PitchRange, error) {
	var events []model.NoteEvent
	for _, track := range s.Tracks {
		events = append(events, trackEvents(track)...)
	}
	if len(events) == 0 {
		return nil, model.PitchRange{}, errors.Wrapf(model.ErrEmptyInput, "%d tracks scanned", len(s.Tracks))
	}

	Sort(events)
	return events, Range(events), nil
}
