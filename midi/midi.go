package midi

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/jsphweid/relayseq/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "Error reading midi file")
	}
	return ReadMidi(bytes.NewReader(dat))
}

func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			e = errors.Errorf("Error parsing midi file... %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "Error parsing midi file")
	}
	return res, nil
}

// ToSong flattens a parsed file into the track model the converter works on.
// Every event keeps its delta, including the ones that are not notes.
func ToSong(s *smf.SMF) (model.Song, error) {
	var song model.Song

	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return song, errors.Wrapf(model.ErrInvalidInput, "unsupported time format %v", s.TimeFormat)
	}
	song.TicksPerBeat = int(ticks.Resolution())

	for _, events := range s.Tracks {
		track := make(model.Track, 0, len(events))
		for _, event := range events {
			track = append(track, toMessage(event))
		}
		song.Tracks = append(song.Tracks, track)
	}
	return song, nil
}

func toMessage(event smf.Event) model.Message {
	m := model.Message{Delta: event.Delta}

	var channel, key, velocity uint8
	var bpm float64
	switch {
	case event.Message.GetNoteOn(&channel, &key, &velocity):
		m.Type = model.MessageNoteOn
		m.Note = key
		m.Velocity = velocity
	case event.Message.GetNoteOff(&channel, &key, &velocity):
		m.Type = model.MessageNoteOff
		m.Note = key
		m.Velocity = velocity
	case event.Message.GetMetaTempo(&bpm):
		if bpm > 0 {
			m.Type = model.MessageSetTempo
			m.Tempo = uint32(math.Round(60000000 / bpm))
		}
	}
	return m
}

// Describe is a one line summary used in logs.
func Describe(s *smf.SMF) string {
	return fmt.Sprintf("format=%d tracks=%d timeformat=%v", s.Format(), len(s.Tracks), s.TimeFormat)
}
