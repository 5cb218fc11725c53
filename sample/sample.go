package sample

import (
	"bytes"
	"sort"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Note is a note held from Start to End, both absolute ticks.
type Note struct {
	Key   uint8
	Start uint32
	End   uint32
}

type timedMsg struct {
	tick  uint32
	isOff bool
	msg   midi.Message
}

func noteTrack(notes []Note) smf.Track {
	var msgs []timedMsg
	for _, n := range notes {
		msgs = append(msgs, timedMsg{n.Start, false, midi.NoteOn(0, n.Key, 100)})
		msgs = append(msgs, timedMsg{n.End, true, midi.NoteOff(0, n.Key)})
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].tick != msgs[j].tick {
			return msgs[i].tick < msgs[j].tick
		}
		return msgs[i].isOff && !msgs[j].isOff
	})

	var track smf.Track
	var last uint32
	for _, m := range msgs {
		track.Add(m.tick-last, m.msg)
		last = m.tick
	}
	track.Close(0)
	return track
}

// Create builds a file with one track per note list. When bpm is positive a
// leading tempo track is added.
func Create(ticksPerBeat uint16, bpm float64, tracks ...[]Note) (*smf.SMF, error) {
	res := smf.New()
	res.TimeFormat = smf.MetricTicks(ticksPerBeat)

	if bpm > 0 {
		var tempoTrack smf.Track
		tempoTrack.Add(0, smf.MetaTempo(bpm))
		tempoTrack.Close(0)
		if err := res.Add(tempoTrack); err != nil {
			return nil, errors.Wrap(err, "error adding tempo track")
		}
	}

	for i, notes := range tracks {
		if err := res.Add(noteTrack(notes)); err != nil {
			return nil, errors.Wrapf(err, "error adding track %d", i)
		}
	}
	return res, nil
}

// Scenario is two overlapping notes at 480 ticks per beat and 120 bpm:
// 60 from 0 to 480 and 72 from 240 to 960.
func Scenario() *smf.SMF {
	res, err := Create(480, 120,
		[]Note{{Key: 60, Start: 0, End: 480}},
		[]Note{{Key: 72, Start: 240, End: 960}},
	)
	if err != nil {
		panic("could not build scenario: " + err.Error())
	}
	return res
}

func Bytes(s *smf.SMF) ([]byte, error) {
	buf := new(bytes.Buffer)
	if _, err := s.WriteTo(buf); err != nil {
		return nil, errors.Wrap(err, "error writing midi file")
	}
	return buf.Bytes(), nil
}
