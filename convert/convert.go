package convert

import (
	"io"

	"github.com/jsphweid/relayseq/midi"
	"github.com/jsphweid/relayseq/model"
	"github.com/jsphweid/relayseq/segment"
	"github.com/jsphweid/relayseq/tempo"
	"github.com/jsphweid/relayseq/timeline"
	log "github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2/smf"
)

type Result struct {
	TempoUs    uint32
	TempoFound bool
	MsPerTick  float64
	Range      model.PitchRange
	Events     int
	Segments   []model.Segment
}

func (r *Result) TotalMs() uint64 {
	var total uint64
	for _, s := range r.Segments {
		total += uint64(s.DurationMs)
	}
	return total
}

// Convert runs tempo resolution, the timeline merge and the segment sweep.
func Convert(s model.Song) (*Result, error) {
	var res Result

	res.TempoUs, res.TempoFound = tempo.Resolve(s)
	msPerTick, err := tempo.MsPerTick(res.TempoUs, s.TicksPerBeat)
	if err != nil {
		return nil, err
	}
	res.MsPerTick = msPerTick

	events, r, err := timeline.Build(s)
	if err != nil {
		return nil, err
	}
	res.Range = r
	res.Events = len(events)

	log.WithFields(log.Fields{
		"tempo_us":    res.TempoUs,
		"tempo_found": res.TempoFound,
		"ms_per_tick": res.MsPerTick,
		"events":      res.Events,
		"min_note":    r.Min,
		"max_note":    r.Max,
	}).Debug("timeline built")

	res.Segments, err = segment.Encode(events, r, msPerTick)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func ConvertSMF(s *smf.SMF) (*Result, error) {
	log.Debugf("converting %v", midi.Describe(s))
	song, err := midi.ToSong(s)
	if err != nil {
		return nil, err
	}
	return Convert(song)
}

func ConvertFile(path string) (*Result, error) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	return ConvertSMF(s)
}

func ConvertReader(r io.Reader) (*Result, error) {
	s, err := midi.ReadMidi(r)
	if err != nil {
		return nil, err
	}
	return ConvertSMF(s)
}
