package tempo

import (
	"github.com/jsphweid/relayseq/constants"
	"github.com/jsphweid/relayseq/model"
	"github.com/pkg/errors"
)

// Resolve returns the first set tempo in the file, scanning tracks in order.
// Files without one play at the default 120 bpm.
func Resolve(s model.Song) (tempoUs uint32, found bool) {
	for _, track := range s.Tracks {
		for _, msg := range track {
			if msg.Type == model.MessageSetTempo {
				return msg.Tempo, true
			}
		}
	}
	return constants.DefaultTempoUs, false
}

func MsPerTick(tempoUs uint32, ticksPerBeat int) (float64, error) {
	if ticksPerBeat <= 0 {
		return 0, errors.Wrapf(model.ErrInvalidInput, "ticks per beat must be positive, got %d", ticksPerBeat)
	}
	if tempoUs == 0 {
		return 0, errors.Wrap(model.ErrInvalidInput, "tempo must be positive")
	}
	return float64(tempoUs) / 1000.0 / float64(ticksPerBeat), nil
}
