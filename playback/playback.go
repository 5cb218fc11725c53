// Package playback models how the relay player firmware times a song, so a
// table can be checked before it is flashed.
package playback

import (
	"time"

	"github.com/jsphweid/relayseq/constants"
	"github.com/jsphweid/relayseq/model"
	"github.com/jsphweid/relayseq/util"
)

// buzz rate of each relay in Hz, tuned by ear on the board
var buzzFrequencies = [constants.NumChannels]uint16{45, 55, 70, 85, 100, 120, 140, 160}

func ClampSpeed(speedPercent int) int {
	return util.Clamp(speedPercent, constants.MinSpeedPercent, constants.MaxSpeedPercent)
}

// ScaledDuration is how long the firmware holds a step at the given speed.
func ScaledDuration(ms uint32, speedPercent int) uint32 {
	d := uint64(ms) * 100 / uint64(ClampSpeed(speedPercent))
	return uint32(util.Clamp(d, constants.MinStepMs, constants.MaxStepMs))
}

// BuzzFrequency is the rate the lowest active relay decides for the whole mask.
func BuzzFrequency(mask uint8) uint16 {
	for i := 0; i < constants.NumChannels; i++ {
		if mask&(1<<i) != 0 {
			return buzzFrequencies[i]
		}
	}
	return 0
}

// Length is the time one pass over the table takes on the player.
func Length(segments []model.Segment, speedPercent int) time.Duration {
	durations := make([]uint32, 0, len(segments))
	for _, s := range segments {
		durations = append(durations, ScaledDuration(s.DurationMs, speedPercent))
	}
	return time.Duration(util.Sum(durations)) * time.Millisecond
}
