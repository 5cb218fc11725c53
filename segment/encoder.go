package segment

import (
	"math"

	"github.com/jsphweid/relayseq/model"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func appendSegment(segments []model.Segment, s model.Segment) ([]model.Segment, error) {
	if n := len(segments); n > 0 && segments[n-1].Mask == s.Mask {
		total := uint64(segments[n-1].DurationMs) + uint64(s.DurationMs)
		if total > math.MaxUint32 {
			return nil, errors.Wrapf(model.ErrInvalidInput, "segment of %dms does not fit in 32 bits", total)
		}
		segments[n-1].DurationMs = uint32(total)
		return segments, nil
	}
	return append(segments, s), nil
}

// Encode sweeps the sorted events and emits one segment per stretch of time
// in which the relay mask does not change. Stretches that round to 0ms are
// dropped and nothing is emitted after the last event.
func Encode(events []model.NoteEvent, r model.PitchRange, msPerTick float64) ([]model.Segment, error) {
	if msPerTick <= 0 || math.IsNaN(msPerTick) || math.IsInf(msPerTick, 0) {
		return nil, errors.Wrapf(model.ErrInvalidInput, "bad ms per tick %v", msPerTick)
	}
	if len(events) == 0 {
		return nil, errors.Wrap(model.ErrNoSegments, "no events")
	}

	var segments []model.Segment
	var active ActiveSet
	var strayOffs, dropped int
	currTick := events[0].Tick

	for i := 0; i < len(events); {
		tick := events[i].Tick

		if tick > currTick {
			durMs := math.RoundToEven(float64(tick-currTick) * msPerTick)
			if durMs > math.MaxUint32 {
				return nil, errors.Wrapf(model.ErrInvalidInput, "segment at tick %d lasts %vms", currTick, durMs)
			}
			if durMs > 0 {
				var err error
				segments, err = appendSegment(segments, model.Segment{
					Mask:       active.Mask(r),
					DurationMs: uint32(durMs),
				})
				if err != nil {
					return nil, err
				}
			} else {
				dropped++
			}
			currTick = tick
		}

		// everything at this tick lands before the next boundary
		for ; i < len(events) && events[i].Tick == tick; i++ {
			evt := events[i]
			if !evt.IsNoteOff {
				active.Add(evt.Note)
				continue
			}
			if !active.Has(evt.Note) {
				strayOffs++
			}
			active.Remove(evt.Note)
		}
	}

	log.WithFields(log.Fields{
		"segments":   len(segments),
		"dropped":    dropped,
		"stray_offs": strayOffs,
	}).Debug("encoded segments")

	if len(segments) == 0 {
		return nil, errors.Wrapf(model.ErrNoSegments, "%d events all rounded to 0ms", len(events))
	}
	return segments, nil
}
