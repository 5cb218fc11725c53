package segment

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jsphweid/relayseq/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func on(tick int64, note uint8) model.NoteEvent {
	return model.NoteEvent{Tick: tick, Note: note}
}

func off(tick int64, note uint8) model.NoteEvent {
	return model.NoteEvent{Tick: tick, IsNoteOff: true, Note: note}
}

func TestEncodeTwoOverlappingNotes(t *testing.T) {
	events := []model.NoteEvent{on(0, 60), on(240, 72), off(480, 60), off(960, 72)}
	segments, err := Encode(events, model.PitchRange{Min: 60, Max: 72}, 500000.0/1000.0/480)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.Segment{
		{Mask: 0x01, DurationMs: 250},
		{Mask: 0x81, DurationMs: 250},
		{Mask: 0x80, DurationMs: 500},
	}, segments)
}

func TestEncodeSinglePitchOnlyUsesFirstRelay(t *testing.T) {
	events := []model.NoteEvent{on(0, 64), off(96, 64), on(192, 64), off(288, 64)}
	segments, err := Encode(events, model.PitchRange{Min: 64, Max: 64}, 500000.0/1000.0/96)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.Segment{
		{Mask: 0x01, DurationMs: 500},
		{Mask: 0x00, DurationMs: 500},
		{Mask: 0x01, DurationMs: 500},
	}, segments)
}

func TestEncodeDoubleNoteOnIsClearedByOneNoteOff(t *testing.T) {
	events := []model.NoteEvent{on(0, 60), on(100, 60), off(200, 60), on(300, 72), off(400, 72)}
	segments, err := Encode(events, model.PitchRange{Min: 60, Max: 72}, 1)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.Segment{
		{Mask: 0x01, DurationMs: 200},
		{Mask: 0x00, DurationMs: 100},
		{Mask: 0x80, DurationMs: 100},
	}, segments)
}

func TestEncodeIgnoresNoteOffForSilentPitch(t *testing.T) {
	events := []model.NoteEvent{on(0, 60), off(50, 65), off(100, 60), on(150, 72), off(200, 72)}
	segments, err := Encode(events, model.PitchRange{Min: 60, Max: 72}, 1)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.Segment{
		{Mask: 0x01, DurationMs: 100},
		{Mask: 0x00, DurationMs: 50},
		{Mask: 0x80, DurationMs: 50},
	}, segments)
}

func TestEncodeDropsZeroLengthSegments(t *testing.T) {
	events := []model.NoteEvent{on(0, 60), on(1, 72), off(2000, 60), off(3000, 72)}
	segments, err := Encode(events, model.PitchRange{Min: 60, Max: 72}, 0.25)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.Segment{
		{Mask: 0x81, DurationMs: 500},
		{Mask: 0x80, DurationMs: 250},
	}, segments)
}

func TestEncodeMergesEqualNeighbours(t *testing.T) {
	// 60 and 61 share a relay over the full keyboard
	events := []model.NoteEvent{on(0, 60), on(100, 61), off(200, 60), off(300, 61)}
	segments, err := Encode(events, model.PitchRange{Min: 0, Max: 127}, 1)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.Segment{{Mask: 0x08, DurationMs: 300}}, segments)
}

func TestEncodeMergesAcrossDroppedSegment(t *testing.T) {
	events := []model.NoteEvent{on(0, 60), on(100, 72), off(101, 72), off(200, 60)}
	segments, err := Encode(events, model.PitchRange{Min: 60, Max: 72}, 0.1)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.Segment{{Mask: 0x01, DurationMs: 20}}, segments)
}

func TestEncodeEmitsSilenceBetweenNotes(t *testing.T) {
	events := []model.NoteEvent{on(10, 60), off(20, 60), on(40, 72), off(50, 72)}
	segments, err := Encode(events, model.PitchRange{Min: 60, Max: 72}, 10)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.Segment{
		{Mask: 0x01, DurationMs: 100},
		{Mask: 0x00, DurationMs: 200},
		{Mask: 0x80, DurationMs: 100},
	}, segments)
}

func TestEncodeNothingAfterLastEvent(t *testing.T) {
	// 72 is never released
	events := []model.NoteEvent{on(0, 60), on(100, 72), off(200, 60)}
	segments, err := Encode(events, model.PitchRange{Min: 60, Max: 72}, 1)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.Segment{
		{Mask: 0x01, DurationMs: 100},
		{Mask: 0x81, DurationMs: 100},
	}, segments)
}

func TestEncodeNoSegments(t *testing.T) {
	cases := map[string][]model.NoteEvent{
		"single tick": {on(5, 60), off(5, 60)},
		"too short":   {on(0, 60), off(100, 60)},
		"no events":   nil,
	}
	for name, events := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Encode(events, model.PitchRange{Min: 60, Max: 60}, 0.001)
			assert.True(t, errors.Is(err, model.ErrNoSegments))
		})
	}
}

func TestEncodeRejectsBadMsPerTick(t *testing.T) {
	events := []model.NoteEvent{on(0, 60), off(100, 60)}
	for _, ms := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := Encode(events, model.PitchRange{Min: 60, Max: 60}, ms)
		assert.True(t, errors.Is(err, model.ErrInvalidInput))
	}
}

func TestEncodeDurationsAddUp(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var events []model.NoteEvent
	var tick int64
	for i := 0; i < 400; i++ {
		tick += int64(rng.Intn(50))
		note := uint8(40 + rng.Intn(40))
		events = append(events, model.NoteEvent{Tick: tick, IsNoteOff: rng.Intn(2) == 0, Note: note})
	}
	r := model.PitchRange{Min: 40, Max: 79}
	msPerTick := 500000.0 / 1000.0 / 384

	segments, err := Encode(events, r, msPerTick)
	assert.NoError(t, err)

	boundaries := 0
	for i := 1; i < len(events); i++ {
		if events[i].Tick != events[i-1].Tick {
			boundaries++
		}
	}
	var total float64
	for i, s := range segments {
		assert.Greater(t, s.DurationMs, uint32(0))
		if i > 0 {
			assert.NotEqual(t, segments[i-1].Mask, s.Mask)
		}
		total += float64(s.DurationMs)
	}
	exact := float64(events[len(events)-1].Tick-events[0].Tick) * msPerTick
	assert.LessOrEqual(t, math.Abs(total-exact), float64(boundaries)*0.5+1e-6)
}
