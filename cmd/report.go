package cmd

import (
	"time"

	"github.com/jsphweid/relayseq/constants"
	"github.com/jsphweid/relayseq/convert"
	"github.com/jsphweid/relayseq/playback"
	"github.com/jsphweid/relayseq/segment"
	"github.com/jsphweid/relayseq/util"
)

type relayReport struct {
	index     int
	notes     []uint8
	activeMs  uint64
	numSteps  int
	frequency uint16
}

type songReport struct {
	relays       [constants.NumChannels]relayReport
	totalMs      uint64
	silentMs     uint64
	numSteps     int
	speedPercent int
	playback     time.Duration
}

func analyze(res *convert.Result, speedPercent int) songReport {
	var report songReport
	report.speedPercent = playback.ClampSpeed(speedPercent)
	report.numSteps = len(res.Segments)
	report.totalMs = res.TotalMs()
	report.playback = playback.Length(res.Segments, speedPercent)

	for i := range report.relays {
		report.relays[i].index = i
		report.relays[i].frequency = playback.BuzzFrequency(1 << i)
	}

	channels := segment.ChannelMap(res.Range)
	for _, note := range util.GetKeys(channels) {
		r := &report.relays[channels[note]]
		r.notes = append(r.notes, note)
	}

	for _, s := range res.Segments {
		if s.Mask == 0 {
			report.silentMs += uint64(s.DurationMs)
			continue
		}
		for i := range report.relays {
			if s.Mask&(1<<i) != 0 {
				report.relays[i].activeMs += uint64(s.DurationMs)
				report.relays[i].numSteps += 1
			}
		}
	}
	return report
}
