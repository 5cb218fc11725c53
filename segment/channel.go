package segment

import (
	"math"

	"github.com/jsphweid/relayseq/constants"
	"github.com/jsphweid/relayseq/model"
	"github.com/jsphweid/relayseq/util"
)

// Channel spreads the pitch range linearly over the relays. Several pitches
// can land on the same relay.
func Channel(note uint8, r model.PitchRange) int {
	if r.Max <= r.Min {
		return 0
	}
	norm := float64(int(note)-int(r.Min)) / float64(int(r.Max)-int(r.Min))
	idx := int(math.RoundToEven(norm * (constants.NumChannels - 1)))
	return util.Clamp(idx, 0, constants.NumChannels-1)
}

// ChannelMap lists the relay of every pitch in the range.
func ChannelMap(r model.PitchRange) map[uint8]int {
	res := make(map[uint8]int)
	for note := int(r.Min); note <= int(r.Max); note++ {
		res[uint8(note)] = Channel(uint8(note), r)
	}
	return res
}
