package segment

import (
	"math/bits"

	"github.com/jsphweid/relayseq/model"
)

// ActiveSet holds the sounding pitches, one bit per MIDI note.
type ActiveSet [2]uint64

func (a *ActiveSet) Add(note uint8) {
	note &= 0x7f
	a[note>>6] |= 1 << (note & 63)
}

func (a *ActiveSet) Remove(note uint8) {
	note &= 0x7f
	a[note>>6] &^= 1 << (note & 63)
}

func (a *ActiveSet) Has(note uint8) bool {
	note &= 0x7f
	return a[note>>6]&(1<<(note&63)) != 0
}

func (a *ActiveSet) Empty() bool {
	return a[0] == 0 && a[1] == 0
}

func (a *ActiveSet) Len() int {
	return bits.OnesCount64(a[0]) + bits.OnesCount64(a[1])
}

// Mask folds the set onto the relays.
func (a *ActiveSet) Mask(r model.PitchRange) uint8 {
	var mask uint8
	for word := 0; word < len(a); word++ {
		w := a[word]
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			w &^= 1 << bit
			mask |= 1 << Channel(uint8(word*64+bit), r)
		}
	}
	return mask
}
