package constants

// 120 bpm, used when a file never sets a tempo
const DefaultTempoUs = 500000

const NumChannels = 8

const DefaultArrayName = "SONG_RELAY_MIDI"

const DefaultAddr = ":8080"

const MaxUploadBytes = 16 * 1024 * 1024

// firmware speed slider bounds, in percent
const (
	MinSpeedPercent     = 50
	MaxSpeedPercent     = 300
	DefaultSpeedPercent = 150
)

// firmware clamps every scaled step to this window
const (
	MinStepMs = 30
	MaxStepMs = 600000
)
