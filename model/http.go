package model

type ConvertSegment struct {
	Mask       uint8  `json:"mask"`
	DurationMs uint32 `json:"duration_ms"`
}

type ConvertResponse struct {
	Source      string           `json:"source,omitempty"`
	TempoUs     uint32           `json:"tempo_us"`
	TempoFound  bool             `json:"tempo_found"`
	MsPerTick   float64          `json:"ms_per_tick"`
	MinNote     uint8            `json:"min_note"`
	MaxNote     uint8            `json:"max_note"`
	NumEvents   int              `json:"num_events"`
	NumSegments int              `json:"num_segments"`
	TotalMs     uint64           `json:"total_ms"`
	Segments    []ConvertSegment `json:"segments"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
