package transcript

// Segment is one speaker-attributed, time-bounded span of transcript text.
// Offsets are seconds from the start of the media, with End >= Start.
type Segment struct {
	SpeakerID string  `json:"speaker"`
	Text      string  `json:"text"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
}

// Snapshot is a point-in-time copy of a loaded transcript, including the
// alias table as it stood when the copy was taken. Exporters read
// snapshots so that speaker renames happening mid-export cannot produce a
// half-updated document.
type Snapshot struct {
	Title    string
	Segments []Segment
	FlatText string
	Summary  string  // backend-generated, pass-through, ignored by exporters
	Duration float64 // backend-reported media duration, 0 when unknown
	Aliases  map[string]string
}
