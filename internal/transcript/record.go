package transcript

import "encoding/json"

// Record is a transcription row as delivered by the backend API. Only
// completed records carry meaningful SpeakerData or ResultText; Summary
// is backend-generated free text passed through verbatim.
type Record struct {
	ID          string          `json:"id"`
	Status      string          `json:"status"`
	Title       string          `json:"title"`
	Language    string          `json:"language"`
	AudioFile   string          `json:"audio_file"`
	Duration    float64         `json:"duration"`
	ResultText  string          `json:"result_text"`
	SpeakerData json.RawMessage `json:"speaker_data"`
	Summary     string          `json:"summary"`
	DateCreated string          `json:"date_created"`
}

// Segments decodes the record's speaker_data payload.
func (r *Record) Segments() ([]Segment, error) {
	return DecodeSegments(r.SpeakerData)
}
