package transcript

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// DecodeSegments parses a backend speaker_data payload. The backend
// stores it either as a JSON array of {speaker,text,start,end} objects or
// as a JSON string wrapping that array; both encodings are accepted. An
// absent or null payload yields no segments and no error.
func DecodeSegments(data []byte) ([]Segment, error) {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return nil, nil
	}
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("speaker_data is not valid JSON")
	}

	value := gjson.Parse(raw)
	if value.Type == gjson.String {
		inner := strings.TrimSpace(value.String())
		if inner == "" {
			return nil, nil
		}
		if !gjson.Valid(inner) {
			return nil, fmt.Errorf("speaker_data string does not contain JSON")
		}
		value = gjson.Parse(inner)
	}

	if !value.IsArray() {
		return nil, fmt.Errorf("speaker_data must be an array of segments")
	}

	var segments []Segment
	value.ForEach(func(_, item gjson.Result) bool {
		segments = append(segments, Segment{
			SpeakerID: item.Get("speaker").String(),
			Text:      item.Get("text").String(),
			Start:     item.Get("start").Float(),
			End:       item.Get("end").Float(),
		})
		return true
	})
	return segments, nil
}
