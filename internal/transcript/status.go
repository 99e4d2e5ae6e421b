package transcript

import "fmt"

// Status is the backend processing state of a transcription. The set is
// closed: anything else from the wire is a protocol error, not a new state.
type Status string

const (
	StatusUploaded   Status = "uploaded"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// ParseStatus validates a wire status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusUploaded, StatusProcessing, StatusCompleted, StatusError:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown transcription status: %q", s)
}

// Ready reports whether segments and flat text are meaningful. Only a
// completed transcription carries usable results.
func (s Status) Ready() bool {
	return s == StatusCompleted
}
