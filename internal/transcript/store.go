package transcript

// Store owns the segment sequence and the speaker alias table for one
// loaded transcript. Segment order is authoritative: the store never
// re-sorts, even when the backend delivers segments out of order.
type Store struct {
	title    string
	segments []Segment
	flatText string
	summary  string
	duration float64 // backend-reported media duration, 0 when unknown
	aliases  map[string]string
	speakers []string // distinct speaker ids in first-appearance order
}

func NewStore() *Store {
	return &Store{aliases: make(map[string]string)}
}

// Load atomically replaces the store contents. The alias table is
// re-derived from scratch, each distinct speaker id seeded with itself as
// the default display name; aliases from a previously loaded transcript
// are discarded even when the new one shares speaker ids.
func (s *Store) Load(title string, segments []Segment, flatText string) {
	s.title = title
	s.segments = append([]Segment(nil), segments...)
	s.flatText = flatText
	s.summary = ""
	s.duration = 0
	s.aliases = make(map[string]string, len(segments))
	s.speakers = nil
	for _, seg := range s.segments {
		if _, ok := s.aliases[seg.SpeakerID]; !ok {
			s.aliases[seg.SpeakerID] = seg.SpeakerID
			s.speakers = append(s.speakers, seg.SpeakerID)
		}
	}
}

// RenameSpeaker overwrites the alias for a known speaker id. An unknown
// id is a stale UI reference, not a caller bug, and is silently ignored.
// The empty string is a valid alias and is stored as given.
func (s *Store) RenameSpeaker(id, name string) {
	if _, ok := s.aliases[id]; !ok {
		return
	}
	s.aliases[id] = name
}

// DisplayName returns the alias for a speaker id, or the raw id when no
// alias is known. Exporters and the UI both resolve names through here so
// the two always agree.
func (s *Store) DisplayName(id string) string {
	if name, ok := s.aliases[id]; ok {
		return name
	}
	return id
}

// Segment returns the segment at index i, reporting whether i is in range.
func (s *Store) Segment(i int) (Segment, bool) {
	if i < 0 || i >= len(s.segments) {
		return Segment{}, false
	}
	return s.segments[i], true
}

// Segments returns the segment sequence in store order. Callers must not
// modify the returned slice.
func (s *Store) Segments() []Segment {
	return s.segments
}

// Speakers returns the distinct speaker ids in first-appearance order.
func (s *Store) Speakers() []string {
	return append([]string(nil), s.speakers...)
}

func (s *Store) Len() int {
	return len(s.segments)
}

func (s *Store) Title() string {
	return s.title
}

// FlatText is the undiarized fallback text. It is only meaningful when
// the store holds no segments.
func (s *Store) FlatText() string {
	return s.flatText
}

// SetSummary attaches the backend-generated summary. It is display-only
// pass-through text and never participates in export.
func (s *Store) SetSummary(text string) {
	s.summary = text
}

func (s *Store) Summary() string {
	return s.summary
}

// SetDuration records the backend-reported media duration in seconds.
func (s *Store) SetDuration(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	s.duration = seconds
}

// Duration is the backend-reported media duration, 0 when the backend
// did not supply one.
func (s *Store) Duration() float64 {
	return s.duration
}

// Snapshot returns an immutable copy of the store state, including the
// alias table as it stands right now.
func (s *Store) Snapshot() Snapshot {
	aliases := make(map[string]string, len(s.aliases))
	for id, name := range s.aliases {
		aliases[id] = name
	}
	return Snapshot{
		Title:    s.title,
		Segments: append([]Segment(nil), s.segments...),
		FlatText: s.flatText,
		Summary:  s.summary,
		Duration: s.duration,
		Aliases:  aliases,
	}
}
