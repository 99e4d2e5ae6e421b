package export

import (
	"errors"
	"testing"

	"github.com/kasetapp/kaset/internal/transcript"
)

func aliasedSnapshot() transcript.Snapshot {
	store := transcript.NewStore()
	store.Load("Interview", []transcript.Segment{
		{SpeakerID: "A", Text: "hi", Start: 0, End: 1.5},
		{SpeakerID: "B", Text: "there", Start: 1.5, End: 3},
	}, "")
	store.RenameSpeaker("A", "Ali")
	store.RenameSpeaker("B", "Beth")
	return store.Snapshot()
}

func TestTimecode(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00,000"},
		{1.5, "00:00:01,500"},
		{1.9995, "00:00:01,999"}, // truncation, not rounding
		{3661.2, "01:01:01,200"}, // float64 holds 3661.19999…, still ,200
		{59.999, "00:00:59,999"},
		{3599.999, "00:59:59,999"},
		{7325.25, "02:02:05,250"},
		{-4, "00:00:00,000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Timecode(tt.seconds); got != tt.want {
				t.Errorf("Timecode(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestSRT(t *testing.T) {
	got, err := SRT(aliasedSnapshot())
	if err != nil {
		t.Fatalf("SRT failed: %v", err)
	}

	want := "1\n" +
		"00:00:00,000 --> 00:00:01,500\n" +
		"Ali: hi\n" +
		"\n" +
		"2\n" +
		"00:00:01,500 --> 00:00:03,000\n" +
		"Beth: there\n" +
		"\n"
	if got != want {
		t.Errorf("SRT output:\ngot  %q\nwant %q", got, want)
	}
}

func TestSRTWithoutSegments(t *testing.T) {
	snap := transcript.Snapshot{Title: "Empty", FlatText: "only flat text"}

	if _, err := SRT(snap); !errors.Is(err, ErrNoSegments) {
		t.Errorf("got %v, want ErrNoSegments", err)
	}
}

func TestText(t *testing.T) {
	got := Text(aliasedSnapshot())
	want := "Ali: hi\n\nBeth: there"
	if got != want {
		t.Errorf("Text output:\ngot  %q\nwant %q", got, want)
	}
}

func TestTextFlatFallback(t *testing.T) {
	snap := transcript.Snapshot{Title: "Plain", FlatText: "no diarization here"}
	if got := Text(snap); got != "no diarization here" {
		t.Errorf("flat fallback: got %q", got)
	}

	if got := Text(transcript.Snapshot{Title: "Nothing"}); got != "" {
		t.Errorf("empty transcript: got %q, want empty string", got)
	}
}

func TestTextIgnoresFlatTextWhenSegmentsPresent(t *testing.T) {
	snap := aliasedSnapshot()
	snap.FlatText = "must not appear"

	got := Text(snap)
	if got != "Ali: hi\n\nBeth: there" {
		t.Errorf("flat text leaked into segment export: %q", got)
	}
}

func TestDisplayNameResolution(t *testing.T) {
	store := transcript.NewStore()
	store.Load("Interview", []transcript.Segment{
		{SpeakerID: "A", Text: "hi", Start: 0, End: 1},
		{SpeakerID: "B", Text: "yo", Start: 1, End: 2},
	}, "")
	store.RenameSpeaker("A", "") // cleared on purpose

	got := Text(store.Snapshot())
	// cleared alias renders an empty label, unaliased falls back to the id
	want := ": hi\n\nB: yo"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender(t *testing.T) {
	snap := aliasedSnapshot()

	txt, err := Render(snap, FormatTXT)
	if err != nil {
		t.Fatalf("txt render failed: %v", err)
	}
	if txt != Text(snap) {
		t.Error("Render(txt) disagrees with Text")
	}

	srt, err := Render(snap, FormatSRT)
	if err != nil {
		t.Fatalf("srt render failed: %v", err)
	}
	wantSRT, _ := SRT(snap)
	if srt != wantSRT {
		t.Error("Render(srt) disagrees with SRT")
	}

	if _, err := Render(snap, Format("vtt")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"txt", FormatTXT, false},
		{"TXT", FormatTXT, false},
		{" srt ", FormatSRT, false},
		{"vtt", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("Interview", FormatTXT); got != "Interview.txt" {
		t.Errorf("got %q, want Interview.txt", got)
	}
	if got := Filename("Interview", FormatSRT); got != "Interview.srt" {
		t.Errorf("got %q, want Interview.srt", got)
	}
}
