package hours

import (
	"testing"
	"time"

	errs "libcal-hours-export/pkg/errors"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	tm, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		t.Fatalf("bad test time %q: %v", value, err)
	}
	return tm
}

func TestExtractWindow_Structured(t *testing.T) {
	w, err := ExtractWindow("2024-01-10", "9:00am", "5:00pm", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !w.Open.Equal(mustTime(t, "2024-01-10 09:00")) {
		t.Fatalf("open = %v", w.Open)
	}
	if !w.Close.Equal(mustTime(t, "2024-01-10 17:00")) {
		t.Fatalf("close = %v", w.Close)
	}
}

func TestExtractWindow_StructuredBareHours(t *testing.T) {
	w, err := ExtractWindow("2024-01-10", "9am", "5pm", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !w.Open.Equal(mustTime(t, "2024-01-10 09:00")) || !w.Close.Equal(mustTime(t, "2024-01-10 17:00")) {
		t.Fatalf("window = %v - %v", w.Open, w.Close)
	}
}

func TestExtractWindow_MidnightRollover(t *testing.T) {
	w, err := ExtractWindow("2024-01-10", "10:00pm", "12:00AM", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !w.Close.Equal(mustTime(t, "2024-01-11 00:00")) {
		t.Fatalf("close = %v, want midnight on the next day", w.Close)
	}
	if !w.Close.After(w.Open) {
		t.Fatalf("close %v not after open %v", w.Close, w.Open)
	}
}

func TestExtractWindow_BareMidnightRollover(t *testing.T) {
	w, err := ExtractWindow("2024-01-10", "10:00pm", "12am", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !w.Close.Equal(mustTime(t, "2024-01-11 00:00")) {
		t.Fatalf("close = %v, want midnight on the next day", w.Close)
	}
	if n := Normalize(w); n.MinutesOpen != 120 {
		t.Fatalf("minutes = %d, want 120", n.MinutesOpen)
	}
}

func TestExtractWindow_CloseBeforeOpen(t *testing.T) {
	_, err := ExtractWindow("2024-01-10", "9:00pm", "1:00am", "")
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !errs.Is(err, errs.ErrExtraction) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
}

func TestExtractWindow_TextCloseBeforeOpen(t *testing.T) {
	_, err := ExtractWindow("2024-01-10", "", "", "Open 9pm - 1am")
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !errs.Is(err, errs.ErrExtraction) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
}

func TestExtractWindow_MidnightRolloverCaseInsensitive(t *testing.T) {
	w, err := ExtractWindow("2024-01-10", "10:00pm", "12:00am", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !w.Close.Equal(mustTime(t, "2024-01-11 00:00")) {
		t.Fatalf("close = %v, want midnight on the next day", w.Close)
	}
}

func TestExtractWindow_FromText(t *testing.T) {
	cases := []string{
		"Open 9am - 5pm",
		"Open 9am-5pm",
		"Open 9am – 5pm", // en-dash
		"9:00am - 5:00pm",
		"Building hours 9AM - 5PM, ask at desk",
	}
	want := Window{Open: mustTime(t, "2024-01-10 09:00"), Close: mustTime(t, "2024-01-10 17:00")}
	for _, text := range cases {
		w, err := ExtractWindow("2024-01-10", "", "", text)
		if err != nil {
			t.Fatalf("ExtractWindow(%q): unexpected error: %v", text, err)
		}
		if !w.Open.Equal(want.Open) || !w.Close.Equal(want.Close) {
			t.Fatalf("ExtractWindow(%q) = %v - %v, want %v - %v",
				text, w.Open, w.Close, want.Open, want.Close)
		}
	}
}

func TestExtractWindow_TextMidnightRollover(t *testing.T) {
	w, err := ExtractWindow("2024-01-10", "", "", "10pm - 12am")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !w.Close.Equal(mustTime(t, "2024-01-11 00:00")) {
		t.Fatalf("close = %v, want midnight on the next day", w.Close)
	}
}

func TestExtractWindow_TextNoMatch(t *testing.T) {
	_, err := ExtractWindow("2024-01-10", "", "", "By appointment")
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !errs.Is(err, errs.ErrExtraction) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
}

func TestExtractWindow_NothingToExtract(t *testing.T) {
	_, err := ExtractWindow("2024-01-10", "", "", "")
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !errs.Is(err, errs.ErrExtraction) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
}

func TestExtractWindow_BadStructuredTime(t *testing.T) {
	_, err := ExtractWindow("2024-01-10", "soonish", "5pm", "")
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !errs.Is(err, errs.ErrExtraction) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
}
