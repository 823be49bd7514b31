package hours

import (
	"testing"

	errs "libcal-hours-export/pkg/errors"
)

func TestParseClockToken_ValidTokens(t *testing.T) {
	cases := []struct {
		token  string
		hour   int
		minute int
	}{
		{"9am", 9, 0},
		{"9:00am", 9, 0},
		{"09:00am", 9, 0},
		{"9:30am", 9, 30},
		{"5pm", 17, 0},
		{"5:30pm", 17, 30},
		{"05:07pm", 17, 7},
		{"11:59pm", 23, 59},
		{"1am", 1, 0},
		{"12:59AM", 0, 59},
		{"9AM", 9, 0},
		{"5:30PM", 17, 30},
		{"9 am", 9, 0},
		{" 9am ", 9, 0},
	}
	for _, c := range cases {
		got, err := ParseClockToken(c.token)
		if err != nil {
			t.Fatalf("ParseClockToken(%q): unexpected error: %v", c.token, err)
		}
		if got.Hour != c.hour || got.Minute != c.minute {
			t.Fatalf("ParseClockToken(%q) = %02d:%02d, want %02d:%02d",
				c.token, got.Hour, got.Minute, c.hour, c.minute)
		}
	}
}

// The upstream feed writes midnight as "12:00AM" and noon as "12pm"; on a
// 24-hour clock those are 00:00 and 12:00. The naive add-12-to-pm rule would
// produce hour 24 for noon, which is wrong, so both boundaries get explicit
// coverage here.
func TestParseClockToken_NoonAndMidnight(t *testing.T) {
	noon, err := ParseClockToken("12pm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if noon.Hour != 12 || noon.Minute != 0 {
		t.Fatalf("12pm = %02d:%02d, want 12:00", noon.Hour, noon.Minute)
	}

	midnight, err := ParseClockToken("12am")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if midnight.Hour != 0 || midnight.Minute != 0 {
		t.Fatalf("12am = %02d:%02d, want 00:00", midnight.Hour, midnight.Minute)
	}
}

func TestParseClockToken_Invalid(t *testing.T) {
	cases := []string{
		"",
		"9",
		"9:30",
		"13pm",
		"0am",
		"9:75am",
		"9:5am",
		"abcam",
		"am",
		"9am-5pm",
		"24:00",
	}
	for _, token := range cases {
		if _, err := ParseClockToken(token); err == nil {
			t.Fatalf("ParseClockToken(%q): expected error, got none", token)
		} else if !errs.Is(err, errs.ErrParse) {
			t.Fatalf("ParseClockToken(%q): expected ParseError, got %v", token, err)
		}
	}
}
