package hours

import (
	"testing"
	"time"
)

func TestNormalize_RegularDay(t *testing.T) {
	w := Window{Open: mustTime(t, "2024-01-10 09:00"), Close: mustTime(t, "2024-01-10 17:00")}
	n := Normalize(w)
	if n.MinutesOpen != 480 {
		t.Fatalf("minutes = %d, want 480", n.MinutesOpen)
	}
	if n.OpenTime != "09:00AM" || n.CloseTime != "05:00PM" {
		t.Fatalf("formatted = %q - %q, want 09:00AM - 05:00PM", n.OpenTime, n.CloseTime)
	}
}

func TestNormalize_AcrossMidnight(t *testing.T) {
	w := Window{Open: mustTime(t, "2024-01-10 22:00"), Close: mustTime(t, "2024-01-11 00:00")}
	n := Normalize(w)
	if n.MinutesOpen != 120 {
		t.Fatalf("minutes = %d, want 120", n.MinutesOpen)
	}
	if n.CloseTime != "12:00AM" {
		t.Fatalf("close = %q, want 12:00AM", n.CloseTime)
	}
}

func TestNormalize_ZeroWidthWindow(t *testing.T) {
	at := mustTime(t, "2024-01-10 09:00")
	n := Normalize(Window{Open: at, Close: at})
	if n.MinutesOpen != 0 {
		t.Fatalf("minutes = %d, want 0", n.MinutesOpen)
	}
}

func TestNormalize_RoundsToNearestMinute(t *testing.T) {
	open := mustTime(t, "2024-01-10 09:00")
	n := Normalize(Window{Open: open, Close: open.Add(90*time.Minute + 31*time.Second)})
	if n.MinutesOpen != 91 {
		t.Fatalf("minutes = %d, want 91", n.MinutesOpen)
	}
}
