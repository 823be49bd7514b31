package hours

import (
	"regexp"
	"strconv"
	"strings"

	errs "libcal-hours-export/pkg/errors"
)

// 9am, 9:30am, 5:30pm — hour 1-12, optional minutes, am/pm suffix
var clockToken = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)$`)

// TimeOfDay is a naive 24-hour clock time.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseClockToken parses a compact 12-hour token ("9am", "5:30pm",
// case-insensitive) into a 24-hour TimeOfDay. Minutes default to 0 when
// absent. Noon and midnight follow clock convention: 12pm is 12:00 and
// 12am is 00:00.
func ParseClockToken(token string) (TimeOfDay, error) {
	s := strings.ToLower(strings.TrimSpace(token))

	m := clockToken.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, errs.NewParse("hours.ParseClockToken", "not a 12-hour clock token", token)
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return TimeOfDay{}, errs.NewParse("hours.ParseClockToken", "hour out of range for 12-hour clock", token)
	}

	minute := 0
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil || minute > 59 {
			return TimeOfDay{}, errs.NewParse("hours.ParseClockToken", "minute out of range", token)
		}
	}

	switch m[3] {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}
