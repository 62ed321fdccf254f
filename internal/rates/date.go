package rates

import (
	"math"
	"strings"
	"time"
)

const displayDateLayout = "02-01-2006"

// maxEpochMillis bounds numeric dates to the range a browser Date accepts.
const maxEpochMillis = 8.64e15

// Layouts carrying their own zone; the parsed instant is converted to the
// display location.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.UnixDate,
}

// Layouts without a zone are read as wall-clock values in the display location.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
	"2006/01/02",
	"01/02/2006",
	time.ANSIC,
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"Mon Jan 2 2006",
}

// FormatDisplayDate formats t as DD-MM-YYYY.
func FormatDisplayDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

// DateText is the full text of the date element for t.
func DateText(t time.Time) string {
	return DatePrefix + FormatDisplayDate(t)
}

// ParseBoardDate interprets a rate_board_date value. Strings are tried
// against common date layouts; numbers are epoch milliseconds within
// ±8.64e15. Empty and zero values are treated as absent.
func ParseBoardDate(v any, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	switch x := v.(type) {
	case string:
		return parseDateString(strings.TrimSpace(x), loc)
	case float64:
		if x == 0 || math.IsNaN(x) || math.Abs(x) > maxEpochMillis {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(x)).In(loc), true
	default:
		return time.Time{}, false
	}
}

func parseDateString(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc), true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
