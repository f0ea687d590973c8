package printer

import (
	"fmt"
	"time"
)

var relativeUnits = []struct {
	size time.Duration
	name string
}{
	{24 * time.Hour, "day"},
	{time.Hour, "hour"},
	{time.Minute, "minute"},
	{time.Second, "second"},
}

// TimeAgo returns how long ago t happened relative to the current time.
func TimeAgo(t time.Time) string {
	return RelativeTime(time.Now(), t)
}

// RelativeTime returns a human readable distance from t to now, for example
// "just now", "3 minutes ago" or "2 days ago".
func RelativeTime(now, t time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		return "in the future"
	}

	for _, u := range relativeUnits {
		n := int(diff / u.size)
		if n < 1 {
			continue
		}
		if n == 1 {
			return fmt.Sprintf("1 %s ago", u.name)
		}
		return fmt.Sprintf("%d %ss ago", n, u.name)
	}

	return "just now"
}

// FormatTimestamp returns a formatted timestamp string in UTC.
// Format: "2006-01-02 15:04:05 UTC".
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05 UTC")
}

// FormatDate returns the short local date used on task listings.
func FormatDate(t time.Time) string {
	return t.Local().Format("Jan 2, 2006")
}
