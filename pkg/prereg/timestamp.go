package prereg

import (
	"fmt"
	"time"
)

// kst is used when the host has no zoneinfo for Asia/Seoul (e.g. wasm).
var kst = time.FixedZone("KST", 9*60*60)

// SeoulLocation returns Asia/Seoul, falling back to a fixed +09:00 zone.
func SeoulLocation() *time.Location {
	if loc, err := time.LoadLocation("Asia/Seoul"); err == nil {
		return loc
	}
	return kst
}

// FormatTimestamp renders t in Seoul time the way Korean-locale browsers
// print dates, e.g. "2026. 10. 16. 오후 8:16:00".
func FormatTimestamp(t time.Time) string {
	t = t.In(SeoulLocation())

	meridiem := "오전"
	hour := t.Hour()
	if hour >= 12 {
		meridiem = "오후"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d. %d. %d. %s %d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), meridiem, hour, t.Minute(), t.Second())
}
