package usecase

import (
	"fmt"
	"time"
)

// FormatActionDate renders a modal action date as "17 June 2025".
func FormatActionDate(t time.Time) string {
	return t.Format("2 January 2006")
}

// FormatFeedTime renders a feed timestamp with a relative day label:
// "Today, 3:04 PM", "Yesterday, 3:04 PM", else "Jun 17, 2025, 3:04 PM".
func FormatFeedTime(t, now time.Time) string {
	day := t.Format("Jan 2, 2006")
	if sameDay(t, now) {
		day = "Today"
	} else if sameDay(t, now.AddDate(0, 0, -1)) {
		day = "Yesterday"
	}
	return fmt.Sprintf("%s, %s", day, t.Format("3:04 PM"))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
