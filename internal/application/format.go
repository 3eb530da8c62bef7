package application

import "time"

// Display formats used in announcement and reminder wording.
const (
	displayDateLayout     = "1/2/2006"
	displayDateTimeLayout = "1/2/2006, 3:04:05 PM"
)

func formatDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

func formatDateTime(t time.Time) string {
	return t.Format(displayDateTimeLayout)
}
