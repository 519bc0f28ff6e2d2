package repository

import "time"

const dateLayout = "2006-01-02"

// parseTime parses an RFC3339 column, returning the zero time on bad input.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
