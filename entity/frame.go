package entity

import "strings"

// Pagination is the "total:offset:pageSize" trailer segment appended
// after every paginated record list.
type Pagination struct {
	Total    int
	Offset   int
	PageSize int
}

// ParsePagination parses a pagination trailer.
func ParsePagination(s string) Pagination {
	parts := strings.Split(s, ":")
	return Pagination{
		Total:    intAt(parts, 0),
		Offset:   intAt(parts, 1),
		PageSize: intAt(parts, 2),
	}
}

// SplitSegments breaks a response body into its "#"-framed segments
// (record list, pagination trailer, integrity hash, extras).
func SplitSegments(body string) []string {
	return strings.Split(body, "#")
}

// SplitRecords breaks a segment into its "|"-joined records, dropping
// empty entries. The second return value counts the dropped entries;
// leaderboards use it to report vacant rank slots.
func SplitRecords(segment string) ([]string, int) {
	parts := strings.Split(segment, "|")
	out := make([]string, 0, len(parts))
	empty := 0
	for _, p := range parts {
		if p == "" {
			empty++
			continue
		}
		out = append(out, p)
	}
	return out, empty
}
