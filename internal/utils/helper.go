package utils

import "strconv"

// ParseID converts a path parameter into a database id. Any non-integer
// input is the caller's 400, never a lookup.
func ParseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
