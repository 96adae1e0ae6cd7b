package utils

import "strconv"

// ConvertToInt parses s as a base-10 integer, returning 0 when parsing fails.
// Intended for optional numeric query parameters.
func ConvertToInt(s string) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return value
}
