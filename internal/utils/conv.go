package utils

import (
	"strconv"
)

const (
	defaultLimit = 30
	maxLimit     = 100
)

// ParseLimitOffset reads raw limit/offset query values, applying the
// default page size and cap. Bad or missing values fall back silently.
func ParseLimitOffset(limitStr, offsetStr string) (limit, offset int) {
	limit = defaultLimit
	if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
		limit = n
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if n, err := strconv.Atoi(offsetStr); err == nil && n > 0 {
		offset = n
	}
	return limit, offset
}
