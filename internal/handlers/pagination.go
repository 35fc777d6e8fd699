package handlers

import (
	"errors"
	"strconv"
	"strings"
)

const (
	defaultProductLimit int64 = 8
	defaultVendorLimit  int64 = 6
)

var errInvalidLimit = errors.New("limit must be an integer")

// parseLimit falls back to def for an absent or non-positive limit and clamps
// to maxLimit when maxLimit is positive.
func parseLimit(raw string, def, maxLimit int64) (int64, error) {
	raw = strings.TrimSpace(raw)

	limit := def
	if raw != "" {
		l, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, errInvalidLimit
		}
		if l > 0 {
			limit = l
		}
	}

	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return limit, nil
}
