package utils

import (
	"net/url"
	"strconv"
	"strings"

	"gearguard/pkg/types"
)

const (
	DefaultLimit = 200
	MaxLimit     = 500
)

// ParseFilterFromQuery extracts pagination and the whitelisted filter keys
// from a list request. Enum values are normalized to upper case so they match
// the stored enum labels.
func ParseFilterFromQuery(values url.Values, filterKeys ...string) types.Filter {
	filter := types.Filter{
		Filter: make(map[string]interface{}),
		Sort:   make(map[string]string),
		Limit:  DefaultLimit,
		Offset: 0,
	}

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			if l > MaxLimit {
				l = MaxLimit
			}
			filter.Limit = l
		}
	}

	if offsetStr := values.Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			filter.Offset = o
		}
	}

	for _, key := range filterKeys {
		if v := values.Get(key); v != "" {
			if isEnumToken(v) {
				v = strings.ToUpper(v)
			}
			filter.Filter[key] = v
		}
	}

	return filter
}

// isEnumToken reports whether v looks like an enum label list (letters and
// underscores only, comma separated). UUID values keep their original case.
func isEnumToken(v string) bool {
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == ',':
		default:
			return false
		}
	}
	return true
}
