package api

//go:generate go tool oapi-codegen -config cfg.yaml openapi.yaml

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// UserID is the caller-supplied owner of a mood log or journal entry.
// Clients send it either as a JSON number or as a numeric string; anything
// that does not coerce to a strictly positive integer decodes to zero so the
// handler can reject it with a 400 instead of failing the whole body.
type UserID uint

// Valid reports whether the decoded value is a usable user id.
func (id *UserID) Valid() bool {
	return id != nil && *id > 0
}

// Uint returns the id as the type used by the domain entities.
func (id *UserID) Uint() uint {
	if id == nil {
		return 0
	}
	return uint(*id)
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *UserID) UnmarshalJSON(data []byte) error {
	*id = 0

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	var raw string
	switch data[0] {
	case '"':
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
		raw = strings.TrimSpace(raw)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		raw = string(data)
	default:
		// null, booleans, arrays and objects never name a user
		return nil
	}

	*id = parseUserID(raw)
	return nil
}

func parseUserID(raw string) UserID {
	if raw == "" {
		return 0
	}
	if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
		if n > math.MaxInt64 {
			return 0
		}
		return UserID(n)
	}
	// 1.0 and 1e2 are integral numbers too
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f <= 0 || f != math.Trunc(f) || f >= math.MaxInt64 {
		return 0
	}
	return UserID(f)
}
