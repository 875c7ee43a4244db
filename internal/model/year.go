package model

import (
	"errors"
	"strconv"
)

// ErrInvalidYearFormat is returned when a year value is neither a JSON
// string nor a bare number.
var ErrInvalidYearFormat = errors.New("invalid year format")

// Year is a release year kept as an opaque string. Existing JSON documents
// may hold the year as either a string ("2009") or a bare number (2009),
// so the decoder accepts both; it always re-encodes as a string.
type Year string

func (y Year) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(y))), nil
}

func (y *Year) UnmarshalJSON(jsonValue []byte) error {
	if unquoted, err := strconv.Unquote(string(jsonValue)); err == nil {
		*y = Year(unquoted)
		return nil
	}

	// Not a quoted string; only a bare number is acceptable.
	if _, err := strconv.ParseFloat(string(jsonValue), 64); err != nil {
		return ErrInvalidYearFormat
	}
	*y = Year(jsonValue)
	return nil
}
