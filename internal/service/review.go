package service

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// looseValue is a review body field that accepts a JSON string, number or
// bool and keeps its text form. null, false, 0 and "" read as empty, which
// the handler treats as missing. Objects and arrays keep their raw text so
// the cast fails later.
type looseValue string

func (v *looseValue) UnmarshalJSON(b []byte) error {
	s := bytes.TrimSpace(b)
	switch {
	case len(s) == 0, bytes.Equal(s, []byte("null")), bytes.Equal(s, []byte("false")):
		*v = ""
	case bytes.Equal(s, []byte("true")):
		*v = "true"
	case s[0] == '"':
		var str string
		if err := json.Unmarshal(s, &str); err != nil {
			return err
		}
		*v = looseValue(str)
	case s[0] == '{' || s[0] == '[':
		*v = looseValue(s)
	default:
		f, err := strconv.ParseFloat(string(s), 64)
		if err != nil {
			return err
		}
		switch {
		case f == 0:
			*v = ""
		case bytes.ContainsAny(s, ".eE"):
			*v = looseValue(strconv.FormatFloat(f, 'f', -1, 64))
		default:
			*v = looseValue(s)
		}
	}
	return nil
}

func (v looseValue) composite() bool {
	s := strings.TrimSpace(string(v))
	return len(s) > 0 && (s[0] == '{' || s[0] == '[') && json.Valid([]byte(s))
}

// reviewRating casts the rating field to a number. Surrounding whitespace is
// ignored and "true" counts as 1.
func reviewRating(v looseValue) (float64, error) {
	s := strings.TrimSpace(string(v))
	if s == "true" {
		return 1, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || v.composite() {
		return 0, fmt.Errorf("review validation failed: rating: cast to number failed for value %q", string(v))
	}
	if f == 0 {
		return 0, fmt.Errorf("review validation failed: rating: %s is less than minimum allowed value (1)", s)
	}
	return f, nil
}

// reviewUserID casts the user id field to a string.
func reviewUserID(v looseValue) (string, error) {
	if v.composite() {
		return "", fmt.Errorf("review validation failed: user_id: cast to string failed for value %s", string(v))
	}
	return string(v), nil
}
