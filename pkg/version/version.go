// Package version provides the tool version and DICOM standard edition
// parsing and comparison.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the version of this library and its tools.
const Current = "0.1.0"

// Edition identifies a release of the DICOM standard, such as "2024c".
// The zero value means the edition is not known.
type Edition struct {
	Year   uint16
	Letter byte
}

// ParseEdition parses an edition string of the form YYYYx where x is a
// lowercase letter a-z ("2024c"). The letter is case-insensitive.
func ParseEdition(s string) (Edition, error) {
	s = strings.TrimSpace(s)
	if len(s) != 5 {
		return Edition{}, fmt.Errorf("invalid edition %q: expected YYYYx", s)
	}

	year, err := strconv.ParseUint(s[:4], 10, 16)
	if err != nil || year < 1993 {
		return Edition{}, fmt.Errorf("invalid edition %q: bad year", s)
	}

	letter := s[4]
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	if letter < 'a' || letter > 'z' {
		return Edition{}, fmt.Errorf("invalid edition %q: bad release letter", s)
	}

	return Edition{Year: uint16(year), Letter: letter}, nil
}

// String returns the edition as "YYYYx", or an empty string for the zero
// value.
func (e Edition) String() string {
	if e.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d%c", e.Year, e.Letter)
}

// IsZero reports whether e is the zero Edition.
func (e Edition) IsZero() bool {
	return e.Year == 0 && e.Letter == 0
}

// Compare returns -1, 0 or +1 depending on whether e is older than, equal to
// or newer than other.
func (e Edition) Compare(other Edition) int {
	switch {
	case e.Year < other.Year:
		return -1
	case e.Year > other.Year:
		return 1
	case e.Letter < other.Letter:
		return -1
	case e.Letter > other.Letter:
		return 1
	default:
		return 0
	}
}

// Before reports whether e is older than other.
func (e Edition) Before(other Edition) bool {
	return e.Compare(other) < 0
}
