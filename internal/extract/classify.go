package extract

import "regexp"

var (
	fractionalPattern = regexp.MustCompile(`^\d+\.\d+$`)
	integerPattern    = regexp.MustCompile(`^\d+$`)
	isoDatePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
)

// IsNumericLike reports whether a song candidate is empty or looks like a
// number, a spreadsheet date serial, or an ISO timestamp.
func IsNumericLike(value string) bool {
	switch {
	case value == "":
		return true
	case fractionalPattern.MatchString(value):
		return true
	case integerPattern.MatchString(value):
		return true
	case isoDatePattern.MatchString(value):
		return true
	}
	return false
}
