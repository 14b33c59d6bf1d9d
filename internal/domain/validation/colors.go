package validation

import "regexp"

// Accepts both short (#abc) and long (#aabbcc) hex forms.
var hexColorRE = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}
