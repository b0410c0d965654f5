//go:build mobile

package utils

// IsMobile reports whether the game runs on a phone or tablet. Mobile builds
// always return true.
func IsMobile() bool {
	return true
}
