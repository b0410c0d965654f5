//go:build !mobile

package utils

import "os"

// IsMobile reports whether the game runs on a phone or tablet. Desktop
// builds return false unless BLANKISLAND_MOBILE_EMULATE=1 is set, which
// forces the mobile behavior for local debugging.
func IsMobile() bool {
	return os.Getenv("BLANKISLAND_MOBILE_EMULATE") == "1"
}
