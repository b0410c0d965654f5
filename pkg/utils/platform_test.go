//go:build !mobile

package utils

import (
	"image"
	"testing"
)

func TestIsMobileDesktop(t *testing.T) {
	t.Setenv("BLANKISLAND_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}
}

func TestIsMobileEmulated(t *testing.T) {
	t.Setenv("BLANKISLAND_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should honor BLANKISLAND_MOBILE_EMULATE=1")
	}
}

func TestPauseTouchZone(t *testing.T) {
	zone := PauseTouchZone(960)
	if zone != image.Rect(960-PauseTouchSize, 0, 960, PauseTouchSize) {
		t.Errorf("PauseTouchZone = %v", zone)
	}
	if !image.Pt(950, 10).In(zone) || image.Pt(10, 10).In(zone) {
		t.Error("zone should cover the top-right corner only")
	}
}
