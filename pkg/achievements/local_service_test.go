package achievements

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openTestGdata(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")
	m, err := gdata.Open(gdata.Config{AppName: "blankisland_achievements_test"})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	return m
}

func TestLocalServiceUnlockIsIdempotent(t *testing.T) {
	m := openTestGdata(t)
	svc := NewLocalService(m)

	if err := svc.Unlock("Rune1Found"); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if err := svc.Unlock("Rune1Found"); err != nil {
		t.Fatalf("second Unlock: %v", err)
	}
	if err := svc.Unlock("Rune2Found"); err != nil {
		t.Fatalf("Unlock Rune2Found: %v", err)
	}

	got := svc.Unlocked()
	if len(got) != 2 || got[0] != "Rune1Found" || got[1] != "Rune2Found" {
		t.Errorf("Unlocked = %v", got)
	}
}

func TestLocalServicePersists(t *testing.T) {
	m := openTestGdata(t)
	if err := NewLocalService(m).Unlock("Rune1Found"); err != nil {
		t.Fatalf("Unlock: %v", err)
	}

	reloaded := NewLocalService(m)
	if !reloaded.IsUnlocked("Rune1Found") {
		t.Error("unlock should survive a reload")
	}
	if reloaded.IsUnlocked("Rune2Found") {
		t.Error("unexpected unlock")
	}
}

func TestLocalServiceEmptyID(t *testing.T) {
	m := openTestGdata(t)
	if err := NewLocalService(m).Unlock(""); err != ErrEmptyID {
		t.Errorf("Unlock(\"\") = %v, want ErrEmptyID", err)
	}
}

func TestLocalServiceCorruptRecord(t *testing.T) {
	m := openTestGdata(t)
	if err := m.SaveObjectProp(achievementsObject, unlockedProp, []byte("{not yaml")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	svc := NewLocalService(m)
	if len(svc.Unlocked()) != 0 {
		t.Error("corrupt record should start empty")
	}
	if err := svc.Unlock("Rune1Found"); err != nil {
		t.Errorf("Unlock after corrupt record: %v", err)
	}
}

func TestNewServiceLocalWithStorage(t *testing.T) {
	m := openTestGdata(t)
	if _, ok := NewService("local", m).(*LocalService); !ok {
		t.Error("local with storage should be a LocalService")
	}
}
