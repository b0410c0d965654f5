package embedded

import (
	"testing"
	"testing/fstest"
)

func TestReadFileRequiresDataPrefix(t *testing.T) {
	Init(fstest.MapFS{
		"data/game.yaml": &fstest.MapFile{Data: []byte("window: {}\n")},
	})

	data, err := ReadFile("./data/game.yaml")
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "window: {}\n" {
		t.Errorf("unexpected content %q", data)
	}

	if _, err := ReadFile("assets/game.yaml"); err == nil {
		t.Error("expected error for path outside data/")
	}

	if !Exists("data/game.yaml") {
		t.Error("Exists should report the embedded file")
	}
	if Exists("data/missing.yaml") {
		t.Error("Exists should be false for a missing file")
	}
}
