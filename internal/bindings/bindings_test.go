package bindings

import (
	"errors"
	"testing"
)

func TestStubsReportUnavailable(t *testing.T) {
	if Linked() {
		t.Skip("native library linked")
	}
	if _, err := Open(Config{}); !errors.Is(err, ErrNotBuilt) && !errors.Is(err, ErrCGONotEnabled) {
		t.Fatalf("unexpected error from Open: %v", err)
	}
	if _, _, err := Call(1, "decrypt", []byte{1}); !errors.Is(err, ErrNotBuilt) && !errors.Is(err, ErrCGONotEnabled) {
		t.Fatalf("unexpected error from Call: %v", err)
	}
}
