package byteorder

import "testing"

func TestNativeIsDeterministic(t *testing.T) {
	// Calling twice must agree - this is a property of the host, not of
	// any mutable state.
	if Native() != Native() {
		t.Fatal("Native() is not stable across calls")
	}
}
