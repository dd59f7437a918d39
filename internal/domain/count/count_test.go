package count

import (
	"errors"
	"testing"
)

func TestFound(t *testing.T) {
	r := Found(12345)
	if r.Outcome() != OutcomeFound {
		t.Fatalf("Outcome() = %q, want %q", r.Outcome(), OutcomeFound)
	}
	v, ok := r.Value()
	if !ok || v != 12345 {
		t.Errorf("Value() = %d, %v", v, ok)
	}
	if r.Err() != nil {
		t.Errorf("Err() = %v, want nil", r.Err())
	}
}

func TestFound_Zero(t *testing.T) {
	v, ok := Found(0).Value()
	if !ok || v != 0 {
		t.Errorf("Value() = %d, %v; zero is a valid count", v, ok)
	}
}

func TestFound_Negative(t *testing.T) {
	r := Found(-1)
	if r.Outcome() != OutcomeFailed {
		t.Fatalf("Outcome() = %q, want %q", r.Outcome(), OutcomeFailed)
	}
	if _, ok := r.Value(); ok {
		t.Error("negative count must not be reported as found")
	}
}

func TestNotFound(t *testing.T) {
	if r := NotFound(nil); r.Outcome() != OutcomeNotFound || r.Err() != nil {
		t.Errorf("NotFound(nil) = %q, %v", r.Outcome(), r.Err())
	}

	reason := errors.New("no file")
	r := NotFound(reason)
	if !errors.Is(r.Err(), reason) {
		t.Errorf("Err() = %v, want %v", r.Err(), reason)
	}
	if _, ok := r.Value(); ok {
		t.Error("NotFound must not carry a value")
	}
}

func TestFailed(t *testing.T) {
	boom := errors.New("boom")
	if r := Failed(boom); !errors.Is(r.Err(), boom) || r.Outcome() != OutcomeFailed {
		t.Errorf("Failed(boom) = %q, %v", r.Outcome(), r.Err())
	}
	if r := Failed(nil); r.Err() == nil {
		t.Error("Failed(nil) should still carry an error")
	}
}
