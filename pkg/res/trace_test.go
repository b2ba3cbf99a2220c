package res

import (
	"errors"
	"strings"
	"testing"
)

func TestTrace_CapturedForErrorPayload(t *testing.T) {
	t.Parallel()
	f := Failure[int, error](errors.New("boom"))

	frames := f.Trace()
	if len(frames) == 0 {
		t.Fatalf("expected captured frames for an error payload")
	}

	found := false
	for _, frame := range frames {
		if strings.Contains(frame, "TestTrace_CapturedForErrorPayload") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the constructing frame in the trace, got: %v", frames)
	}
}

func TestTrace_CachedAcrossCalls(t *testing.T) {
	t.Parallel()
	f := Failure[int, error](errors.New("boom"))

	first := f.Trace()
	second := f.Trace()
	if len(first) != len(second) {
		t.Fatalf("expected cached frames, got %d then %d", len(first), len(second))
	}
	if len(first) > 0 && &first[0] != &second[0] {
		t.Fatalf("expected the same cached backing array on repeated access")
	}
}

func TestTrace_AbsentForNonErrorPayload(t *testing.T) {
	t.Parallel()
	if frames := Failure[int, string]("oops").Trace(); frames != nil {
		t.Fatalf("expected nil trace for a non-error payload, got: %v", frames)
	}
	if frames := Success[int, error](1).Trace(); frames != nil {
		t.Fatalf("expected nil trace for a success, got: %v", frames)
	}
}

func TestTrace_SharedByRewrappedFailure(t *testing.T) {
	t.Parallel()
	f := Failure[int, error](errors.New("boom"))
	mapped := Map(f, func(v int) string { return "" })

	if len(mapped.Trace()) == 0 {
		t.Fatalf("expected the rewrapped failure to keep the original trace")
	}
	if mapped.Id() != f.Id() {
		t.Fatalf("expected the rewrapped failure to keep the original id")
	}
}
