package res

import (
	"context"
	"errors"
	"testing"
)

func TestIsNil(t *testing.T) {
	t.Parallel()
	if !IsNil(nil) {
		t.Fatalf("expected nil to be nil")
	}

	var p *int
	if !IsNil(p) {
		t.Fatalf("expected typed nil pointer to be nil")
	}
	if IsNil(5) || IsNil("") {
		t.Fatalf("expected values not to be nil")
	}
}

func TestAsError(t *testing.T) {
	t.Parallel()
	if _, ok := AsError("not an error"); ok {
		t.Fatalf("expected a plain string not to be an error")
	}
	if _, ok := AsError(nil); ok {
		t.Fatalf("expected nil not to be an error")
	}

	err, ok := AsError(errors.New("boom"))
	if !ok || err.Error() != "boom" {
		t.Fatalf("expected error 'boom', got: %v, %v", err, ok)
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()
	if errs := GetErrors(nil); len(errs) != 0 {
		t.Fatalf("expected no errors from nil, got: %v", errs)
	}

	single := errors.New("one")
	if errs := GetErrors(single); len(errs) != 1 || errs[0] != single {
		t.Fatalf("expected the single error back, got: %v", errs)
	}

	joined := errors.Join(errors.New("one"), errors.New("two"))
	if errs := GetErrors(joined); len(errs) != 2 {
		t.Fatalf("expected both joined errors, got: %v", errs)
	}
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()
	if !IsCancellationError(context.Canceled) || !IsCancellationError(context.DeadlineExceeded) {
		t.Fatalf("expected context errors to count as cancellation")
	}
	if IsCancellationError(errors.New("boom")) {
		t.Fatalf("expected an ordinary error not to count as cancellation")
	}
}

func TestUnwrapErrorTrace(t *testing.T) {
	t.Parallel()
	f := Failure[int, error](errors.New("boom"))

	defer func() {
		p := recover()
		ue, ok := p.(*UnwrapError)
		if !ok {
			t.Fatalf("expected *UnwrapError panic, got: %v", p)
		}
		if len(ue.Trace()) == 0 {
			t.Fatalf("expected the signal to expose the failure's trace")
		}
	}()

	_ = f.Unwrap()
}
