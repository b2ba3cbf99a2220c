package do

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ib-77/res/pkg/res"
)

func TestRun_SumOfSteps(t *testing.T) {
	t.Parallel()
	out := Run(func(y *Yielder[int, string]) int {
		a := y.Step(res.Success[int, string](10))
		b := y.Step(res.Success[int, string](20))
		return a + b
	})

	if !out.IsSuccess() || out.Value() != 30 {
		t.Fatalf("expected success with 30, got: %v", out)
	}
}

func TestRun_FailureShortCircuits(t *testing.T) {
	t.Parallel()
	built := 0
	thirdStep := func() res.Result[int, string] {
		built++
		return res.Success[int, string](20)
	}

	out := Run(func(y *Yielder[int, string]) int {
		a := y.Step(res.Success[int, string](10))
		b := y.Step(res.Failure[int, string]("bad"))
		c := y.Step(thirdStep())
		return a + b + c
	})

	if !out.IsFailure() || out.Err() != "bad" {
		t.Fatalf("expected failure 'bad', got: %v", out)
	}
	if built != 0 {
		t.Fatalf("step after failure must never be constructed, got %d builds", built)
	}
}

func TestRun_EmptySourceWrapsReturn(t *testing.T) {
	t.Parallel()
	out := Run(func(y *Yielder[int, string]) string {
		return "done"
	})
	if !out.IsSuccess() || out.Value() != "done" {
		t.Fatalf("expected success 'done', got: %v", out)
	}
}

func TestRun_KeepsFailureTrace(t *testing.T) {
	t.Parallel()
	out := Run(func(y *Yielder[int, error]) int {
		return y.Step(res.Failure[int, error](errors.New("boom")))
	})

	if !out.IsFailure() {
		t.Fatalf("expected failure, got: %v", out)
	}
	if len(out.Trace()) == 0 {
		t.Fatalf("expected the run result to keep the step's trace")
	}
}

func TestRun_SourcePanicPropagates(t *testing.T) {
	t.Parallel()
	defer func() {
		if p := recover(); p != "boom" {
			t.Fatalf("expected source panic to propagate, got: %v", p)
		}
	}()

	Run(func(y *Yielder[int, string]) int {
		_ = y.Step(res.Success[int, string](1))
		panic("boom")
	})
}

func TestWrap_FreshRunPerInvocation(t *testing.T) {
	t.Parallel()
	runs := 0
	wrapped := Wrap(func(y *Yielder[int, string]) int {
		runs++
		return y.Step(res.Success[int, string](runs))
	})

	first := wrapped()
	second := wrapped()
	if !first.IsSuccess() || first.Value() != 1 {
		t.Fatalf("expected first run to see 1, got: %v", first)
	}
	if !second.IsSuccess() || second.Value() != 2 {
		t.Fatalf("expected an independent second run to see 2, got: %v", second)
	}
}

func TestRunCtx_EquivalentSemantics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := RunCtx(ctx, func(ctx context.Context, y *Yielder[int, string]) int {
		a := y.Step(res.Success[int, string](10))
		b := y.Step(res.Success[int, string](20))
		return a + b
	}, func(cause error) string { return cause.Error() })

	if !out.IsSuccess() || out.Value() != 30 {
		t.Fatalf("expected success with 30, got: %v", out)
	}
}

func TestRunCtx_FailureShortCircuits(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	later := 0

	out := RunCtx(ctx, func(ctx context.Context, y *Yielder[int, string]) int {
		v := y.Step(res.Failure[int, string]("bad"))
		later++
		return v
	}, func(cause error) string { return cause.Error() })

	if !out.IsFailure() || out.Err() != "bad" {
		t.Fatalf("expected failure 'bad', got: %v", out)
	}
	if later != 0 {
		t.Fatalf("source must not resume after a failure, got %d resumes", later)
	}
}

func TestRunCtx_Cancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := RunCtx(ctx, func(ctx context.Context, y *Yielder[int, string]) int {
		for {
			y.Step(res.Success[int, string](1))
		}
	}, func(cause error) string { return fmt.Sprintf("canceled: %v", cause) })

	if !out.IsFailure() || out.Err() != "canceled: context canceled" {
		t.Fatalf("expected cancellation failure, got: %v", out)
	}
}

func TestWrapCtx(t *testing.T) {
	t.Parallel()
	wrapped := WrapCtx(func(ctx context.Context, y *Yielder[int, string]) int {
		return y.Step(res.Success[int, string](5)) * 2
	}, func(cause error) string { return cause.Error() })

	out := wrapped(context.Background())
	if !out.IsSuccess() || out.Value() != 10 {
		t.Fatalf("expected success with 10, got: %v", out)
	}
}
