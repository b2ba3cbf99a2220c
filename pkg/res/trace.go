package res

import (
	"fmt"
	"runtime"
	"sync"
)

const traceDepth = 64

// stackTrace holds the program counters captured when a failure was built
// around an error payload. Formatting is deferred until the first Trace call
// and cached; re-wrapped failures share the same capture.
type stackTrace struct {
	pcs    []uintptr
	once   sync.Once
	frames []string
}

func captureTrace(payload any) *stackTrace {
	if _, ok := AsError(payload); !ok {
		return nil
	}

	pcs := make([]uintptr, traceDepth)
	// skip runtime.Callers, captureTrace and the Failure constructor
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return nil
	}
	return &stackTrace{pcs: pcs[:n]}
}

func (t *stackTrace) formatted() []string {
	t.once.Do(func() {
		frames := runtime.CallersFrames(t.pcs)
		for {
			f, more := frames.Next()
			t.frames = append(t.frames, fmt.Sprintf("%s\n\t%s:%d", f.Function, f.File, f.Line))
			if !more {
				break
			}
		}
	})
	return t.frames
}
