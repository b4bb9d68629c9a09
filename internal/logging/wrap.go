package logging

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Operation instruments fn under the operation category. The returned func
// has the same contract as fn: results pass through untouched and a panic
// is logged and then propagates.
func Operation[In, Out any](l *zap.Logger, name string, fn func(In) Out) func(In) Out {
	return wrap(Named(l, CategoryOperation), name, fn)
}

// DMActivity instruments fn under the dm_activity category.
func DMActivity[In, Out any](l *zap.Logger, name string, fn func(In) Out) func(In) Out {
	return wrap(Named(l, CategoryDMActivity), name, fn)
}

// Analysis instruments fn under the analysis category.
func Analysis[In, Out any](l *zap.Logger, name string, fn func(In) Out) func(In) Out {
	return wrap(Named(l, CategoryAnalysis), name, fn)
}

func wrap[In, Out any](l *zap.Logger, name string, fn func(In) Out) func(In) Out {
	return func(in In) Out {
		start := time.Now()
		done := false
		defer func() {
			secs := time.Since(start).Seconds()
			if done {
				l.Info(fmt.Sprintf("%s completed in %.2fs", name, secs), zap.Any("args", in))
				return
			}
			// no recover: the panic keeps unwinding after this line is written
			l.Error(fmt.Sprintf("%s failed after %.2fs", name, secs), zap.Any("args", in))
		}()
		out := fn(in)
		done = true
		return out
	}
}
