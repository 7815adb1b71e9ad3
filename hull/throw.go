package hull

import "github.com/pkg/errors"

// Threading error returns through the recursive build would add a lot of
// complexity for conditions that are either caller mistakes or internal bugs.
// Instead, the build panics, and the public API recovers to convert to an
// error.

type BuildError error

// Panic with a BuildError.
func fatalf(format string, args ...interface{}) {
	panic(BuildError(errors.Errorf(format, args...)))
}

func HandleBuildPanicRecover(r interface{}) error {
	if r != nil {
		if buildError, ok := r.(BuildError); ok {
			return buildError
		}
		panic(r)
	}
	return nil
}
