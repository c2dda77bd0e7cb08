// Package profile wraps fgprof so the demo commands can record a
// wall-clock profile, which includes the time goroutines spend
// blocked on the container locks.
package profile

import (
	"errors"
	"fmt"
	"os"

	"github.com/felixge/fgprof"
)

// Start begins profiling into the file at path. An empty path
// disables profiling and returns a no-op stop function. The
// returned function stops profiling and closes the file.
func Start(path string) (func() error, error) {
	if path == "" {
		return func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	stop := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		return errors.Join(stop(), f.Close())
	}, nil
}
