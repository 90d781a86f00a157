package cli

import (
	"fmt"
	"io"
	"log"
	"os"
)

// RedirectLog points the standard logger away from the terminal. With a
// path, logs are appended to that file; without one they are discarded.
// Call it before the screen takes over stdout/stderr. The returned func
// closes the log file, if any.
func RedirectLog(path string) (func() error, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return f.Close, nil
}
