package downloads

import "fmt"

// HTTPStatusError reports a non-2xx response on a direct download.
type HTTPStatusError struct {
	Code   int
	Status string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Status)
}

// ExternalProcessError reports a non-zero exit from the remux process,
// carrying the retained diagnostic tail.
type ExternalProcessError struct {
	Bin      string
	ExitCode int
	Tail     string
}

func (e *ExternalProcessError) Error() string {
	return fmt.Sprintf("%s failed (code %d): %s", e.Bin, e.ExitCode, e.Tail)
}
