package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Exit codes read by scripts driving the command line
const (
	exitFound    = 0
	exitFailure  = 1
	exitNotFound = 20
)

func main() {
	err := newRootCommand().ExecuteContext(context.Background())

	var notFound notFoundError
	switch {
	case err == nil:
		os.Exit(exitFound)
	case errors.As(err, &notFound):
		os.Exit(exitNotFound)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}

// notFoundError reports an auto-schedule request with no combination under the threshold
type notFoundError struct {
}

func (err notFoundError) Error() string {
	return "no combination of sections is under the overlap threshold"
}
