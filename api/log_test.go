package api_test

import (
	"errors"
	"io"
	"log"
)

var errFake = errors.New("boom")

// captureLog redirects the standard logger to w and returns a restore func.
func captureLog(w io.Writer) func() {
	prev := log.Writer()
	log.SetOutput(w)
	return func() { log.SetOutput(prev) }
}
