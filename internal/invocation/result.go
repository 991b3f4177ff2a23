// Package invocation builds the document printed for a single run.
package invocation

import (
	"encoding/json"

	"github.com/liuzl/greet/internal/greeting"
)

// Result describes one invocation of the tool.
// Field order fixes the key order of the rendered JSON.
type Result struct {
	Message           string   `json:"message"`
	Verbose           bool     `json:"verbose"`
	ArgumentsReceived []string `json:"arguments_received"`
}

// New builds a Result for the resolved name and verbose flag.
// argv is recorded verbatim, program path included.
func New(name string, verbose bool, argv []string) Result {
	return Result{
		Message:           greeting.Hello(name),
		Verbose:           verbose,
		ArgumentsReceived: argv,
	}
}

// Render encodes the result as JSON indented with four spaces.
func (r Result) Render() ([]byte, error) {
	return json.MarshalIndent(r, "", "    ")
}
