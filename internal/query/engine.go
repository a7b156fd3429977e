// Package query applies jq select expressions to raw samples before
// inference.
package query

import (
	"fmt"

	"github.com/itchyny/gojq"

	"github.com/typeforge/typeforge/pkg/sample"
)

// Engine compiles and runs jq expressions against decoded sample data.
type Engine struct{}

// NewEngine creates a new query engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Select runs a jq expression against a decoded value and returns the
// first result as the new inference input. Because jq evaluates over
// generic maps, the selected subtree's field order follows sorted keys
// rather than document order; this is deterministic and documented on
// the --select flag.
func (e *Engine) Select(v *sample.Value, expression string) (*sample.Value, error) {
	parsed, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}

	iter := code.Run(sample.ToAny(v))
	for {
		out, ok := iter.Next()
		if !ok {
			break
		}
		if qerr, isErr := out.(error); isErr {
			return nil, fmt.Errorf("jq evaluation: %w", qerr)
		}
		return sample.FromAny(out), nil
	}
	return nil, fmt.Errorf("jq expression %q produced no result", expression)
}
