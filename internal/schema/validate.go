package schema

import (
	"encoding/json"
	"fmt"

	santhosh "github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/typeforge/typeforge/pkg/infer"
	"github.com/typeforge/typeforge/pkg/sample"
)

// CheckResult reports a round-trip validation of an exported schema
// against the sample it was inferred from.
type CheckResult struct {
	Valid   bool     `json:"valid"`
	Errors  []string `json:"errors,omitempty"`
	Summary string   `json:"summary"`
}

// CheckRoundTrip exports the result's schema, compiles it, and
// validates the originating sample against it. A failure indicates an
// export bug or a sample the inference simplifications cannot describe;
// it is reported, never fatal.
func CheckRoundTrip(res *infer.Result, v *sample.Value) (*CheckResult, error) {
	compiled, err := compile(res)
	if err != nil {
		return nil, err
	}

	printer := message.NewPrinter(language.English)
	out := &CheckResult{Valid: true}

	if err := compiled.Validate(sample.ToAny(v)); err != nil {
		out.Valid = false
		if verr, ok := err.(*santhosh.ValidationError); ok {
			for _, cause := range flatten(verr) {
				out.Errors = append(out.Errors, cause.Error())
			}
		} else {
			out.Errors = append(out.Errors, err.Error())
		}
	}

	out.Summary = printer.Sprintf("%d type(s) checked, %d validation error(s)",
		len(res.Types), len(out.Errors))
	return out, nil
}

// compile turns the exported schema into a santhosh-tekuri validator.
// The invopop document round-trips through JSON because the compiler
// wants plain decoded values, not library structs.
func compile(res *infer.Result) (*santhosh.Schema, error) {
	doc := Export(res)

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling exported schema: %w", err)
	}
	var schemaValue any
	if err := json.Unmarshal(raw, &schemaValue); err != nil {
		return nil, fmt.Errorf("unmarshaling exported schema: %w", err)
	}

	compiler := santhosh.NewCompiler()
	if err := compiler.AddResource("catalog.json", schemaValue); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	compiled, err := compiler.Compile("catalog.json")
	if err != nil {
		return nil, fmt.Errorf("compiling exported schema: %w", err)
	}
	return compiled, nil
}

func flatten(err *santhosh.ValidationError) []*santhosh.ValidationError {
	if len(err.Causes) == 0 {
		return []*santhosh.ValidationError{err}
	}
	var out []*santhosh.ValidationError
	for _, cause := range err.Causes {
		out = append(out, flatten(cause)...)
	}
	return out
}
