package wasmrelay

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// Output is the compiler's payload for a build that succeeded: the
// generated glue javascript and the compiled wasm module. IndexHTML is
// sent by the compiler but the relay assembles its own page instead.
type Output struct {
	IndexHTML string `bson:"index_html"`
	JS        string `bson:"js"`
	Wasm      []byte `bson:"wasm"`
}

// Response is the compiler's reply. Exactly one of the two fields is
// set: Output for a successful build, CompileError for the compiler's
// own diagnostic text.
type Response struct {
	Output       *Output
	CompileError *string
}

// envelope mirrors the externally tagged BSON layout on the wire: a
// single top-level key names the variant.
type envelope struct {
	Output       *Output `bson:"Output,omitempty"`
	CompileError *string `bson:"CompileError,omitempty"`
}

func NewOutputResponse(indexHTML, js string, wasm []byte) *Response {
	return &Response{Output: &Output{
		IndexHTML: indexHTML,
		JS:        js,
		Wasm:      wasm,
	}}
}

func NewCompileErrorResponse(message string) *Response {
	return &Response{CompileError: &message}
}

func Marshal(r *Response) ([]byte, error) {
	if (r.Output == nil) == (r.CompileError == nil) {
		return nil, fmt.Errorf("response needs exactly one variant set")
	}

	payload, err := bson.Marshal(&envelope{Output: r.Output, CompileError: r.CompileError})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize response: %v", err)
	}

	return payload, nil
}

func Unmarshal(payload []byte) (*Response, error) {
	var e envelope
	if err := bson.Unmarshal(payload, &e); err != nil {
		return nil, fmt.Errorf("failed to deserialize response: %v", err)
	}

	if e.Output != nil && e.CompileError != nil {
		return nil, fmt.Errorf("ambiguous response: both variants are set")
	}
	if e.Output == nil && e.CompileError == nil {
		return nil, fmt.Errorf("response has no known variant")
	}

	return &Response{Output: e.Output, CompileError: e.CompileError}, nil
}
