// Package json renders results as indented JSON for scripts and editors.
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/swt/pkg/errors"
)

// Renderer writes one JSON document per call
type Renderer struct {
	encoder *json.Encoder
}

// errorDocument is the shape of a rendered error. Code and details are only
// present for coded errors.
type errorDocument struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// New creates a JSON renderer on output
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return &Renderer{encoder: encoder}, nil
}

// RenderResult encodes a display model as is
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// RenderError encodes err with its swt error code and details
func (r *Renderer) RenderError(err error) error {
	doc := errorDocument{Error: err.Error()}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		doc.Code = string(code)
		doc.Details = errors.GetErrorDetails(err)
	}
	return r.encoder.Encode(doc)
}

// RenderMessage encodes a bare status message
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
