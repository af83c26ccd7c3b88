// Package paramio reads and writes the JSON parameter document that
// drives a filter render (spec.md §6): which bundle/plugin/context to
// load, the parameter values to apply, the output frame size, and the
// per-clip image file paths.
package paramio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gviegas/ofxhost/host"
	"github.com/gviegas/ofxhost/paramcoerce"
	"github.com/gviegas/ofxhost/property"
)

// FrameSize is the output image's pixel dimensions.
type FrameSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ImagePaths splits clip file paths into the clips a render cannot
// proceed without and the ones that may be left unconnected. Required
// values are plain paths; Optional values may be null, meaning "leave
// this clip disconnected".
type ImagePaths struct {
	Required map[string]string  `json:"required"`
	Optional map[string]*string `json:"optional,omitempty"`
}

// Document is the full on-disk parameter file shape.
type Document struct {
	Bundle     string                 `json:"bundle"`
	Plugin     string                 `json:"plugin"`
	Context    string                 `json:"context"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
	FrameSize  FrameSize              `json:"frame_size"`
	ImagePaths ImagePaths             `json:"image_paths"`
}

// Read loads and decodes a Document from path.
func Read(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("paramio: reading %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("paramio: parsing %s: %w", path, err)
	}
	return &doc, nil
}

// Write encodes doc as indented JSON and saves it to path.
func Write(path string, doc *Document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("paramio: encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("paramio: writing %s: %w", path, err)
	}
	return nil
}

// Template builds a Document whose Parameters hold every non-secret
// parameter's default value (spec.md §8 scenario 2: "no parameter with
// Secret=1 appears") and whose ImagePaths list every declared clip,
// Output always required (spec.md §6 convention), any other clip
// required unless the plugin marked it optional.
func Template(ctx *host.Context, bundleName, pluginID string) *Document {
	doc := &Document{
		Bundle:     bundleName,
		Plugin:     pluginID,
		Context:    ctx.Name,
		Parameters: make(map[string]interface{}),
		ImagePaths: ImagePaths{
			Required: make(map[string]string),
			Optional: make(map[string]*string),
		},
	}

	for _, name := range ctx.ParamNames() {
		pd := ctx.Params[name]
		secret, _ := pd.Properties().Get(property.ParamPropSecret, 0)
		if secret.I != 0 {
			continue
		}
		doc.Parameters[name] = defaultValue(pd)
	}

	for _, name := range ctx.ClipNames() {
		cd := ctx.Clips[name]
		optional, _ := cd.Properties().Get(property.ImageClipPropOptional, 0)
		if name != property.ClipOutput && optional.I != 0 {
			doc.ImagePaths.Optional[name] = nil
		} else {
			doc.ImagePaths.Required[name] = ""
		}
	}
	return doc
}

// defaultValue reads pd's declared Default cells and shapes them into a
// JSON-friendly scalar or []interface{}, the inverse of the coercion
// ApplyParameters performs.
func defaultValue(pd *host.ParamDesc) interface{} {
	typ, dim := paramcoerce.Dims(pd.Type)
	vals := make([]interface{}, dim)
	for i := 0; i < dim; i++ {
		v, err := pd.Properties().Get(property.ParamPropDefault, i)
		if err != nil {
			v = property.Value{Type: typ}
		}
		switch typ {
		case property.Int:
			vals[i] = v.I
		case property.Double:
			vals[i] = v.D
		case property.String:
			vals[i] = v.S
		}
	}
	if dim == 1 {
		return vals[0]
	}
	return vals
}

// ApplyParameters coerces doc's Parameters into inst's live parameter
// cells via the ParameterSuite (spec.md §4.5 "load_plugin_parameters").
// Parameters absent from doc keep their instance default; doc naming an
// unknown parameter is an error rather than silently ignored.
func ApplyParameters(h *host.Host, inst *host.Instance, params map[string]interface{}) error {
	for name, raw := range params {
		pi, err := h.ParamHandle(inst, name)
		if err != nil {
			return fmt.Errorf("paramio: %w", err)
		}
		vs, err := paramcoerce.Coerce(pi.Type, raw)
		if err != nil {
			return fmt.Errorf("paramio: parameter %q: %w", name, err)
		}
		tok := h.Token(pi)
		st := h.ParameterSuite().SetValue(tok, vs)
		h.Release(tok)
		if !st.Ok() {
			return fmt.Errorf("paramio: parameter %q: setValue returned %s", name, st)
		}
	}
	return nil
}
