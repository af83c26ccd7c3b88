// Package paramcoerce turns a decoded JSON value into the typed
// property.Value cells a parameter's declared OFX type expects (spec.md
// §4.5, §8 scenario 5). It has no dependency on the host package: the
// caller (paramio) is the one that actually writes the coerced cells
// into a live ParamInstance.
package paramcoerce

import (
	"fmt"

	"github.com/gviegas/ofxhost/property"
)

// Dims mirrors host's unexported paramLayout table (host/templates.go):
// each OFX parameter type has a fixed property.Type and cell count.
// Duplicated here rather than exported from host because paramcoerce
// sits a layer below any live ParamInstance — it coerces raw JSON
// before the host is involved at all.
func Dims(paramType string) (typ property.Type, dim int) {
	switch paramType {
	case property.ParamTypeInteger, property.ParamTypeBoolean, property.ParamTypeChoice, property.ParamTypePushButton:
		return property.Int, 1
	case property.ParamTypeDouble:
		return property.Double, 1
	case property.ParamTypeInteger2D:
		return property.Int, 2
	case property.ParamTypeInteger3D:
		return property.Int, 3
	case property.ParamTypeDouble2D:
		return property.Double, 2
	case property.ParamTypeDouble3D:
		return property.Double, 3
	case property.ParamTypeRGB:
		return property.Double, 3
	case property.ParamTypeRGBA:
		return property.Double, 4
	case property.ParamTypeString, property.ParamTypeCustom:
		return property.String, 1
	default:
		return property.Int, 1
	}
}

// Coerce turns raw (as produced by encoding/json decoding into
// interface{} — a scalar or a []interface{}) into the []property.Value
// cell group paramType expects. A bare scalar is accepted for a
// 1-dimensional parameter; anything wider must be a JSON array of
// exactly that length ({"gain": 0.5} for a Double, [1,2,3,4] for an
// RGBA's four doubles).
func Coerce(paramType string, raw interface{}) ([]property.Value, error) {
	typ, dim := Dims(paramType)
	var elems []interface{}
	if arr, ok := raw.([]interface{}); ok {
		elems = arr
	} else {
		elems = []interface{}{raw}
	}
	if len(elems) != dim {
		return nil, fmt.Errorf("paramcoerce: %s expects %d value(s), got %d", paramType, dim, len(elems))
	}
	vs := make([]property.Value, dim)
	for i, e := range elems {
		v, err := coerceOne(typ, e)
		if err != nil {
			return nil, fmt.Errorf("paramcoerce: %s[%d]: %w", paramType, i, err)
		}
		vs[i] = v
	}
	return vs, nil
}

func coerceOne(typ property.Type, e interface{}) (property.Value, error) {
	switch typ {
	case property.Int:
		switch n := e.(type) {
		case float64:
			return property.Value{Type: property.Int, I: int32(n)}, nil
		case bool:
			if n {
				return property.Value{Type: property.Int, I: 1}, nil
			}
			return property.Value{Type: property.Int, I: 0}, nil
		}
	case property.Double:
		if n, ok := e.(float64); ok {
			return property.Value{Type: property.Double, D: n}, nil
		}
	case property.String:
		if s, ok := e.(string); ok {
			return property.Value{Type: property.String, S: s}, nil
		}
	}
	return property.Value{}, fmt.Errorf("cannot coerce %T as %s", e, typ)
}
