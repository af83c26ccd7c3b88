package host

import "github.com/gviegas/ofxhost/property"

// addScalar adds a 1-dimensional property and seeds its single cell,
// the common case for a template entry.
func addScalar(s *property.Store, name string, typ property.Type, v property.Value) {
	must(s.Add(name, typ, 1, false))
	must(s.Update(name, 0, v))
}

func addTuple(s *property.Store, name string, typ property.Type, vs ...property.Value) {
	must(s.Add(name, typ, len(vs), false))
	for i, v := range vs {
		must(s.Update(name, i, v))
	}
}

func addSeq(s *property.Store, name string, typ property.Type, vs ...property.Value) {
	must(s.Add(name, typ, property.Variable, false))
	for i, v := range vs {
		must(s.Update(name, i, v))
	}
}

func str(s string) property.Value    { return property.Value{Type: property.String, S: s} }
func i32(i int32) property.Value     { return property.Value{Type: property.Int, I: i} }
func f64(d float64) property.Value   { return property.Value{Type: property.Double, D: d} }
func ptr(p uintptr) property.Value   { return property.Value{Type: property.Pointer, P: p} }

// must panics on a schema violation raised while seeding a built-in
// template: such a violation is a host bug, not a plugin-triggered
// failure (spec.md §4.4 "Malformed schema mismatches are treated as
// host bugs").
func must(err error) {
	if err != nil {
		panic(err)
	}
}

// newHostProps builds the host capability property set (spec.md §6).
func newHostProps(schema *property.Schema) *property.Store {
	s := property.NewStore(schema)
	addScalar(s, property.PropType, property.String, str(property.TypeImageEffectHost))
	addSeq(s, property.ImageEffectHostPropSupportedComponents, property.String,
		str(property.ComponentsRGBA), str(property.ComponentsRGB))
	addSeq(s, property.ImageEffectHostPropSupportedContexts, property.String,
		str(property.ContextFilter), str(property.ContextGeneral))
	addTuple(s, property.PropAPIVersion, property.Int, i32(1), i32(4))
	addScalar(s, property.ImageEffectHostPropNativeOrigin, property.String, str("kOfxImageEffectHostPropNativeOriginBottomLeft"))
	addScalar(s, property.ImageEffectHostPropSupportsTiles, property.Int, i32(1))
	addScalar(s, property.ImageEffectHostPropSupportsMultiResolution, property.Int, i32(1))
	addScalar(s, property.ImageEffectHostPropTemporalClipAccess, property.Int, i32(1))
	addScalar(s, property.ImageEffectHostPropSupportsMultipleClipPARs, property.Int, i32(1))
	addScalar(s, property.ParamHostPropMaxParameters, property.Int, i32(-1))
	addScalar(s, property.ParamHostPropMaxPages, property.Int, i32(-1))
	addScalar(s, property.ImageEffectHostPropMultipleClipDepths, property.Int, i32(0))
	return s
}

// newEffectDescProps builds the property set of a freshly described
// plugin (spec.md §4.2 "effect-descriptor set"), before any context has
// been declared.
func newEffectDescProps(schema *property.Schema, identifier, filePath string) *property.Store {
	s := property.NewStore(schema)
	addScalar(s, property.PropType, property.String, str(property.TypeImageEffect))
	addScalar(s, property.PropName, property.String, str(identifier))
	addScalar(s, property.PropLabel, property.String, str(identifier))
	addScalar(s, property.PropShortLabel, property.String, str(identifier))
	addScalar(s, property.PropLongLabel, property.String, str(identifier))
	addScalar(s, property.ImageEffectPluginPropGrouping, property.String, str(""))
	addScalar(s, property.PropFilePath, property.String, str(filePath))
	addScalar(s, property.ImageEffectPluginPropSingleInstance, property.Int, i32(0))
	must(s.Add(property.ImageEffectPropSupportedContexts, property.String, property.Variable, false))
	must(s.Add(property.ImageEffectPropSupportedPixelDepths, property.String, property.Variable, false))
	must(s.Update(property.ImageEffectPropSupportedPixelDepths, 0, str(property.PixelDepthByte)))
	return s
}

// newClipDescProps builds a clip descriptor's property set (spec.md
// §4.2 "clip-descriptor set").
func newClipDescProps(schema *property.Schema, name string) *property.Store {
	s := property.NewStore(schema)
	addScalar(s, property.PropType, property.String, str(property.TypeClip))
	addScalar(s, property.PropName, property.String, str(name))
	addScalar(s, property.PropLabel, property.String, str(name))
	addScalar(s, property.ImageClipPropOptional, property.Int, i32(0))
	addScalar(s, property.ImageClipPropIsMask, property.Int, i32(0))
	addSeq(s, property.ImageEffectPropSupportedComponents, property.String, str(property.ComponentsRGBA))
	return s
}

// paramLayout reports the declared Type and dimension of a parameter's
// per-type value properties (spec.md §4.5 table): the layout shared by
// Default/Min/Max/DisplayMin/DisplayMax and by the instance value cell
// group.
func paramLayout(paramType string) (typ property.Type, dim int) {
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

// newParamDescProps builds a parameter descriptor's property set,
// seeded per its declared type (spec.md §4.5).
func newParamDescProps(schema *property.Schema, paramType, scriptName string) *property.Store {
	s := property.NewStore(schema)
	typ, dim := paramLayout(paramType)

	addScalar(s, property.PropType, property.String, str(property.TypeParameter))
	addScalar(s, property.ParamPropType, property.String, str(paramType))
	addScalar(s, property.ParamPropScriptName, property.String, str(scriptName))
	addScalar(s, property.PropName, property.String, str(scriptName))
	addScalar(s, property.PropLabel, property.String, str(scriptName))
	addScalar(s, property.ParamPropHint, property.String, str(""))
	addScalar(s, property.ParamPropSecret, property.Int, i32(0))
	addScalar(s, property.ParamPropEnabled, property.Int, i32(1))
	addScalar(s, property.ParamPropAnimates, property.Int, i32(0))
	addScalar(s, property.ParamPropCanUndo, property.Int, i32(1))

	must(s.Add(property.ParamPropDefault, typ, dim, false))
	for i := 0; i < dim; i++ {
		if typ == property.String {
			must(s.Update(property.ParamPropDefault, i, str("")))
		} else if typ == property.Int {
			must(s.Update(property.ParamPropDefault, i, i32(0)))
		} else {
			must(s.Update(property.ParamPropDefault, i, f64(0)))
		}
	}

	if typ != property.String {
		for _, name := range []string{property.ParamPropMin, property.ParamPropMax, property.ParamPropDisplayMin, property.ParamPropDisplayMax} {
			must(s.Add(name, typ, dim, false))
			for i := 0; i < dim; i++ {
				var v property.Value
				if typ == property.Int {
					v = i32(0)
					if name == property.ParamPropMax || name == property.ParamPropDisplayMax {
						v = i32(1 << 30)
					}
				} else {
					v = f64(0)
					if name == property.ParamPropMax || name == property.ParamPropDisplayMax {
						v = f64(1e300)
					}
				}
				must(s.Update(name, i, v))
			}
		}
	}
	return s
}

// cloneStore copies every property name, its declared type/dimension
// and current values from src into a freshly created Store sharing the
// same schema. Used when an instance's property set is seeded from its
// descriptor's (spec.md §9 "Describe-vs-instance property templates").
func cloneStore(src *property.Store, schema *property.Schema) *property.Store {
	dst := property.NewStore(schema)
	for _, name := range src.Names() {
		typ, _ := src.Type(name)
		n, _ := src.Length(name)
		dim := n
		// Re-derive the declared dimension for Variable properties by
		// checking the schema; fixed-dimension properties keep n.
		if e, ok := schemaLookup(schema, name); ok && e.Dim == property.Variable {
			dim = property.Variable
		}
		must(dst.Add(name, typ, dim, false))
		for i := 0; i < n; i++ {
			v, _ := src.Get(name, i)
			must(dst.Update(name, i, v))
		}
	}
	return dst
}

func schemaLookup(schema *property.Schema, name string) (property.Entry, bool) {
	if schema == nil {
		return property.Entry{}, false
	}
	return schema.Lookup(name)
}

// newImageProps builds the property set of a connected clip image
// (spec.md §4.6).
func newImageProps(schema *property.Schema, w, h int, data uintptr) *property.Store {
	s := property.NewStore(schema)
	addScalar(s, property.PropType, property.String, str(property.TypeImage))
	addScalar(s, property.ImageEffectPropPixelDepth, property.String, str(property.PixelDepthByte))
	addScalar(s, property.ImageEffectPropComponents, property.String, str(property.ComponentsRGBA))
	addScalar(s, property.ImageEffectPropPreMultiplication, property.String, str(property.PreMultUnPreMultiplied))
	addTuple(s, property.ImageEffectPropRenderScale, property.Double, f64(1), f64(1))
	addScalar(s, property.ImageEffectPropPixelAspectRatio, property.Double, f64(1))
	addScalar(s, property.ImagePropData, property.Pointer, ptr(data))
	addTuple(s, property.ImagePropBounds, property.Int, i32(0), i32(0), i32(int32(w)), i32(int32(h)))
	addTuple(s, property.ImageEffectPropRegionOfDefinition, property.Int, i32(0), i32(0), i32(int32(w)), i32(int32(h)))
	addScalar(s, property.ImagePropRowBytes, property.Int, i32(int32(4*w)))
	addScalar(s, property.ImagePropField, property.String, str(property.FieldNone))
	addScalar(s, property.ImagePropUniqueIdentifier, property.String, str(""))
	return s
}
