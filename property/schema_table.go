package property

// DefaultSchema returns the property schema used by the host for every
// Store it creates (spec.md §4.2). It is built once and shared; callers
// must not mutate the returned Schema.
func DefaultSchema() *Schema {
	entries := map[string]Entry{
		PropType:              {Types: []Type{String}, Dim: 1, Allowed: []string{TypeImageEffectHost, TypeImageEffect, TypeImageEffectInstance, TypeClip, TypeParameter, TypeImage}},
		PropName:              {Types: []Type{String}, Dim: 1},
		PropLabel:             {Types: []Type{String}, Dim: 1},
		PropShortLabel:        {Types: []Type{String}, Dim: 1},
		PropLongLabel:         {Types: []Type{String}, Dim: 1},
		PropVersion:           {Types: []Type{Int}, Dim: Variable},
		PropVersionLabel:      {Types: []Type{String}, Dim: 1},
		PropPluginDescription: {Types: []Type{String}, Dim: 1},
		PropAPIVersion:        {Types: []Type{Int}, Dim: 2},
		PropFilePath:          {Types: []Type{String}, Dim: 1},

		// The host's SupportedComponents/SupportedContexts share their
		// property names with the effect descriptor's entries below.
		ImageEffectHostPropNativeOrigin:             {Types: []Type{String}, Dim: 1},
		ImageEffectHostPropSupportsTiles:             {Types: []Type{Int}, Dim: 1},
		ImageEffectHostPropSupportsMultiResolution:   {Types: []Type{Int}, Dim: 1},
		ImageEffectHostPropTemporalClipAccess:        {Types: []Type{Int}, Dim: 1},
		ImageEffectHostPropSupportsMultipleClipPARs:  {Types: []Type{Int}, Dim: 1},
		ParamHostPropMaxParameters:                   {Types: []Type{Int}, Dim: 1},
		ParamHostPropMaxPages:                        {Types: []Type{Int}, Dim: 1},
		ImageEffectHostPropMultipleClipDepths:        {Types: []Type{Int}, Dim: 1},

		ImageEffectPluginPropGrouping:       {Types: []Type{String}, Dim: 1},
		ImageEffectPropSupportedContexts:    {Types: []Type{String}, Dim: Variable},
		ImageEffectPropSupportedPixelDepths: {Types: []Type{String}, Dim: Variable},
		ImageEffectPluginPropSingleInstance: {Types: []Type{Int}, Dim: 1},

		ImageClipPropOptional:              {Types: []Type{Int}, Dim: 1},
		ImageClipPropIsMask:                {Types: []Type{Int}, Dim: 1},
		ImageEffectPropSupportedComponents: {Types: []Type{String}, Dim: Variable, Allowed: []string{ComponentsRGBA, ComponentsRGB, ComponentsNone}},
		ImageClipPropConnected:             {Types: []Type{Int}, Dim: 1},
		ImageEffectPropPixelAspectRatio:    {Types: []Type{Double}, Dim: 1},
		ImageEffectPropComponents:          {Types: []Type{String}, Dim: 1, Allowed: []string{ComponentsRGBA, ComponentsRGB, ComponentsNone}},
		ImageEffectPropPixelDepth:          {Types: []Type{String}, Dim: 1, Allowed: []string{PixelDepthByte}},

		ParamPropType:       {Types: []Type{String}, Dim: 1, Allowed: []string{ParamTypeInteger, ParamTypeDouble, ParamTypeBoolean, ParamTypeChoice, ParamTypeRGB, ParamTypeRGBA, ParamTypeDouble2D, ParamTypeDouble3D, ParamTypeInteger2D, ParamTypeInteger3D, ParamTypeString, ParamTypeCustom, ParamTypePushButton}},
		ParamPropScriptName: {Types: []Type{String}, Dim: 1},
		ParamPropDefault:    {Types: []Type{Int, Double, String}, Dim: AnyDim},
		ParamPropMin:        {Types: []Type{Int, Double}, Dim: AnyDim},
		ParamPropMax:        {Types: []Type{Int, Double}, Dim: AnyDim},
		ParamPropDisplayMin: {Types: []Type{Int, Double}, Dim: AnyDim},
		ParamPropDisplayMax: {Types: []Type{Int, Double}, Dim: AnyDim},
		ParamPropSecret:     {Types: []Type{Int}, Dim: 1},
		ParamPropHint:       {Types: []Type{String}, Dim: 1},
		ParamPropEnabled:    {Types: []Type{Int}, Dim: 1},
		ParamPropAnimates:   {Types: []Type{Int}, Dim: 1},
		ParamPropCanUndo:    {Types: []Type{Int}, Dim: 1},

		ImagePropData:                     {Types: []Type{Pointer}, Dim: 1},
		ImagePropBounds:                   {Types: []Type{Int}, Dim: 4},
		ImageEffectPropRegionOfDefinition: {Types: []Type{Int}, Dim: 4},
		ImagePropRowBytes:                 {Types: []Type{Int}, Dim: 1},
		ImagePropField:                    {Types: []Type{String}, Dim: 1, Allowed: []string{FieldNone}},
		ImagePropUniqueIdentifier:         {Types: []Type{String}, Dim: 1},
		ImageEffectPropPreMultiplication:  {Types: []Type{String}, Dim: 1, Allowed: []string{PreMultUnPreMultiplied, PreMultOpaque, PreMultPreMultiplied}},
		ImageEffectPropRenderScale:        {Types: []Type{Double}, Dim: 2},

		PropTime:                              {Types: []Type{Double}, Dim: 1},
		ImageEffectPropRenderWindow:            {Types: []Type{Int}, Dim: 4},
		PropIsInteractive:                      {Types: []Type{Int}, Dim: 1},
		ImageEffectPropSequentialRenderStatus:  {Types: []Type{Int}, Dim: 1},
		ImageEffectPropFrameRange:              {Types: []Type{Double}, Dim: 2},
		ImageEffectPropFrameStep:               {Types: []Type{Double}, Dim: 1},
		ImageEffectPropFieldToRender:           {Types: []Type{String}, Dim: 1, Allowed: []string{FieldNone}},

		ParamInstancePropValue: {Types: []Type{Int, Double, String}, Dim: AnyDim},
	}
	return NewSchema(entries)
}
