package property

// Property name constants, following the `kOfx*` naming convention of
// the published OFX property strings (spec.md §3, §4.2, §4.6).
const (
	// Generic, present on most objects.
	PropType      = "kOfxPropType"
	PropName      = "kOfxPropName"
	PropLabel     = "kOfxPropLabel"
	PropShortLabel = "kOfxPropShortLabel"
	PropLongLabel  = "kOfxPropLongLabel"
	PropVersion    = "kOfxPropVersion"
	PropVersionLabel = "kOfxPropVersionLabel"
	PropPluginDescription = "kOfxPropPluginDescription"
	PropAPIVersion = "kOfxPropAPIVersion"
	PropFilePath   = "kOfxPluginPropFilePath"

	// Object-type tags for PropType.
	TypeImageEffectHost      = "kOfxTypeImageEffectHost"
	TypeImageEffect          = "kOfxTypeImageEffect"
	TypeImageEffectInstance  = "kOfxTypeImageEffectInstance"
	TypeClip                 = "kOfxTypeClip"
	TypeParameter             = "kOfxTypeParameter"
	TypeImage                = "kOfxTypeImage"

	// Host capabilities (spec.md §6).
	ImageEffectHostPropSupportedComponents      = "kOfxImageEffectPropSupportedComponents"
	ImageEffectHostPropSupportedContexts        = "kOfxImageEffectPropSupportedContexts"
	ImageEffectHostPropNativeOrigin             = "kOfxImageEffectHostPropNativeOrigin"
	ImageEffectHostPropSupportsTiles            = "kOfxImageEffectPropSupportsTiles"
	ImageEffectHostPropSupportsMultiResolution  = "kOfxImageEffectPropSupportsMultiResolution"
	ImageEffectHostPropTemporalClipAccess       = "kOfxImageEffectPropTemporalClipAccess"
	ImageEffectHostPropSupportsMultipleClipPARs = "kOfxImageEffectPropSupportsMultipleClipPARs"
	ParamHostPropMaxParameters                  = "kOfxParamHostPropMaxParameters"
	ParamHostPropMaxPages                       = "kOfxParamHostPropMaxPages"
	ImageEffectHostPropMultipleClipDepths       = "kOfxImageEffectPropMultipleClipDepths"

	// Effect descriptor.
	ImageEffectPluginPropGrouping         = "kOfxImageEffectPluginPropGrouping"
	ImageEffectPropSupportedContexts      = "kOfxImageEffectPropSupportedContexts"
	ImageEffectPropSupportedPixelDepths   = "kOfxImageEffectPropSupportedPixelDepths"
	ImageEffectPluginPropSingleInstance   = "kOfxImageEffectPluginPropSingleInstance"

	// Clip descriptor / instance.
	ImageClipPropOptional              = "kOfxImageClipPropOptional"
	ImageClipPropIsMask                = "kOfxImageClipPropIsMask"
	ImageEffectPropSupportedComponents = "kOfxImageEffectPropSupportedComponents"
	ImageClipPropConnected             = "kOfxImageClipPropConnected"
	ImageEffectPropPixelAspectRatio    = "kOfxImageEffectPropPixelAspectRatio"
	ImageEffectPropComponents          = "kOfxImageEffectPropComponents"
	ImageEffectPropPixelDepth          = "kOfxImageEffectPropPixelDepth"

	// Parameter descriptor / instance.
	ParamPropType        = "kOfxParamPropType"
	ParamPropScriptName  = "kOfxParamPropScriptName"
	ParamPropDefault     = "kOfxParamPropDefault"
	ParamPropMin         = "kOfxParamPropMin"
	ParamPropMax         = "kOfxParamPropMax"
	ParamPropDisplayMin  = "kOfxParamPropDisplayMin"
	ParamPropDisplayMax  = "kOfxParamPropDisplayMax"
	ParamPropSecret      = "kOfxParamPropSecret"
	ParamPropHint        = "kOfxParamPropHint"
	ParamPropEnabled     = "kOfxParamPropEnabled"
	ParamPropAnimates    = "kOfxParamPropAnimates"
	ParamPropCanUndo     = "kOfxParamPropCanUndo"

	// Image property set (spec.md §4.6).
	ImagePropData              = "kOfxImagePropData"
	ImagePropBounds            = "kOfxImagePropBounds"
	ImageEffectPropRegionOfDefinition = "kOfxImageEffectPropRegionOfDefinition"
	ImagePropRowBytes          = "kOfxImagePropRowBytes"
	ImagePropField             = "kOfxImagePropField"
	ImagePropUniqueIdentifier  = "kOfxImagePropUniqueIdentifier"
	ImageEffectPropPreMultiplication  = "kOfxImageEffectPropPreMultiplication"
	ImageEffectPropRenderScale = "kOfxImageEffectPropRenderScale"

	// Instance-only: the parameter's current value cells, laid out per
	// paramLayout (host's own bookkeeping key, not part of the OFX wire
	// property set).
	ParamInstancePropValue = "value"

	// Render / sequence-render action argument sets.
	PropTime                              = "kOfxPropTime"
	ImageEffectPropRenderWindow           = "kOfxImageEffectPropRenderWindow"
	PropIsInteractive                     = "kOfxPropIsInteractive"
	ImageEffectPropSequentialRenderStatus = "kOfxImageEffectPropSequentialRenderStatus"
	ImageEffectPropFrameRange             = "kOfxImageEffectPropFrameRange"
	ImageEffectPropFrameStep              = "kOfxImageEffectPropFrameStep"
	ImageEffectPropFieldToRender           = "kOfxImageEffectPropFieldToRender"
)

// Enum value strings.
const (
	ComponentsRGBA = "kOfxImageComponentRGBA"
	ComponentsRGB  = "kOfxImageComponentRGB"
	ComponentsNone = "kOfxImageComponentNone"

	PixelDepthByte = "kOfxBitDepthByte"

	PreMultUnPreMultiplied = "kOfxImageUnPreMultiplied"
	PreMultOpaque          = "kOfxImageOpaque"
	PreMultPreMultiplied   = "kOfxImagePreMultiplied"

	FieldNone = "kOfxImageFieldNone"

	ContextFilter    = "OfxImageEffectContextFilter"
	ContextGeneral   = "OfxImageEffectContextGeneral"
	ContextGenerator = "OfxImageEffectContextGenerator"

	ParamTypeInteger     = "OfxParamTypeInteger"
	ParamTypeDouble      = "OfxParamTypeDouble"
	ParamTypeBoolean     = "OfxParamTypeBoolean"
	ParamTypeChoice      = "OfxParamTypeChoice"
	ParamTypeRGB         = "OfxParamTypeRGB"
	ParamTypeRGBA        = "OfxParamTypeRGBA"
	ParamTypeDouble2D    = "OfxParamTypeDouble2D"
	ParamTypeDouble3D    = "OfxParamTypeDouble3D"
	ParamTypeInteger2D   = "OfxParamTypeInteger2D"
	ParamTypeInteger3D   = "OfxParamTypeInteger3D"
	ParamTypeString      = "OfxParamTypeString"
	ParamTypeCustom      = "OfxParamTypeCustom"
	ParamTypePushButton  = "OfxParamTypePushButton"

	// Conventional clip names (spec.md §6 "Clip named Output is always
	// present").
	ClipSource = "Source"
	ClipOutput = "Output"
)
