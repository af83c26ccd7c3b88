package host

import (
	"unsafe"

	"github.com/gviegas/ofxhost/property"
	"github.com/gviegas/ofxhost/status"
)

// FetchSuiteFunc is the signature of the host callback a plugin invokes
// (via the OfxHost record it receives in setHost) to obtain a suite
// vtable by name and version (spec.md §4.8, §6). The returned pointer
// is a native C struct pointer, opaque to this package; it is produced
// by ofxc and handed straight through.
type FetchSuiteFunc func(name string, version int) unsafe.Pointer

// PluginBinding is the host's view of one plugin's native entry points,
// as read from its OfxPlugin record at bundle-load time (spec.md §4.8).
// ofxc implements this over a dlopen'd library; tests implement it over
// an in-process fake to exercise the action driver without cgo.
type PluginBinding interface {
	Identifier() string
	APIVersion() int
	VersionMajor() uint32
	VersionMinor() uint32

	// SetHost calls the native setHost entry point, giving the plugin
	// an OfxHost record whose fetchSuite function pointer ultimately
	// calls back into fetch.
	SetHost(fetch FetchSuiteFunc)

	// MainEntry calls the native mainEntry entry point. handleTok is
	// the opaque token (see ofxc) identifying the plugin/context/
	// instance the action applies to; it is nil for actions that take
	// no handle (OfxActionLoad, as sent by Host.Describe), though the
	// native signature always has the parameter.
	MainEntry(action string, handleTok unsafe.Pointer, inArgs, outArgs *property.Store) status.Code
}

// BundleLoader resolves and opens an OFX bundle directory and returns
// bindings for every plugin it exports (spec.md §4.8, §6 "Plugin
// discovery on disk").
type BundleLoader interface {
	Load(bundleDir, bundleName string) ([]PluginBinding, error)
}
