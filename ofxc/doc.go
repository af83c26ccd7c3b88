// Package ofxc is the cgo boundary between the pure-Go host package and
// a native OFX plugin shared library: dlopen/dlsym bundle loading, the
// C struct layout for OfxHost/OfxPlugin and the six suite vtables, the
// mainEntry invocation, and the parameter-value variadic marshalling
// shim (spec.md §4.8, §6, §9).
//
// Grounded on gviegas-neo3's driver/vk, which dlopens the Vulkan loader
// and drives it through C function-pointer tables in exactly this
// shape; ofxc does the same thing for an OFX bundle instead of a GPU
// driver.
package ofxc
