package ofxc

/*
#cgo linux LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdlib.h>
#include <string.h>

// Byte-for-byte layout of the OFX 1.4 structures this host must match
// (spec.md §6). The SDK's own C headers are not vendored into this
// module, so the layout is reproduced directly here, the same way a
// minimal host binding would when it does not want a full SDK
// dependency.
//
// Everything cgo-related — struct layout, dlopen/dlsym plumbing, the
// //export trampolines and the vtables they populate — lives in this
// one file deliberately: each Go file with its own "import C" gets an
// independent C namespace, so splitting the struct declarations from
// the trampolines that reference them (as a first pass at this file
// did) leaves the second file unable to see the first's types.

typedef int OfxStatus;
typedef void *OfxPropertySetHandle;
typedef void *OfxParamHandle;
typedef void *OfxParamSetHandle;
typedef void *OfxImageEffectHandleC;
typedef void *OfxClipHandle;
typedef void *OfxImageMemoryHandle;
typedef void *OfxMutexHandle;

typedef struct OfxHost {
	OfxPropertySetHandle host;
	void *(*fetchSuite)(OfxPropertySetHandle host, const char *suiteName, int suiteVersion);
} OfxHost;

typedef struct OfxPlugin {
	const char   *pluginApi;
	int           apiVersion;
	const char   *pluginIdentifier;
	unsigned int  pluginVersionMajor;
	unsigned int  pluginVersionMinor;
	void        (*setHost)(OfxHost *host);
	OfxStatus   (*mainEntry)(const char *action, const void *handle,
	                         OfxPropertySetHandle inArgs, OfxPropertySetHandle outArgs);
} OfxPlugin;

typedef int        (*OfxGetNumberOfPluginsFn)(void);
typedef OfxPlugin *(*OfxGetPluginFn)(int);

static void *openLib(const char *path) {
	return dlopen(path, RTLD_NOW | RTLD_LOCAL);
}

static void *findSym(void *lib, const char *name) {
	return dlsym(lib, name);
}

static int callGetNumberOfPlugins(void *fn) {
	return ((OfxGetNumberOfPluginsFn)fn)();
}

static OfxPlugin *callGetPlugin(void *fn, int index) {
	return ((OfxGetPluginFn)fn)(index);
}

static void callSetHost(void *fn, OfxHost *host) {
	((void (*)(OfxHost *))fn)(host);
}

static OfxStatus callMainEntry(void *fn, const char *action, const void *handle,
                                OfxPropertySetHandle inArgs, OfxPropertySetHandle outArgs) {
	typedef OfxStatus (*MainEntryFn)(const char *, const void *, OfxPropertySetHandle, OfxPropertySetHandle);
	return ((MainEntryFn)fn)(action, handle, inArgs, outArgs);
}

static void callThreadFunc(void *fn, unsigned int index, unsigned int max, void *arg) {
	((void (*)(unsigned int, unsigned int, void *))fn)(index, max, arg);
}

// --- OfxPropertySuiteV1 ---------------------------------------------------

typedef struct OfxPropertySuiteV1 {
	OfxStatus (*propSetPointer)(OfxPropertySetHandle, const char *, int, void *);
	OfxStatus (*propSetString)(OfxPropertySetHandle, const char *, int, const char *);
	OfxStatus (*propSetDouble)(OfxPropertySetHandle, const char *, int, double);
	OfxStatus (*propSetInt)(OfxPropertySetHandle, const char *, int, int);
	OfxStatus (*propSetPointerN)(OfxPropertySetHandle, const char *, int, void *const *);
	OfxStatus (*propSetStringN)(OfxPropertySetHandle, const char *, int, const char *const *);
	OfxStatus (*propSetDoubleN)(OfxPropertySetHandle, const char *, int, const double *);
	OfxStatus (*propSetIntN)(OfxPropertySetHandle, const char *, int, const int *);
	OfxStatus (*propGetPointer)(OfxPropertySetHandle, const char *, int, void **);
	OfxStatus (*propGetString)(OfxPropertySetHandle, const char *, int, char **);
	OfxStatus (*propGetDouble)(OfxPropertySetHandle, const char *, int, double *);
	OfxStatus (*propGetInt)(OfxPropertySetHandle, const char *, int, int *);
	OfxStatus (*propGetPointerN)(OfxPropertySetHandle, const char *, int, void **);
	OfxStatus (*propGetStringN)(OfxPropertySetHandle, const char *, int, char **);
	OfxStatus (*propGetDoubleN)(OfxPropertySetHandle, const char *, int, double *);
	OfxStatus (*propGetIntN)(OfxPropertySetHandle, const char *, int, int *);
	OfxStatus (*propReset)(OfxPropertySetHandle, const char *);
	OfxStatus (*propGetDimension)(OfxPropertySetHandle, const char *, int *);
} OfxPropertySuiteV1;

// --- OfxParameterSuiteV1 --------------------------------------------------
//
// paramGetValue/paramSetValue are variadic on the wire (spec.md §9);
// this host exports the fixed-arity shim spec.md §9 prescribes instead
// (4 doubles, 4 ints, one string pointer — enough for every row in the
// §4.5 per-type layout table).

typedef struct OfxParamValueArgs {
	double d[4];
	int    i[4];
	char  *s;
} OfxParamValueArgs;

typedef struct OfxParameterSuiteV1 {
	OfxStatus (*paramDefine)(void *effectHandle, const char *paramType, const char *name, OfxPropertySetHandle *out);
	OfxStatus (*paramGetHandle)(void *effectHandle, const char *name, OfxParamHandle *out, OfxPropertySetHandle *outProp);
	OfxStatus (*paramGetPropertySet)(OfxParamHandle, OfxPropertySetHandle *out);
	OfxStatus (*paramGetValue)(OfxParamHandle, OfxParamValueArgs *out);
	OfxStatus (*paramSetValue)(OfxParamHandle, OfxParamValueArgs *in);
	OfxStatus (*paramGetValueAtTime)(OfxParamHandle, double time, OfxParamValueArgs *out);
	OfxStatus (*paramSetValueAtTime)(OfxParamHandle, double time, OfxParamValueArgs *in);
	OfxStatus (*paramGetNumKeys)(OfxParamHandle, unsigned int *out);
	OfxStatus (*paramGetKeyTime)(OfxParamHandle, unsigned int index, double *out);
	OfxStatus (*paramGetKeyIndex)(OfxParamHandle, double time, int dir, int *out);
	OfxStatus (*paramDeleteKey)(OfxParamHandle, double time);
	OfxStatus (*paramDeleteAllKeys)(OfxParamHandle);
	OfxStatus (*paramCopy)(OfxParamHandle dst, OfxParamHandle src, double offset);
	OfxStatus (*paramEditBegin)(OfxParamSetHandle, const char *name);
	OfxStatus (*paramEditEnd)(OfxParamSetHandle);
	OfxStatus (*paramGetDerivative)(OfxParamHandle, double time, double *out);
	OfxStatus (*paramGetIntegral)(OfxParamHandle, double t1, double t2, double *out);
} OfxParameterSuiteV1;

// --- OfxImageEffectSuiteV1 -------------------------------------------------

typedef struct OfxImageEffectSuiteV1 {
	OfxStatus (*getPropertySet)(OfxImageEffectHandleC, OfxPropertySetHandle *out);
	OfxStatus (*getParamSet)(OfxImageEffectHandleC, OfxParamSetHandle *out);
	OfxStatus (*clipDefine)(OfxImageEffectHandleC, const char *name, OfxPropertySetHandle *out);
	OfxStatus (*clipGetHandle)(OfxImageEffectHandleC, const char *name, OfxClipHandle *out, OfxPropertySetHandle *outProp);
	OfxStatus (*clipGetPropertySet)(OfxClipHandle, OfxPropertySetHandle *out);
	OfxStatus (*clipGetImage)(OfxClipHandle, double time, void *region, void *out);
	OfxStatus (*clipReleaseImage)(void *imageHandle);
	OfxStatus (*clipGetRegionOfDefinition)(OfxClipHandle, double time, void *out);
	OfxStatus (*imageMemoryAlloc)(OfxImageEffectHandleC, size_t n, OfxImageMemoryHandle *out);
	OfxStatus (*imageMemoryLock)(OfxImageMemoryHandle, void **out);
	OfxStatus (*imageMemoryUnlock)(OfxImageMemoryHandle);
	OfxStatus (*imageMemoryFree)(OfxImageMemoryHandle);
} OfxImageEffectSuiteV1;

// --- OfxMemorySuiteV1 -------------------------------------------------------

typedef struct OfxMemorySuiteV1 {
	OfxStatus (*memoryAlloc)(void *instanceHandle, size_t n, void **out);
	OfxStatus (*memoryFree)(void *ptr);
} OfxMemorySuiteV1;

// --- OfxMultiThreadSuiteV1 ---------------------------------------------------

typedef struct OfxMultiThreadSuiteV1 {
	OfxStatus (*multiThread)(void (*func)(unsigned int, unsigned int, void *), unsigned int nThreads, void *arg);
	OfxStatus (*multiThreadNumCPUs)(unsigned int *out);
	OfxStatus (*multiThreadIndex)(unsigned int *out);
	int       (*multiThreadIsSpawnedThread)(void);
	OfxStatus (*mutexCreate)(OfxMutexHandle *out, int count);
	OfxStatus (*mutexDestroy)(OfxMutexHandle);
	OfxStatus (*mutexLock)(OfxMutexHandle);
	OfxStatus (*mutexUnlock)(OfxMutexHandle);
	OfxStatus (*mutexTryLock)(OfxMutexHandle, int *out);
} OfxMultiThreadSuiteV1;

// --- OfxMessageSuiteV1 --------------------------------------------------------

typedef struct OfxMessageSuiteV1 {
	OfxStatus (*message)(void *handle, const char *type, const char *id, const char *text);
	OfxStatus (*setPersistentMessage)(void *handle, const char *type, const char *id, const char *text);
	OfxStatus (*clearPersistentMessage)(void *handle);
} OfxMessageSuiteV1;

#include "_cgo_export.h"

static void fillPropertySuite(OfxPropertySuiteV1 *s) {
	s->propSetPointer   = goPropSetPointer;
	s->propSetString    = goPropSetString;
	s->propSetDouble    = goPropSetDouble;
	s->propSetInt       = goPropSetInt;
	s->propSetPointerN  = goPropSetPointerN;
	s->propSetStringN   = goPropSetStringN;
	s->propSetDoubleN   = goPropSetDoubleN;
	s->propSetIntN      = goPropSetIntN;
	s->propGetPointer   = goPropGetPointer;
	s->propGetString    = goPropGetString;
	s->propGetDouble    = goPropGetDouble;
	s->propGetInt       = goPropGetInt;
	s->propGetPointerN  = goPropGetPointerN;
	s->propGetStringN   = goPropGetStringN;
	s->propGetDoubleN   = goPropGetDoubleN;
	s->propGetIntN      = goPropGetIntN;
	s->propReset        = goPropReset;
	s->propGetDimension = goPropGetDimension;
}

static void fillParameterSuite(OfxParameterSuiteV1 *s) {
	s->paramDefine         = goParamDefine;
	s->paramGetHandle      = goParamGetHandle;
	s->paramGetPropertySet = goParamGetPropertySet;
	s->paramGetValue       = goParamGetValue;
	s->paramSetValue       = goParamSetValue;
	s->paramGetValueAtTime = goParamGetValueAtTime;
	s->paramSetValueAtTime = goParamSetValueAtTime;
	s->paramGetNumKeys     = goParamGetNumKeys;
	s->paramGetKeyTime     = goParamGetKeyTime;
	s->paramGetKeyIndex    = goParamGetKeyIndex;
	s->paramDeleteKey      = goParamDeleteKey;
	s->paramDeleteAllKeys  = goParamDeleteAllKeys;
	s->paramCopy           = goParamCopy;
	s->paramEditBegin      = goParamEditBegin;
	s->paramEditEnd        = goParamEditEnd;
	s->paramGetDerivative  = goParamGetDerivative;
	s->paramGetIntegral    = goParamGetIntegral;
}

static void fillImageEffectSuite(OfxImageEffectSuiteV1 *s) {
	s->getPropertySet           = goGetPropertySet;
	s->getParamSet              = goGetParamSet;
	s->clipDefine                = goClipDefine;
	s->clipGetHandle             = goClipGetHandle;
	s->clipGetPropertySet        = goClipGetPropertySet;
	s->clipGetImage              = goClipGetImage;
	s->clipReleaseImage          = goClipReleaseImage;
	s->clipGetRegionOfDefinition = goClipGetRegionOfDefinition;
	s->imageMemoryAlloc          = goImageMemoryAlloc;
	s->imageMemoryLock           = goImageMemoryLock;
	s->imageMemoryUnlock         = goImageMemoryUnlock;
	s->imageMemoryFree           = goImageMemoryFree;
}

static void fillMemorySuite(OfxMemorySuiteV1 *s) {
	s->memoryAlloc = goMemoryAlloc;
	s->memoryFree  = goMemoryFree;
}

static void fillMultiThreadSuite(OfxMultiThreadSuiteV1 *s) {
	s->multiThread                = goMultiThread;
	s->multiThreadNumCPUs         = goMultiThreadNumCPUs;
	s->multiThreadIndex           = goMultiThreadIndex;
	s->multiThreadIsSpawnedThread = goMultiThreadIsSpawnedThread;
	s->mutexCreate                = goMutexCreate;
	s->mutexDestroy               = goMutexDestroy;
	s->mutexLock                  = goMutexLock;
	s->mutexUnlock                = goMutexUnlock;
	s->mutexTryLock               = goMutexTryLock;
}

static void fillMessageSuite(OfxMessageSuiteV1 *s) {
	s->message                = goMessage;
	s->setPersistentMessage   = goSetPersistentMessage;
	s->clearPersistentMessage = goClearPersistentMessage;
}

static void *fetchSuiteTrampoline(OfxPropertySetHandle hostTok, const char *name, int version) {
	return goFetchSuite((char *)name, version);
}
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/gviegas/ofxhost/handle"
	"github.com/gviegas/ofxhost/host"
	"github.com/gviegas/ofxhost/property"
	"github.com/gviegas/ofxhost/status"
)

// activeHost is the single Host a loaded plugin's trampolines dispatch
// through (spec.md §9 "Global mutable state. The host singleton holds
// the entire ownership tree."). A process hosts exactly one plugin
// host, so trampolines never need to thread a context value through
// the C call stack to find one.
var activeHost *host.Host

// Bind sets the Host every subsequently loaded bundle's suites
// dispatch through. Call it once at process startup, before LoadBundle.
func Bind(h *host.Host) { activeHost = h }

var (
	cPropertySuite    C.OfxPropertySuiteV1
	cParameterSuite   C.OfxParameterSuiteV1
	cImageEffectSuite C.OfxImageEffectSuiteV1
	cMemorySuite      C.OfxMemorySuiteV1
	cMultiThreadSuite C.OfxMultiThreadSuiteV1
	cMessageSuite     C.OfxMessageSuiteV1
	suitesBuilt       bool
)

func buildSuites() {
	if suitesBuilt {
		return
	}
	C.fillPropertySuite(&cPropertySuite)
	C.fillParameterSuite(&cParameterSuite)
	C.fillImageEffectSuite(&cImageEffectSuite)
	C.fillMemorySuite(&cMemorySuite)
	C.fillMultiThreadSuite(&cMultiThreadSuite)
	C.fillMessageSuite(&cMessageSuite)
	suitesBuilt = true
}

// FetchSuite is ofxc's own fetchSuite implementation: unlike
// host.Host.FetchSuite (which hands back Go struct pointers meant for
// in-process test fakes), this returns the address of one of the
// package's C vtable globals, each populated once with the addresses
// of the //export trampolines below — the layout a genuine dlopen'd
// plugin expects behind an OfxPropertySuiteV1* and its siblings.
func FetchSuite(name string, version int) unsafe.Pointer {
	buildSuites()
	switch name {
	case host.SuiteProperty:
		return unsafe.Pointer(&cPropertySuite)
	case host.SuiteParameter:
		return unsafe.Pointer(&cParameterSuite)
	case host.SuiteImageEffect:
		return unsafe.Pointer(&cImageEffectSuite)
	case host.SuiteMemory:
		return unsafe.Pointer(&cMemorySuite)
	case host.SuiteMultiThread:
		return unsafe.Pointer(&cMultiThreadSuite)
	case host.SuiteMessage:
		return unsafe.Pointer(&cMessageSuite)
	}
	if activeHost != nil {
		activeHost.Logf("ofxc: fetchSuite: unknown suite %q v%d", name, version)
	}
	return nil
}

//export goFetchSuite
func goFetchSuite(name *C.char, version C.int) unsafe.Pointer {
	return FetchSuite(C.GoString(name), int(version))
}

// ---- OfxPropertySuiteV1 trampolines --------------------------------------

//export goPropSetPointer
func goPropSetPointer(tok unsafe.Pointer, name *C.char, index C.int, v unsafe.Pointer) C.OfxStatus {
	return C.OfxStatus(activeHost.PropertySuite().SetPointer(tok, C.GoString(name), int(index), v))
}

//export goPropSetString
func goPropSetString(tok unsafe.Pointer, name *C.char, index C.int, v *C.char) C.OfxStatus {
	return C.OfxStatus(activeHost.PropertySuite().SetString(tok, C.GoString(name), int(index), C.GoString(v)))
}

//export goPropSetDouble
func goPropSetDouble(tok unsafe.Pointer, name *C.char, index C.int, v C.double) C.OfxStatus {
	return C.OfxStatus(activeHost.PropertySuite().SetDouble(tok, C.GoString(name), int(index), float64(v)))
}

//export goPropSetInt
func goPropSetInt(tok unsafe.Pointer, name *C.char, index C.int, v C.int) C.OfxStatus {
	return C.OfxStatus(activeHost.PropertySuite().SetInt(tok, C.GoString(name), int(index), int32(v)))
}

//export goPropSetPointerN
func goPropSetPointerN(tok unsafe.Pointer, name *C.char, count C.int, vs *unsafe.Pointer) C.OfxStatus {
	arr := unsafe.Slice(vs, int(count))
	ps := make([]unsafe.Pointer, len(arr))
	copy(ps, arr)
	return C.OfxStatus(activeHost.PropertySuite().SetPointerN(tok, C.GoString(name), ps))
}

//export goPropSetStringN
func goPropSetStringN(tok unsafe.Pointer, name *C.char, count C.int, vs **C.char) C.OfxStatus {
	arr := unsafe.Slice(vs, int(count))
	ss := make([]string, len(arr))
	for i, p := range arr {
		ss[i] = C.GoString(p)
	}
	return C.OfxStatus(activeHost.PropertySuite().SetStringN(tok, C.GoString(name), ss))
}

//export goPropSetDoubleN
func goPropSetDoubleN(tok unsafe.Pointer, name *C.char, count C.int, vs *C.double) C.OfxStatus {
	src := unsafe.Slice((*float64)(unsafe.Pointer(vs)), int(count))
	ds := make([]float64, len(src))
	copy(ds, src)
	return C.OfxStatus(activeHost.PropertySuite().SetDoubleN(tok, C.GoString(name), ds))
}

//export goPropSetIntN
func goPropSetIntN(tok unsafe.Pointer, name *C.char, count C.int, vs *C.int) C.OfxStatus {
	src := unsafe.Slice((*int32)(unsafe.Pointer(vs)), int(count))
	is := make([]int32, len(src))
	copy(is, src)
	return C.OfxStatus(activeHost.PropertySuite().SetIntN(tok, C.GoString(name), is))
}

//export goPropGetPointer
func goPropGetPointer(tok unsafe.Pointer, name *C.char, index C.int, out *unsafe.Pointer) C.OfxStatus {
	v, st := activeHost.PropertySuite().GetPointer(tok, C.GoString(name), int(index))
	if st == status.OK && out != nil {
		*out = v
	}
	return C.OfxStatus(st)
}

//export goPropGetString
func goPropGetString(tok unsafe.Pointer, name *C.char, index C.int, out **C.char) C.OfxStatus {
	v, st := activeHost.PropertySuite().GetString(tok, C.GoString(name), int(index))
	if st == status.OK && out != nil {
		*out = (*C.char)(v)
	}
	return C.OfxStatus(st)
}

//export goPropGetDouble
func goPropGetDouble(tok unsafe.Pointer, name *C.char, index C.int, out *C.double) C.OfxStatus {
	v, st := activeHost.PropertySuite().GetDouble(tok, C.GoString(name), int(index))
	if st == status.OK && out != nil {
		*out = C.double(v)
	}
	return C.OfxStatus(st)
}

//export goPropGetInt
func goPropGetInt(tok unsafe.Pointer, name *C.char, index C.int, out *C.int) C.OfxStatus {
	v, st := activeHost.PropertySuite().GetInt(tok, C.GoString(name), int(index))
	if st == status.OK && out != nil {
		*out = C.int(v)
	}
	return C.OfxStatus(st)
}

//export goPropGetPointerN
func goPropGetPointerN(tok unsafe.Pointer, name *C.char, count C.int, out *unsafe.Pointer) C.OfxStatus {
	vs, st := activeHost.PropertySuite().GetPointerN(tok, C.GoString(name), int(count))
	if st == status.OK {
		dst := unsafe.Slice(out, int(count))
		copy(dst, vs)
	}
	return C.OfxStatus(st)
}

//export goPropGetStringN
func goPropGetStringN(tok unsafe.Pointer, name *C.char, count C.int, out **C.char) C.OfxStatus {
	// Used by every variable-dimension String property the host
	// declares (SupportedContexts, SupportedComponents,
	// SupportedPixelDepths, …): GetStringN reads back count elements in
	// one call, where propGetString reads one index at a time.
	vs, st := activeHost.PropertySuite().GetStringN(tok, C.GoString(name), int(count))
	if st == status.OK {
		dst := unsafe.Slice(out, int(count))
		for i, p := range vs {
			dst[i] = (*C.char)(p)
		}
	}
	return C.OfxStatus(st)
}

//export goPropGetDoubleN
func goPropGetDoubleN(tok unsafe.Pointer, name *C.char, count C.int, out *C.double) C.OfxStatus {
	vs, st := activeHost.PropertySuite().GetDoubleN(tok, C.GoString(name), int(count))
	if st == status.OK {
		dst := unsafe.Slice((*float64)(unsafe.Pointer(out)), int(count))
		copy(dst, vs)
	}
	return C.OfxStatus(st)
}

//export goPropGetIntN
func goPropGetIntN(tok unsafe.Pointer, name *C.char, count C.int, out *C.int) C.OfxStatus {
	vs, st := activeHost.PropertySuite().GetIntN(tok, C.GoString(name), int(count))
	if st == status.OK {
		dst := unsafe.Slice((*int32)(unsafe.Pointer(out)), int(count))
		copy(dst, vs)
	}
	return C.OfxStatus(st)
}

//export goPropReset
func goPropReset(tok unsafe.Pointer, name *C.char) C.OfxStatus {
	return C.OfxStatus(activeHost.PropertySuite().Reset(tok, C.GoString(name)))
}

//export goPropGetDimension
func goPropGetDimension(tok unsafe.Pointer, name *C.char, out *C.int) C.OfxStatus {
	n, st := activeHost.PropertySuite().GetDimension(tok, C.GoString(name))
	if st == status.OK && out != nil {
		*out = C.int(n)
	}
	return C.OfxStatus(st)
}

// ---- OfxParameterSuiteV1 trampolines -------------------------------------
//
// paramDims mirrors host's own unexported paramLayout (templates.go):
// the cgo boundary needs the parameter's per-type cell layout before
// host ever sees a property.Value, to unpack the fixed-arity
// OfxParamValueArgs shim correctly.

func paramDims(paramType string) (typ property.Type, dim int) {
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

func paramTypeOf(tok unsafe.Pointer) string {
	obj, ok := activeHost.Resolve(tok)
	if !ok {
		return ""
	}
	pi, ok := obj.(*host.ParamInstance)
	if !ok {
		return ""
	}
	return pi.Type
}

//export goParamDefine
func goParamDefine(effectTok unsafe.Pointer, paramType, name *C.char, out *unsafe.Pointer) C.OfxStatus {
	tok, st := activeHost.ParameterSuite().Define(effectTok, C.GoString(paramType), C.GoString(name))
	if st == status.OK && out != nil {
		*out = tok
	}
	return C.OfxStatus(st)
}

//export goParamGetHandle
func goParamGetHandle(instTok unsafe.Pointer, name *C.char, out *unsafe.Pointer, outProp *unsafe.Pointer) C.OfxStatus {
	tok, st := activeHost.ParameterSuite().GetHandle(instTok, C.GoString(name))
	if st == status.OK {
		if out != nil {
			*out = tok
		}
		if outProp != nil {
			*outProp = tok
		}
	}
	return C.OfxStatus(st)
}

//export goParamGetPropertySet
func goParamGetPropertySet(tok unsafe.Pointer, out *unsafe.Pointer) C.OfxStatus {
	ps, st := activeHost.ParameterSuite().PropertySet(tok)
	if st == status.OK && out != nil {
		*out = ps
	}
	return C.OfxStatus(st)
}

func fillArgs(args *C.OfxParamValueArgs, vs []property.Value) {
	for i, v := range vs {
		if i >= 4 {
			break
		}
		switch v.Type {
		case property.Int:
			args.i[i] = C.int(v.I)
		case property.Double:
			args.d[i] = C.double(v.D)
		case property.String:
			if args.s != nil {
				C.free(unsafe.Pointer(args.s))
			}
			args.s = C.CString(v.S)
		}
	}
}

func readArgs(args *C.OfxParamValueArgs, typ property.Type, dim int) []property.Value {
	vs := make([]property.Value, dim)
	for i := range vs {
		switch typ {
		case property.Int:
			vs[i] = property.Value{Type: property.Int, I: int32(args.i[i])}
		case property.Double:
			vs[i] = property.Value{Type: property.Double, D: float64(args.d[i])}
		case property.String:
			vs[i] = property.Value{Type: property.String, S: C.GoString(args.s)}
		}
	}
	return vs
}

//export goParamGetValue
func goParamGetValue(tok unsafe.Pointer, out *C.OfxParamValueArgs) C.OfxStatus {
	vs, st := activeHost.ParameterSuite().GetValue(tok)
	if st == status.OK && out != nil {
		fillArgs(out, vs)
	}
	return C.OfxStatus(st)
}

//export goParamSetValue
func goParamSetValue(tok unsafe.Pointer, in *C.OfxParamValueArgs) C.OfxStatus {
	typ, dim := paramDims(paramTypeOf(tok))
	vs := readArgs(in, typ, dim)
	return C.OfxStatus(activeHost.ParameterSuite().SetValue(tok, vs))
}

//export goParamGetValueAtTime
func goParamGetValueAtTime(tok unsafe.Pointer, time C.double, out *C.OfxParamValueArgs) C.OfxStatus {
	vs, st := activeHost.ParameterSuite().GetValueAtTime(tok, float64(time))
	if st == status.OK && out != nil {
		fillArgs(out, vs)
	}
	return C.OfxStatus(st)
}

//export goParamSetValueAtTime
func goParamSetValueAtTime(tok unsafe.Pointer, time C.double, in *C.OfxParamValueArgs) C.OfxStatus {
	typ, dim := paramDims(paramTypeOf(tok))
	vs := readArgs(in, typ, dim)
	return C.OfxStatus(activeHost.ParameterSuite().SetValueAtTime(tok, float64(time), vs))
}

//export goParamGetNumKeys
func goParamGetNumKeys(tok unsafe.Pointer, out *C.uint) C.OfxStatus {
	n, st := activeHost.ParameterSuite().GetNumKeys(tok)
	if st == status.OK && out != nil {
		*out = C.uint(n)
	}
	return C.OfxStatus(st)
}

//export goParamGetKeyTime
func goParamGetKeyTime(tok unsafe.Pointer, index C.uint, out *C.double) C.OfxStatus {
	t, st := activeHost.ParameterSuite().GetKeyTime(tok, int(index))
	if st == status.OK && out != nil {
		*out = C.double(t)
	}
	return C.OfxStatus(st)
}

//export goParamGetKeyIndex
func goParamGetKeyIndex(tok unsafe.Pointer, time C.double, dir C.int, out *C.int) C.OfxStatus {
	idx, st := activeHost.ParameterSuite().GetKeyIndex(tok, float64(time), int(dir))
	if st == status.OK && out != nil {
		*out = C.int(idx)
	}
	return C.OfxStatus(st)
}

//export goParamDeleteKey
func goParamDeleteKey(tok unsafe.Pointer, time C.double) C.OfxStatus {
	return C.OfxStatus(activeHost.ParameterSuite().DeleteKey(tok, float64(time)))
}

//export goParamDeleteAllKeys
func goParamDeleteAllKeys(tok unsafe.Pointer) C.OfxStatus {
	return C.OfxStatus(activeHost.ParameterSuite().DeleteAllKeys(tok))
}

//export goParamCopy
func goParamCopy(dst, src unsafe.Pointer, offset C.double) C.OfxStatus {
	return C.OfxStatus(activeHost.ParameterSuite().Copy(dst, src))
}

//export goParamEditBegin
func goParamEditBegin(tok unsafe.Pointer, name *C.char) C.OfxStatus {
	return C.OfxStatus(activeHost.ParameterSuite().EditBegin(tok, C.GoString(name)))
}

//export goParamEditEnd
func goParamEditEnd(tok unsafe.Pointer) C.OfxStatus {
	return C.OfxStatus(activeHost.ParameterSuite().EditEnd(tok))
}

//export goParamGetDerivative
func goParamGetDerivative(tok unsafe.Pointer, time C.double, out *C.double) C.OfxStatus {
	v, st := activeHost.ParameterSuite().GetDerivative(tok, float64(time))
	if st == status.OK && out != nil {
		*out = C.double(v)
	}
	return C.OfxStatus(st)
}

//export goParamGetIntegral
func goParamGetIntegral(tok unsafe.Pointer, t1, t2 C.double, out *C.double) C.OfxStatus {
	v, st := activeHost.ParameterSuite().GetIntegral(tok, float64(t1), float64(t2))
	if st == status.OK && out != nil {
		*out = C.double(v)
	}
	return C.OfxStatus(st)
}

// ---- OfxImageEffectSuiteV1 trampolines ------------------------------------

//export goGetPropertySet
func goGetPropertySet(tok unsafe.Pointer, out *unsafe.Pointer) C.OfxStatus {
	ps, st := activeHost.ImageEffectSuite().GetPropertySet(tok)
	if st == status.OK && out != nil {
		*out = ps
	}
	return C.OfxStatus(st)
}

//export goGetParamSet
func goGetParamSet(tok unsafe.Pointer, out *unsafe.Pointer) C.OfxStatus {
	ps, st := activeHost.ImageEffectSuite().GetParamSet(tok)
	if st == status.OK && out != nil {
		*out = ps
	}
	return C.OfxStatus(st)
}

//export goClipDefine
func goClipDefine(effectTok unsafe.Pointer, name *C.char, out *unsafe.Pointer) C.OfxStatus {
	tok, st := activeHost.ImageEffectSuite().ClipDefine(effectTok, C.GoString(name))
	if st == status.OK && out != nil {
		*out = tok
	}
	return C.OfxStatus(st)
}

//export goClipGetHandle
func goClipGetHandle(instTok unsafe.Pointer, name *C.char, out *unsafe.Pointer, outProp *unsafe.Pointer) C.OfxStatus {
	tok, st := activeHost.ImageEffectSuite().ClipGetHandle(instTok, C.GoString(name))
	if st == status.OK {
		if out != nil {
			*out = tok
		}
		if outProp != nil {
			*outProp = tok
		}
	}
	return C.OfxStatus(st)
}

//export goClipGetPropertySet
func goClipGetPropertySet(tok unsafe.Pointer, out *unsafe.Pointer) C.OfxStatus {
	ps, st := activeHost.ImageEffectSuite().ClipGetPropertySet(tok)
	if st == status.OK && out != nil {
		*out = ps
	}
	return C.OfxStatus(st)
}

//export goClipGetImage
func goClipGetImage(clipTok unsafe.Pointer, time C.double, region unsafe.Pointer, out unsafe.Pointer) C.OfxStatus {
	tok, st := activeHost.ImageEffectSuite().ClipGetImage(clipTok, float64(time))
	if st == status.OK && out != nil {
		*(*unsafe.Pointer)(out) = tok
	}
	return C.OfxStatus(st)
}

//export goClipReleaseImage
func goClipReleaseImage(imageTok unsafe.Pointer) C.OfxStatus {
	return C.OfxStatus(activeHost.ImageEffectSuite().ClipReleaseImage(imageTok))
}

//export goClipGetRegionOfDefinition
func goClipGetRegionOfDefinition(clipTok unsafe.Pointer, time C.double, out unsafe.Pointer) C.OfxStatus {
	return C.OfxStatus(activeHost.ImageEffectSuite().ClipGetRegionOfDefinition(clipTok, float64(time)))
}

//export goImageMemoryAlloc
func goImageMemoryAlloc(instTok unsafe.Pointer, n C.size_t, out *unsafe.Pointer) C.OfxStatus {
	tok, st := activeHost.ImageEffectSuite().ImageMemoryAlloc(instTok, int(n))
	if st == status.OK && out != nil {
		*out = tok
	}
	return C.OfxStatus(st)
}

//export goImageMemoryLock
func goImageMemoryLock(tok unsafe.Pointer, out *unsafe.Pointer) C.OfxStatus {
	addr, st := activeHost.ImageEffectSuite().ImageMemoryLock(tok)
	if st == status.OK && out != nil {
		*out = addr
	}
	return C.OfxStatus(st)
}

//export goImageMemoryUnlock
func goImageMemoryUnlock(tok unsafe.Pointer) C.OfxStatus {
	return C.OfxStatus(activeHost.ImageEffectSuite().ImageMemoryUnlock(tok))
}

//export goImageMemoryFree
func goImageMemoryFree(tok unsafe.Pointer) C.OfxStatus {
	return C.OfxStatus(activeHost.ImageEffectSuite().ImageMemoryFree(tok))
}

// ---- OfxMemorySuiteV1 trampolines -----------------------------------------

//export goMemoryAlloc
func goMemoryAlloc(instTok unsafe.Pointer, n C.size_t, out *unsafe.Pointer) C.OfxStatus {
	ptr, st := activeHost.MemorySuite().Alloc(instTok, int(n))
	if st == status.OK && out != nil {
		*out = ptr
	}
	return C.OfxStatus(st)
}

//export goMemoryFree
func goMemoryFree(ptr unsafe.Pointer) C.OfxStatus {
	return C.OfxStatus(activeHost.MemorySuite().Free(ptr))
}

// ---- OfxMultiThreadSuiteV1 trampolines ------------------------------------

//export goMultiThread
func goMultiThread(fn unsafe.Pointer, nThreads C.uint, arg unsafe.Pointer) C.OfxStatus {
	wrapped := func(threadIndex, threadMax int, args unsafe.Pointer) status.Code {
		C.callThreadFunc(fn, C.uint(threadIndex), C.uint(threadMax), args)
		return status.OK
	}
	return C.OfxStatus(activeHost.MultiThreadSuite().MultiThread(wrapped, int(nThreads), arg))
}

//export goMultiThreadNumCPUs
func goMultiThreadNumCPUs(out *C.uint) C.OfxStatus {
	if out != nil {
		*out = C.uint(activeHost.MultiThreadSuite().NumCPUs())
	}
	return C.OfxStatus(status.OK)
}

//export goMultiThreadIndex
func goMultiThreadIndex(out *C.uint) C.OfxStatus {
	if out != nil {
		*out = C.uint(activeHost.MultiThreadSuite().ThreadIndex())
	}
	return C.OfxStatus(status.OK)
}

//export goMultiThreadIsSpawnedThread
func goMultiThreadIsSpawnedThread() C.int {
	if activeHost.MultiThreadSuite().IsSpawnedThread() {
		return 1
	}
	return 0
}

//export goMutexCreate
func goMutexCreate(out *unsafe.Pointer, count C.int) C.OfxStatus {
	tok := activeHost.MutexSuite().Create(int(count))
	if out != nil {
		*out = tok
	}
	return C.OfxStatus(status.OK)
}

//export goMutexDestroy
func goMutexDestroy(tok unsafe.Pointer) C.OfxStatus {
	return C.OfxStatus(activeHost.MutexSuite().Destroy(tok))
}

//export goMutexLock
func goMutexLock(tok unsafe.Pointer) C.OfxStatus {
	return C.OfxStatus(activeHost.MutexSuite().Lock(tok))
}

//export goMutexUnlock
func goMutexUnlock(tok unsafe.Pointer) C.OfxStatus {
	return C.OfxStatus(activeHost.MutexSuite().Unlock(tok))
}

//export goMutexTryLock
func goMutexTryLock(tok unsafe.Pointer, out *C.int) C.OfxStatus {
	st := activeHost.MutexSuite().TryLock(tok)
	if out != nil {
		if st == status.OK {
			*out = 1
		} else {
			*out = 0
		}
	}
	return C.OfxStatus(st)
}

// ---- OfxMessageSuiteV1 trampolines ----------------------------------------

//export goMessage
func goMessage(h unsafe.Pointer, msgType, id, text *C.char) C.OfxStatus {
	return C.OfxStatus(activeHost.MessageSuite().Message(C.GoString(msgType), C.GoString(id), C.GoString(text)))
}

//export goSetPersistentMessage
func goSetPersistentMessage(h unsafe.Pointer, msgType, id, text *C.char) C.OfxStatus {
	return C.OfxStatus(activeHost.MessageSuite().SetPersistentMessage(C.GoString(msgType), C.GoString(id), C.GoString(text)))
}

//export goClearPersistentMessage
func goClearPersistentMessage(h unsafe.Pointer) C.OfxStatus {
	return C.OfxStatus(activeHost.MessageSuite().ClearPersistentMessage())
}

// ---- Bundle loading and plugin binding ------------------------------------

// platformDir returns the per-platform Contents subdirectory name an
// OFX bundle lays its binary under (spec.md §4.8 "{bundle_dir}/
// {bundle}.ofx.bundle/Contents/{platform}/{bundle}.ofx").
func platformDir() string {
	switch runtime.GOOS {
	case "windows":
		return "Win64"
	case "darwin":
		return "MacOS-x86-64"
	default:
		return "Linux-x86-64"
	}
}

// DLLoader is the real host.BundleLoader: dlopen/dlsym against the
// bundle's platform-specific shared library (spec.md §4.8), grounded
// on gviegas-neo3's driver/vk loader, which dlopens libvulkan.so and
// resolves its entry points the same way.
type DLLoader struct{}

// Load implements host.BundleLoader.
func (DLLoader) Load(bundleDir, bundleName string) ([]host.PluginBinding, error) {
	path := fmt.Sprintf("%s/%s.ofx.bundle/Contents/%s/%s.ofx", bundleDir, bundleName, platformDir(), bundleName)
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	lib := C.openLib(cpath)
	if lib == nil {
		return nil, fmt.Errorf("ofxc: dlopen %s: %s", path, C.GoString(C.dlerror()))
	}

	cNameGet := C.CString("OfxGetNumberOfPlugins")
	cNameIdx := C.CString("OfxGetPlugin")
	defer C.free(unsafe.Pointer(cNameGet))
	defer C.free(unsafe.Pointer(cNameIdx))

	getCount := C.findSym(lib, cNameGet)
	getPlugin := C.findSym(lib, cNameIdx)
	if getCount == nil || getPlugin == nil {
		return nil, fmt.Errorf("ofxc: %s: missing OfxGetNumberOfPlugins/OfxGetPlugin", path)
	}

	n := int(C.callGetNumberOfPlugins(getCount))
	out := make([]host.PluginBinding, 0, n)
	for i := 0; i < n; i++ {
		p := C.callGetPlugin(getPlugin, C.int(i))
		if p == nil {
			continue
		}
		out = append(out, &pluginBinding{lib: lib, plugin: p})
	}
	return out, nil
}

// pluginBinding implements host.PluginBinding over one OfxPlugin
// record read from a dlopen'd bundle.
type pluginBinding struct {
	lib    unsafe.Pointer
	plugin *C.OfxPlugin
}

func (b *pluginBinding) Identifier() string    { return C.GoString(b.plugin.pluginIdentifier) }
func (b *pluginBinding) APIVersion() int       { return int(b.plugin.apiVersion) }
func (b *pluginBinding) VersionMajor() uint32  { return uint32(b.plugin.pluginVersionMajor) }
func (b *pluginBinding) VersionMinor() uint32  { return uint32(b.plugin.pluginVersionMinor) }

// SetHost calls the plugin's native setHost entry point. The fetch
// argument is accepted only to satisfy the PluginBinding interface and
// is not used: the OfxHost record handed to the plugin always points at
// fetchSuiteTrampoline, which resolves suites through ofxc.FetchSuite,
// whose vtables dispatch via the process-wide activeHost (spec.md §9
// "Global mutable state").
func (b *pluginBinding) SetHost(fetch host.FetchSuiteFunc) {
	_ = fetch
	buildSuites()
	// Allocated with C.malloc rather than as a Go value: the plugin may
	// retain this pointer past the call (some call fetchSuite lazily,
	// from inside a later action) and cgo forbids a C callee holding
	// onto Go memory beyond the call that passed it in. One allocation
	// per loaded plugin, never freed — the host process owns it for
	// its whole lifetime, the same way activeHost itself is never torn
	// down.
	cHost := (*C.OfxHost)(C.malloc(C.sizeof_OfxHost))
	cHost.host = nil
	cHost.fetchSuite = C.fetchSuiteTrampoline
	C.callSetHost(unsafe.Pointer(b.plugin.setHost), cHost)
}

// MainEntry calls the plugin's native mainEntry entry point, tokenizing
// handleTok's owning object (already a token, passed straight through)
// and inArgs/outArgs via the shared Tokenizer so a dlopen'd plugin
// receives a stable address for each.
func (b *pluginBinding) MainEntry(action string, handleTok unsafe.Pointer, inArgs, outArgs *property.Store) status.Code {
	cAction := C.CString(action)
	defer C.free(unsafe.Pointer(cAction))

	var inTok, outTok unsafe.Pointer
	if inArgs != nil {
		t := activeHost.Token(argSet{inArgs})
		defer activeHost.Release(t)
		inTok = t
	}
	if outArgs != nil {
		t := activeHost.Token(argSet{outArgs})
		defer activeHost.Release(t)
		outTok = t
	}

	st := C.callMainEntry(unsafe.Pointer(b.plugin.mainEntry), cAction, handleTok, inTok, outTok)
	return status.Code(st)
}

// argSet adapts a bare *property.Store (inArgs/outArgs, which carry no
// Handle identity of their own, unlike every other addressable host
// object) into a host.Object the shared Tokenizer can mint a token
// for, so a plugin can call propGetInt/propGetString and friends
// straight against its inArgs/outArgs handle the way the real ABI
// expects.
type argSet struct{ s *property.Store }

func (a argSet) Ident() handle.Handle        { return handle.Handle{} }
func (a argSet) Properties() *property.Store { return a.s }
