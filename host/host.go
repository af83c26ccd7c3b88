package host

import (
	"fmt"
	"log"
	"unsafe"

	"github.com/gviegas/ofxhost/handle"
	"github.com/gviegas/ofxhost/property"
)

// Host is the singleton ownership tree described in spec.md §3: every
// Bundle/Plugin/Context/Clip/Parameter descriptor a loaded library
// exposes, plus the Active instances and scratch ImageMemory currently
// alive. There is exactly one Host per process; ofxc binds it once at
// startup (mirrors driver.Register in the teacher's driver package,
// itself a single global registry).
type Host struct {
	H       handle.Handle
	Props   *property.Store
	schema  *property.Schema
	loader  BundleLoader
	tok     Tokenizer
	Bundles map[string]*Bundle

	Active struct {
		Instances map[string]*Instance
		Memory    map[string]*ImageMemory
		Mutexes   map[string]*Mutex
	}

	log *log.Logger

	instIDs  instIDAllocator
	memIDs   instIDAllocator
	mutexIDs instIDAllocator
	raw      rawAlloc
}

// New creates a Host backed by loader for resolving plugin bundles and
// tok for minting/resolving the tokens passed across the ABI in place
// of raw object pointers. logger may be nil, in which case the host
// logs to log.Default().
func New(loader BundleLoader, tok Tokenizer, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.Default()
	}
	schema := property.DefaultSchema()
	h := &Host{
		H:       handle.New(handle.ImageEffectHost, "", "", "", "", ""),
		Props:   newHostProps(schema),
		schema:  schema,
		loader:  loader,
		tok:     tok,
		Bundles: make(map[string]*Bundle),
		log:     logger,
	}
	h.Active.Instances = make(map[string]*Instance)
	h.Active.Memory = make(map[string]*ImageMemory)
	h.Active.Mutexes = make(map[string]*Mutex)
	return h
}

func (h *Host) Ident() handle.Handle        { return h.H }
func (h *Host) Properties() *property.Store { return h.Props }

// Token mints the opaque ABI-facing token for obj.
func (h *Host) Token(obj Object) unsafe.Pointer { return h.tok.Token(obj) }

// Resolve recovers the Object a token was minted for, or ok=false if
// tok does not name a live object (spec.md §4.3 "Unknown kinds return
// BadHandle" — the same applies to a token the host no longer
// recognizes).
func (h *Host) Resolve(tok unsafe.Pointer) (Object, bool) { return h.tok.Resolve(tok) }

// Release frees tok's underlying token. Callers mint a token (e.g. to
// wrap inArgs/outArgs for one mainEntry call) and release it once the
// native call returns; long-lived objects (instances, clips, params)
// are instead tokenized once per ABI call and never explicitly
// released, since a plugin may retain the handle indefinitely.
func (h *Host) Release(tok unsafe.Pointer) { h.tok.Release(tok) }

// Logf logs one diagnostic line, the way driver.Register logs
// registration events in the teacher.
func (h *Host) Logf(format string, args ...interface{}) {
	h.log.Printf(format, args...)
}

// LoadBundle resolves bundleDir/bundleName.ofx.bundle, opens its native
// library and creates a Bundle descriptor containing one Plugin
// descriptor per plugin it exports (spec.md §4.8). Loading the same
// bundle name twice replaces the previous Bundle.
func (h *Host) LoadBundle(bundleDir, bundleName string, fetch FetchSuiteFunc) (*Bundle, error) {
	bindings, err := h.loader.Load(bundleDir, bundleName)
	if err != nil {
		return nil, fmt.Errorf("host: loading bundle %q: %w", bundleName, err)
	}
	b := &Bundle{
		Name:    bundleName,
		Path:    bundleDir,
		Plugins: make(map[string]*Plugin),
	}
	for _, bind := range bindings {
		id := bind.Identifier()
		p := &Plugin{
			base: base{
				H:     handle.New(handle.ImageEffect, bundleName, id, "", "", ""),
				Props: newEffectDescProps(h.schema, id, h.bundlePath(bundleDir, bundleName)),
			},
			Bundle:       b,
			Binding:      bind,
			Contexts:     make(map[string]*Context),
			apiVersion:   bind.APIVersion(),
			versionMajor: bind.VersionMajor(),
			versionMinor: bind.VersionMinor(),
		}
		bind.SetHost(fetch)
		b.Plugins[id] = p
		h.Logf("plugin %q registered from bundle %q", id, bundleName)
	}
	h.Bundles[bundleName] = b
	return b, nil
}

func (h *Host) bundlePath(dir, name string) string {
	return dir + "/" + name + ".ofx.bundle"
}

// FindPlugin locates a plugin within any loaded bundle whose
// identifier equals or contains needle (spec.md §4 "Supplemented
// features": substring match, grounded on pyofx/__main__.py).
func (h *Host) FindPlugin(needle string) (*Plugin, error) {
	for _, b := range h.Bundles {
		for id, p := range b.Plugins {
			if id == needle {
				return p, nil
			}
		}
	}
	for _, b := range h.Bundles {
		for id, p := range b.Plugins {
			if contains(id, needle) {
				return p, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPlugin, needle)
}

func contains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
