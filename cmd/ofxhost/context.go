package main

import (
	"fmt"

	"github.com/gviegas/ofxhost/host"
	"github.com/gviegas/ofxhost/property"
)

// defaultContext picks the context a bare plugin identifier resolves
// to when the caller doesn't name one: Filter if the plugin declares
// support for it (the common single-input case this host's "filter"
// and "params" commands are built around), otherwise whichever context
// the plugin listed first during Describe.
func defaultContext(p *host.Plugin) (string, error) {
	n, err := p.Properties().Length(property.ImageEffectPropSupportedContexts)
	if err != nil || n == 0 {
		return "", fmt.Errorf("plugin %q declares no supported contexts", p.Binding.Identifier())
	}
	for i := 0; i < n; i++ {
		v, err := p.Properties().Get(property.ImageEffectPropSupportedContexts, i)
		if err == nil && v.S == property.ContextFilter {
			return property.ContextFilter, nil
		}
	}
	v, _ := p.Properties().Get(property.ImageEffectPropSupportedContexts, 0)
	return v.S, nil
}
