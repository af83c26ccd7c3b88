package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gviegas/ofxhost/ofxc"
	"github.com/gviegas/ofxhost/paramio"
	"github.com/gviegas/ofxhost/property"
)

func newParamsCmd() *cobra.Command {
	var jsonOut string
	cmd := &cobra.Command{
		Use:   "params DIR BUNDLE PLUGIN",
		Short: "Describe a plugin's parameters and clips",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParams(args[0], args[1], args[2], jsonOut)
		},
	}
	cmd.Flags().StringVarP(&jsonOut, "json", "j", "", "write a parameter-document template here instead of printing")
	return cmd
}

func runParams(dir, bundle, plugin, jsonOut string) error {
	h := newHost()
	if _, err := h.LoadBundle(dir, bundle, ofxc.FetchSuite); err != nil {
		return err
	}
	p, err := h.FindPlugin(plugin)
	if err != nil {
		return err
	}
	if err := h.Describe(p); err != nil {
		return err
	}
	ctxName, err := defaultContext(p)
	if err != nil {
		return err
	}
	ctx, err := h.DescribeInContext(p, ctxName)
	if err != nil {
		return err
	}

	doc := paramio.Template(ctx, bundle, p.Binding.Identifier())
	if jsonOut != "" {
		return paramio.Write(jsonOut, doc)
	}

	for _, name := range ctx.ParamNames() {
		v, ok := doc.Parameters[name]
		if !ok {
			continue // Secret=1, excluded from the template
		}
		pd := ctx.Params[name]
		fmt.Printf("param %s type=%s default=%v\n", pd.ScriptName, pd.Type, v)
	}
	for _, name := range ctx.ClipNames() {
		cd := ctx.Clips[name]
		opt, _ := cd.Properties().Get(property.ImageClipPropOptional, 0)
		fmt.Printf("clip %s optional=%d\n", cd.Name, opt.I)
	}
	return nil
}
