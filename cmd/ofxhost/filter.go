package main

import (
	"github.com/spf13/cobra"

	"github.com/gviegas/ofxhost/imageio"
	"github.com/gviegas/ofxhost/ofxc"
)

func newFilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter DIR BUNDLE PLUGIN IN OUT",
		Short: "Run a plugin's single-clip Filter-context render",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(args[0], args[1], args[2], args[3], args[4])
		},
	}
	return cmd
}

func runFilter(dir, bundle, plugin, inPath, outPath string) error {
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

	in, err := imageio.Read(inPath)
	if err != nil {
		return err
	}
	out := make([]byte, len(in.Pix))
	if err := h.RunFilter(p, ctxName, in.Width, in.Height, in.Pix, out); err != nil {
		return err
	}
	return imageio.Write(outPath, &imageio.Image{Width: in.Width, Height: in.Height, Pix: out})
}
