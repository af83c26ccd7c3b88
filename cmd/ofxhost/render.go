package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gviegas/ofxhost/host"
	"github.com/gviegas/ofxhost/imageio"
	"github.com/gviegas/ofxhost/ofxc"
	"github.com/gviegas/ofxhost/paramio"
	"github.com/gviegas/ofxhost/property"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render DIR PARAMS_JSON",
		Short: "Render a plugin instance configured by a parameter document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0], args[1])
		},
	}
	return cmd
}

func runRender(dir, paramsPath string) error {
	doc, err := paramio.Read(paramsPath)
	if err != nil {
		return err
	}

	h := newHost()
	if _, err := h.LoadBundle(dir, doc.Bundle, ofxc.FetchSuite); err != nil {
		return err
	}
	p, err := h.FindPlugin(doc.Plugin)
	if err != nil {
		return err
	}
	if err := h.Describe(p); err != nil {
		return err
	}
	contextName := doc.Context
	if contextName == "" {
		contextName, err = defaultContext(p)
		if err != nil {
			return err
		}
	}
	ctx, err := h.DescribeInContext(p, contextName)
	if err != nil {
		return err
	}
	inst, err := h.CreateInstance(p, ctx)
	if err != nil {
		return err
	}
	if err := paramio.ApplyParameters(h, inst, doc.Parameters); err != nil {
		return err
	}

	w, hgt := doc.FrameSize.Width, doc.FrameSize.Height
	if err := h.BeginSequenceRender(inst, 0, w, hgt); err != nil {
		return err
	}

	var connected []*host.ClipInstance
	connect := func(name, path string) error {
		ci, err := h.ClipHandle(inst, name)
		if err != nil {
			return err
		}
		img, err := imageio.Read(path)
		if err != nil {
			return err
		}
		if _, err := h.ConnectImage(ci, img.Width, img.Height, img.Pix); err != nil {
			return err
		}
		connected = append(connected, ci)
		return nil
	}

	outPath, ok := doc.ImagePaths.Required[property.ClipOutput]
	if !ok || outPath == "" {
		return fmt.Errorf("render: image_paths.required.%s is required", property.ClipOutput)
	}
	for name, path := range doc.ImagePaths.Required {
		if name == property.ClipOutput {
			continue
		}
		if path == "" {
			return fmt.Errorf("render: image_paths.required.%s must not be empty", name)
		}
		if err := connect(name, path); err != nil {
			return err
		}
	}
	for name, path := range doc.ImagePaths.Optional {
		if path == nil || *path == "" {
			continue
		}
		if err := connect(name, *path); err != nil {
			return err
		}
	}

	outClip, err := h.ClipHandle(inst, property.ClipOutput)
	if err != nil {
		return err
	}
	outBuf := make([]byte, 4*w*hgt)
	if _, err := h.ConnectBuffer(outClip, w, hgt, outBuf); err != nil {
		return err
	}

	if err := h.Render(inst, 0, w, hgt); err != nil {
		return err
	}
	if err := h.EndSequenceRender(inst, 0, w, hgt); err != nil {
		return err
	}
	for _, ci := range connected {
		_ = h.Disconnect(ci)
	}
	_ = h.Disconnect(outClip)
	if err := h.DestroyInstance(inst); err != nil {
		return err
	}

	return imageio.Write(outPath, &imageio.Image{Width: w, Height: hgt, Pix: outBuf})
}
