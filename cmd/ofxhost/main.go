// Command ofxhost loads OFX 1.4 image-effect plugin bundles from disk
// and drives them through the describe/instantiate/render sequence
// (spec.md §6 "CLI surface"), without implementing any of that
// sequence itself — every subcommand is a thin driver over the host,
// ofxc and paramio/imageio packages.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/gviegas/ofxhost/host"
	"github.com/gviegas/ofxhost/ofxc"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ofxhost",
		Short:         "Load and drive OFX 1.4 image-effect plugins",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListCmd(), newParamsCmd(), newFilterCmd(), newRenderCmd())
	return root
}

// newHost builds a Host wired to the real dlopen/cgo ABI boundary. Each
// subcommand gets a fresh one; nothing in this CLI process keeps a host
// alive across commands.
func newHost() *host.Host {
	return ofxc.NewHost(log.New(os.Stderr, "ofxhost: ", 0))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ofxhost:", err)
		os.Exit(1)
	}
}
