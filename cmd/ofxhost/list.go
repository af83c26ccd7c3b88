package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gviegas/ofxhost/ofxc"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list DIR BUNDLE",
		Short: "List the plugin identifiers a bundle exports",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args[0], args[1])
		},
	}
	return cmd
}

func runList(dir, bundle string) error {
	h := newHost()
	b, err := h.LoadBundle(dir, bundle, ofxc.FetchSuite)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(b.Plugins))
	for id := range b.Plugins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}
