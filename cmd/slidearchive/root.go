package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "slidearchive",
		Short: "Slide Deck Archive: upload, manage and view Google Slides decks",
		Long: `slidearchive runs a small dashboard for archiving Google Slides embed links.

Usage:
  slidearchive [serve]
  slidearchive token --subject <name> [--ttl 720h]`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.AddCommand(newServeCmd(), newTokenCmd())
	return root
}
