package main

import (
	"fmt"

	"github.com/quotefix/quotefix"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of quotefix",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quotefix version %s\n", quotefix.Version)
		},
	}
}
