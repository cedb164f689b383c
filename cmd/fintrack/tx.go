package main

import (
	"github.com/spf13/cobra"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Record, delete, and list transactions",
	}

	cmd.AddCommand(txAddCmd())
	cmd.AddCommand(txDeleteCmd())
	cmd.AddCommand(txListCmd())

	return cmd
}
