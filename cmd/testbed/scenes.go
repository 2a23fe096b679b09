package main

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/testbed/scenes"
	"github.com/spf13/cobra"
)

func scenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List built-in scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := scenes.Default().Names()
			rows := make([][]string, len(names))
			for i, name := range names {
				key := "-"
				if i < 9 {
					key = strconv.Itoa(i + 1)
				}
				rows[i] = []string{strconv.Itoa(i), key, name}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"INDEX", "KEY", "NAME"}, rows))
			return nil
		},
	}
}
