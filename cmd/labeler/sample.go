package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/labeler/internal/source"
	"github.com/idilsaglam/labeler/internal/ui"
)

func (a *app) newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print the items a session would start with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := source.Load(a.cfg.Input.Path, a.cfg.Input.SampleSize, a.cfg.Input.Seed)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(names))
			for i, n := range names {
				rows = append(rows, []string{strconv.Itoa(i + 1), n})
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Table([]string{"#", "Item"}, rows, []ui.Align{ui.AlignRight, ui.AlignLeft}))
			return nil
		},
	}
}
