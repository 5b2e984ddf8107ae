package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kayworks/etdxgen/internal/etdx"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect FILE.etdx",
		Short: "Show the pages and photo placements inside a generated archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := etdx.Inspect(args[0])
			if err != nil {
				return err
			}
			fmt.Print(info.Summary())
			return nil
		},
	}
	return cmd
}
