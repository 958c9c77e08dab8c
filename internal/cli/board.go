package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/wordgrid/internal/model"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print an empty board",
		Long: `Print an empty board for a layout.

Bonus cells are marked ' for double letter, " for triple letter,
- for double word and = for triple word.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := model.LayoutByName(cfg.Layout)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(newBoardView(model.NewBoardFromLayout("", layout)))
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Layout, "layout", cfg.Layout, "Board layout: standard, plain (env: WORDGRID_LAYOUT)")

	return cmd
}
