package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/dataviewer/internal/document"
	"github.com/vango-dev/dataviewer/pkg/cell"
	"github.com/vango-dev/dataviewer/pkg/ui"
)

func renderersCmd(a *app) *cobra.Command {
	var kinds bool

	cmd := &cobra.Command{
		Use:   "renderers",
		Short: "List the table cell renderers",
		Long: `List the cell renderers tables dispatch to, highest level first.

A cell is rendered by the first renderer that accepts its value.
DefaultRenderer accepts everything and is always last.

Examples:
  dataviewer renderers
  dataviewer renderers --kinds`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if kinds {
				for _, k := range document.Kinds() {
					fmt.Println(k)
				}
				return nil
			}

			s := ui.NewSession(ui.WithLogger(a.logger))
			for _, r := range s.Cells().Renderers() {
				fmt.Printf("%s %s  %s\n",
					styleName.Render(fmt.Sprintf("%-16s", cell.Name(r))),
					styleMuted.Render(fmt.Sprintf("level %-3d", r.Level())),
					cell.MediaOf(r),
				)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&kinds, "kinds", false, "List document node kinds instead")

	return cmd
}
