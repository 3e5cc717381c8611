package main

import (
	"github.com/spf13/cobra"

	"github.com/limaJavier/classpicker/pkg/model"
	"github.com/limaJavier/classpicker/pkg/worker"
)

// tableOutput summarizes a conflict table; the full grid is only included on request
type tableOutput struct {
	IsConflict        bool                 `json:"isConflict"`
	ConflictedPeriods int                  `json:"conflictedPeriods"`
	Conflicts         []model.Cell         `json:"conflicts"`
	Table             *model.ConflictTable `json:"table,omitempty"`
}

func newTableOutput(result model.TableResult, full bool) tableOutput {
	output := tableOutput{
		IsConflict:        result.IsConflict,
		ConflictedPeriods: result.ConflictedPeriods,
		Conflicts:         result.Table.Conflicts(),
	}
	if full {
		output.Table = &result.Table
	}
	return output
}

func newTableCommand(a *app) *cobra.Command {
	var full bool

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "Builds the conflict table of the displayed subjects' active sections.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := a.submit(cmd.Context(), func(selection model.Selection) worker.Request {
				return worker.NewTableRequest(selection)
			})
			if err != nil {
				return err
			}

			a.logger.Sugar().Infow("table built",
				"id", response.ID,
				"conflict", response.Table.IsConflict,
				"conflictedPeriods", response.Table.ConflictedPeriods,
			)
			return a.write(cmd, newTableOutput(*response.Table, full))
		},
	}

	tableCmd.Flags().BoolVar(&full, "full", false, "Include every date and period of the table in the output")
	return tableCmd
}
