package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/limaJavier/classpicker/pkg/model"
	"github.com/limaJavier/classpicker/pkg/worker"
)

type autoOutput struct {
	Chosen    []model.ChosenSection `json:"chosen"`
	Selection model.Selection       `json:"selection"`
	Overlap   float64               `json:"overlap"`
	Count     int                   `json:"count"`
	Index     int                   `json:"index"`
	tableOutput
}

func newAutoCommand(a *app) *cobra.Command {
	var (
		subjects []string
		pinned   []string
		mode     string
		ordinal  int
		full     bool
	)

	autoCmd := &cobra.Command{
		Use:   "auto",
		Short: "Picks one section per subject, minimizing the overlap between them.",
		Long: `Picks one section per subject, minimizing the overlap between them.

Combinations are ranked by ascending overlap and, when a shift is preferred, by the number of
periods falling in that shift. --ordinal selects an alternative from the ranking (0 is the best,
negative values count from the end). Pinned subjects keep their active section.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			search, err := parseSearch(subjects, pinned, mode, ordinal)
			if err != nil {
				return err
			}

			response, err := a.submit(cmd.Context(), func(selection model.Selection) worker.Request {
				return worker.NewAutoScheduleRequest(selection, search)
			})
			if err != nil {
				return err
			}

			result := response.Auto
			if !result.Found {
				a.logger.Sugar().Infow("no combination found", "id", response.ID, "subjects", len(search.Subjects))
				return notFoundError{}
			}

			a.logger.Sugar().Infow("sections chosen",
				"id", response.ID,
				"overlap", result.Overlap,
				"index", result.Index,
				"count", result.Count,
			)
			return a.write(cmd, autoOutput{
				Chosen:    result.Chosen,
				Selection: result.Selection,
				Overlap:   result.Overlap,
				Count:     result.Count,
				Index:     result.Index,
				tableOutput: newTableOutput(model.TableResult{
					Table:             result.Table,
					IsConflict:        result.IsConflict,
					ConflictedPeriods: result.ConflictedPeriods,
				}, full),
			})
		},
	}

	autoCmd.Flags().StringSliceVar(&subjects, "subjects", nil, "Subjects to schedule, as major/subject")
	autoCmd.Flags().StringSliceVar(&pinned, "pin", nil, "Subjects that keep their active section, as major/subject")
	autoCmd.Flags().StringVarP(&mode, "mode", "m", "none", "Shift preference: none, prefer-morning, prefer-afternoon or prefer-evening")
	autoCmd.Flags().IntVar(&ordinal, "ordinal", 0, "Position of the combination to pick from the ranking")
	autoCmd.Flags().BoolVar(&full, "full", false, "Include every date and period of the table in the output")
	_ = autoCmd.MarkFlagRequired("subjects")
	return autoCmd
}

func parseSearch(subjects, pinned []string, mode string, ordinal int) (model.SearchRequest, error) {
	preference, err := model.ParseShiftPreference(mode)
	if err != nil {
		return model.SearchRequest{}, err
	}

	parse := func(texts []string) ([]model.SubjectKey, error) {
		keys := make([]model.SubjectKey, 0, len(texts))
		for _, text := range texts {
			key, err := model.ParseSubjectKey(text)
			if err != nil {
				return nil, err
			}
			keys = append(keys, key)
		}
		return keys, nil
	}

	subjectKeys, err := parse(subjects)
	if err != nil {
		return model.SearchRequest{}, err
	}
	pinnedKeys, err := parse(pinned)
	if err != nil {
		return model.SearchRequest{}, err
	}
	if stray, ok := lo.Find(pinnedKeys, func(key model.SubjectKey) bool { return !lo.Contains(subjectKeys, key) }); ok {
		return model.SearchRequest{}, fmt.Errorf("pinned subject %v must also be listed in --subjects", stray)
	}

	return model.SearchRequest{
		Subjects: subjectKeys,
		Mode:     preference,
		Ordinal:  ordinal,
		Pinned:   pinnedKeys,
	}, nil
}
