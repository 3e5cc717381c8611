package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/limaJavier/classpicker/pkg/config"
	"github.com/limaJavier/classpicker/pkg/logger"
	"github.com/limaJavier/classpicker/pkg/model"
	"github.com/limaJavier/classpicker/pkg/worker"
)

// app holds what every subcommand needs once the persistent flags are parsed
type app struct {
	cfg      *config.Config
	options  model.Options
	logger   *zap.Logger
	registry *prometheus.Registry

	configFile    string
	logLevel      string
	datasetSource string
	selectionFile string
	outFile       string
	metrics       bool
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "classpicker",
		Short: "Finds low-overlap class sections and reports timetable conflicts.",
		Long: `classpicker reads a dataset of subjects, sections and weekly time blocks, then either
builds the conflict table of a selection or picks one section per subject so that the
chosen sections overlap as little as possible.`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (json, yaml or env)")
	rootCmd.PersistentFlags().StringVarP(&a.logLevel, "loglevel", "l", "", "Set log level. Available: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVarP(&a.datasetSource, "dataset", "d", "", "Path or http(s) URL of the dataset json")
	rootCmd.PersistentFlags().StringVarP(&a.selectionFile, "selection", "s", "", "Path to the selection json; an empty selection is used when missing")
	rootCmd.PersistentFlags().StringVarP(&a.outFile, "out", "o", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	rootCmd.PersistentFlags().BoolVar(&a.metrics, "metrics", false, "Log the collected request metrics on exit")
	_ = rootCmd.MarkPersistentFlagRequired("dataset")

	rootCmd.AddCommand(newTableCommand(a), newAutoCommand(a))
	return rootCmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	a.cfg = cfg

	if a.options, err = cfg.Options(); err != nil {
		return err
	}
	if a.logger, err = logger.New(cfg); err != nil {
		return fmt.Errorf("cannot build logger: %w", err)
	}
	a.registry = prometheus.NewRegistry()
	return nil
}

func (a *app) close() {
	if a.logger == nil {
		return
	}
	if a.metrics {
		a.logMetrics()
	}
	_ = a.logger.Sync()
}

func (a *app) logMetrics() {
	families, err := a.registry.Gather()
	if err != nil {
		a.logger.Sugar().Warnw("cannot gather metrics", "error", err)
		return
	}
	for _, family := range families {
		a.logger.Sugar().Infow("metric",
			"name", family.GetName(),
			"series", len(family.GetMetric()),
		)
	}
}

// submit loads the dataset, runs the request on a worker and returns its response
func (a *app) submit(ctx context.Context, build func(selection model.Selection) worker.Request) (worker.Response, error) {
	dataset, err := loadDataset(ctx, a.datasetSource, a.cfg.Fetch, a.logger)
	if err != nil {
		return worker.Response{}, err
	}
	selection, err := loadSelection(a.selectionFile)
	if err != nil {
		return worker.Response{}, err
	}

	scheduler, err := model.NewScheduler(dataset, a.options)
	if err != nil {
		return worker.Response{}, err
	}
	w, err := worker.New(scheduler, worker.Config{Logger: a.logger, Registerer: a.registry})
	if err != nil {
		return worker.Response{}, err
	}
	w.Start(ctx)
	defer w.Stop()

	request := build(selection)
	a.logger.Sugar().Infow("submitting request", "id", request.RequestID(), "kind", request.Kind(), "dataset", dataset.Title)

	response, err := w.Submit(ctx, request)
	if err != nil {
		return worker.Response{}, err
	}
	return response, response.Err
}

func loadSelection(file string) (model.Selection, error) {
	if file == "" {
		return model.Selection{}, nil
	}
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read selection file: %w", err)
	}

	var selection model.Selection
	if err := json.Unmarshal(bytes, &selection); err != nil {
		return nil, fmt.Errorf("cannot parse selection file: %w", err)
	}
	return lo.Ternary(selection == nil, model.Selection{}, selection), nil
}

// write marshals output into json and writes it to the output file, or to the Standard Output when there is none
func (a *app) write(cmd *cobra.Command, output any) error {
	bytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("an error occurred while building output json: %w", err)
	}

	if a.outFile == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bytes))
		return err
	}
	if err := os.WriteFile(a.outFile, bytes, 0666); err != nil {
		return fmt.Errorf("an error occurred while writing to the output file: %w", err)
	}
	return nil
}
