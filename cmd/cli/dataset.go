package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/limaJavier/classpicker/pkg/config"
	"github.com/limaJavier/classpicker/pkg/model"
)

// loadDataset reads the dataset from a local file, or downloads it when source is an http(s) URL
func loadDataset(ctx context.Context, source string, fetch config.FetchConfig, log *zap.Logger) (model.Dataset, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		dataset, err := model.DatasetFromJson(source)
		if err != nil {
			return model.Dataset{}, fmt.Errorf("cannot parse dataset file: %w", err)
		}
		return dataset, nil
	}

	bytes, err := download(ctx, source, fetch, log)
	if err != nil {
		return model.Dataset{}, err
	}
	dataset, err := model.DatasetFromBytes(bytes)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("cannot parse dataset from %v: %w", source, err)
	}
	return dataset, nil
}

func download(ctx context.Context, url string, fetch config.FetchConfig, log *zap.Logger) ([]byte, error) {
	client := retryablehttp.NewClient()
	client.Logger = leveledLogger{log.Sugar()}
	client.RetryMax = fetch.Retries
	client.HTTPClient.Timeout = fetch.Timeout

	request, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("cannot download dataset: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot download dataset: %v returned %v", url, response.Status)
	}
	return io.ReadAll(response.Body)
}

// leveledLogger routes retry logs to zap
type leveledLogger struct {
	sugar *zap.SugaredLogger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}
