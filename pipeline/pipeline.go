// Copyright 2025
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pipeline implements the normalization and integration pipeline:
// currency conversion, schema normalization, a left join with derived
// delta metrics, and a data quality validator.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JohanThomas16/valucompany-data-integration/backblaze"
	"github.com/JohanThomas16/valucompany-data-integration/data"
	"github.com/JohanThomas16/valucompany-data-integration/export"
	"github.com/JohanThomas16/valucompany-data-integration/fx"
	"github.com/JohanThomas16/valucompany-data-integration/source"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrNoSource = errors.New("config must name a data source")
	ErrNoRates  = errors.New("config must carry a rate table")
)

// Config fixes a pipeline's collaborators and targets for the lifetime of
// the run. Rates and TargetUnit are immutable once the pipeline is built.
type Config struct {
	Source       source.Source
	Rates        *fx.RateTable
	TargetUnit   string
	WriteParquet bool
	Archive      bool
}

// Pipeline orchestrates one batch run end to end. It is the only stateful
// component; the stages it sequences are pure functions.
type Pipeline struct {
	cfg     Config
	summary data.RunSummary
}

// New validates cfg and returns a pipeline ready to run. A missing target
// unit falls back to the default.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Source == nil {
		return nil, ErrNoSource
	}

	if cfg.Rates == nil {
		return nil, ErrNoRates
	}

	if cfg.TargetUnit == "" {
		cfg.TargetUnit = data.DefaultTargetUnit
	}

	return &Pipeline{cfg: cfg}, nil
}

// Summary returns the bookkeeping of the most recent Run.
func (pipeline *Pipeline) Summary() data.RunSummary {
	return pipeline.summary
}

// Run executes the pipeline: fetch raw data, snapshot it to inputDir,
// reject malformed rows, normalize, integrate, validate, and write the
// integrated table and validation report to outputDir. Fetch and write
// failures end the run; rejected rows are logged, counted, and skipped.
func (pipeline *Pipeline) Run(ctx context.Context, outputDir, inputDir string) (records []*data.IntegratedRecord, report *data.ValidationReport, err error) {
	logger := zerolog.Ctx(ctx)

	pipeline.summary = data.RunSummary{
		RunID:     uuid.New(),
		Source:    pipeline.cfg.Source.Name(),
		StartTime: time.Now(),
	}

	defer func() {
		pipeline.summary.EndTime = time.Now()
		if err == nil {
			pipeline.summary.Status = data.RunSuccess
		} else {
			pipeline.summary.Status = data.RunFailed
		}
	}()

	logger.Info().Str("Source", pipeline.summary.Source).Msg("collecting data")

	privateRaw, benchmarksRaw, err := pipeline.cfg.Source.Fetch(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch from %s: %w", pipeline.summary.Source, err)
	}

	pipeline.summary.NumPrivate = len(privateRaw)
	pipeline.summary.NumBenchmarks = len(benchmarksRaw)

	logger.Info().Int("NumPrivate", len(privateRaw)).Int("NumBenchmarks", len(benchmarksRaw)).Msg("collected raw records")

	if _, err = export.WriteCSV(privateRaw, inputDir, export.SnapshotFilename(data.PrivateDatasetName)); err != nil {
		return nil, nil, err
	}

	if _, err = export.WriteCSV(benchmarksRaw, inputDir, export.SnapshotFilename(data.BenchmarkDatasetName)); err != nil {
		return nil, nil, err
	}

	private, benchmarks := pipeline.rejectInvalid(ctx, privateRaw, benchmarksRaw)

	logger.Info().Msg("normalizing private market data")
	normalized := NormalizePrivate(private, pipeline.cfg.Rates)

	logger.Info().Msg("normalizing industry benchmark data")
	normalizedBenchmarks := NormalizeBenchmarks(benchmarks)

	logger.Info().Msg("integrating datasets")
	now := time.Now()
	records = Integrate(normalized, normalizedBenchmarks, pipeline.cfg.Rates.Target(), pipeline.cfg.TargetUnit, now)
	pipeline.summary.NumIntegrated = len(records)

	logger.Info().Int("NumIntegrated", len(records)).Msg("validating data quality")
	report = Validate(records)
	report.RunID = pipeline.summary.RunID.String()
	report.Source = pipeline.summary.Source
	report.GeneratedAt = data.Timestamp{Time: now}
	pipeline.summary.QualityScore = report.DataQualityScore

	logger.Info().Float64("DataQualityScore", report.DataQualityScore).Int("DuplicateCompanies", report.DuplicateCompanies).Msg("saving integrated dataset")

	csvFile, err := export.WriteCSV(records, outputDir, export.IntegratedCSVName)
	if err != nil {
		return nil, nil, err
	}

	reportFile, err := export.WriteReport(report, outputDir)
	if err != nil {
		return nil, nil, err
	}

	artifacts := []string{csvFile, reportFile}

	if pipeline.cfg.WriteParquet {
		parquetFile, parquetErr := export.WriteParquet(records, outputDir)
		if parquetErr != nil {
			return nil, nil, parquetErr
		}

		artifacts = append(artifacts, parquetFile)
	}

	pipeline.archive(ctx, artifacts)

	logger.Info().Int("NumIntegrated", len(records)).Float64("QualityScore", report.DataQualityScore).Msg("pipeline completed successfully")

	return records, report, nil
}

// rejectInvalid drops malformed raw rows so they cannot corrupt downstream
// aggregates. Each rejection is logged and counted; the batch continues
// with the remaining rows.
func (pipeline *Pipeline) rejectInvalid(ctx context.Context, private []*data.PrivateRecord, benchmarks []*data.BenchmarkRecord) ([]*data.PrivateRecord, []*data.BenchmarkRecord) {
	logger := zerolog.Ctx(ctx)

	validPrivate := make([]*data.PrivateRecord, 0, len(private))
	for _, record := range private {
		if err := record.Validate(); err != nil {
			logger.Warn().Err(err).Object("Record", record).Msg("rejecting private record")
			pipeline.summary.NumRejected++
			continue
		}

		validPrivate = append(validPrivate, record)
	}

	validBenchmarks := make([]*data.BenchmarkRecord, 0, len(benchmarks))
	for _, record := range benchmarks {
		if err := record.Validate(); err != nil {
			logger.Warn().Err(err).Object("Record", record).Msg("rejecting benchmark record")
			pipeline.summary.NumRejected++
			continue
		}

		validBenchmarks = append(validBenchmarks, record)
	}

	return validPrivate, validBenchmarks
}

// archive replicates the artifacts to Backblaze when configured. Archival
// failures never fail the run; the artifacts on disk are authoritative.
func (pipeline *Pipeline) archive(ctx context.Context, artifacts []string) {
	logger := zerolog.Ctx(ctx)

	if !pipeline.cfg.Archive {
		return
	}

	if !backblaze.Enabled() {
		logger.Info().Msg("skipping upload to backblaze because backblaze credentials are missing")
		return
	}

	if err := backblaze.Archive(pipeline.summary.RunID.String(), artifacts); err != nil {
		logger.Warn().Err(err).Msg("archiving artifacts to backblaze failed")
	}
}
