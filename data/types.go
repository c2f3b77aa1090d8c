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
package data

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// IntegratedDataSource is the provenance label stamped on every
	// integrated row.
	IntegratedDataSource = "Integrated_Private_and_Benchmark"

	DefaultTargetCurrency = "USD"
	DefaultTargetUnit     = "millions"
)

// Display names of the two raw datasets every data source supplies. Snapshot
// artifact filenames are derived from these names.
const (
	PrivateDatasetName   = "Private Market Data"
	BenchmarkDatasetName = "Industry Benchmark Data"
)

type RunStatus int

const (
	RunUnknown RunStatus = iota
	RunSuccess
	RunFailed
)

func (status RunStatus) String() string {
	switch status {
	case RunSuccess:
		return "success"
	case RunFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// RunSummary captures the bookkeeping for a single pipeline run.
type RunSummary struct {
	RunID      uuid.UUID
	Source     string
	StartTime  time.Time
	EndTime    time.Time
	Status     RunStatus
	NumPrivate int
	// NumBenchmarks counts raw benchmark rows, not industries matched.
	NumBenchmarks int
	NumRejected   int
	NumIntegrated int
	QualityScore  float64
}

// Round2 rounds v to 2 decimal places, half away from zero. Every monetary
// and percent field in the canonical schemas carries this precision; derived
// values are rounded again after arithmetic on already-rounded inputs.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
