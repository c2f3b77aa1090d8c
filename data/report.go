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
	"github.com/rs/zerolog"
)

// ValidationReport summarizes the data quality checks run against the
// integrated dataset. MissingValues carries an entry for every column,
// zero counts included; NegativeValues covers the revenue and ebitda
// columns.
type ValidationReport struct {
	RunID              string         `json:"run_id"`
	Source             string         `json:"source"`
	GeneratedAt        Timestamp      `json:"generated_at"`
	TotalRecords       int            `json:"total_records"`
	MissingValues      map[string]int `json:"missing_values"`
	DuplicateCompanies int            `json:"duplicate_companies"`
	NegativeValues     map[string]int `json:"negative_values"`
	DataQualityScore   float64        `json:"data_quality_score"`
}

// Clean reports whether the run surfaced no findings at all.
func (report *ValidationReport) Clean() bool {
	for _, count := range report.MissingValues {
		if count > 0 {
			return false
		}
	}

	for _, count := range report.NegativeValues {
		if count > 0 {
			return false
		}
	}

	return report.DuplicateCompanies == 0
}

func (report *ValidationReport) MarshalZerologObject(e *zerolog.Event) {
	e.Str("RunID", report.RunID)
	e.Int("TotalRecords", report.TotalRecords)
	e.Int("DuplicateCompanies", report.DuplicateCompanies)
	e.Float64("DataQualityScore", report.DataQualityScore)
}
