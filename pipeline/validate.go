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
package pipeline

import (
	"github.com/JohanThomas16/valucompany-data-integration/data"
)

// Validate computes data quality diagnostics over the integrated table.
// It is pure: the input is never mutated. MissingValues carries every
// column, zero counts included; only nullable columns can accumulate a
// nonzero count. Run metadata on the report is left for the caller.
func Validate(records []*data.IntegratedRecord) *data.ValidationReport {
	columns := data.IntegratedColumns()

	missing := make(map[string]int, len(columns))
	for _, column := range columns {
		missing[column] = 0
	}

	negative := map[string]int{
		"revenue": 0,
		"ebitda":  0,
	}

	seen := make(map[string]bool, len(records))
	duplicates := 0

	for _, record := range records {
		if record.EBITDAMargin == nil {
			missing["ebitda_margin"]++
		}
		if record.AverageMargin == nil {
			missing["average_margin"]++
		}
		if record.SectorGrowthRate == nil {
			missing["sector_growth_rate"]++
		}
		if record.AverageValuationMultiple == nil {
			missing["average_valuation_multiple"]++
		}
		if record.MarketSizeBillions == nil {
			missing["market_size_billions"]++
		}
		if record.ValuationVsSectorAvg == nil {
			missing["valuation_vs_sector_avg"]++
		}
		if record.MarginVsSectorAvg == nil {
			missing["margin_vs_sector_avg"]++
		}

		if record.Revenue < 0 {
			negative["revenue"]++
		}
		if record.EBITDA < 0 {
			negative["ebitda"]++
		}

		// duplicated semantics: first occurrence free, repeats counted
		if seen[record.CompanyName] {
			duplicates++
		}
		seen[record.CompanyName] = true
	}

	missingCells := 0
	for _, count := range missing {
		missingCells += count
	}

	return &data.ValidationReport{
		TotalRecords:       len(records),
		MissingValues:      missing,
		DuplicateCompanies: duplicates,
		NegativeValues:     negative,
		DataQualityScore:   qualityScore(len(records)*len(columns), missingCells),
	}
}

// qualityScore returns the percentage of non-missing cells. An empty table
// has no cells to fault, so it scores a full 100.0 instead of dividing by
// zero.
func qualityScore(totalCells, missingCells int) float64 {
	if totalCells == 0 {
		return 100.0
	}

	return data.Round2(float64(totalCells-missingCells) / float64(totalCells) * 100)
}
