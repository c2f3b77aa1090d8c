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
	"time"

	"github.com/JohanThomas16/valucompany-data-integration/data"
)

// Integrate left-joins normalized private records onto benchmarks by
// industry. Every private record yields at least one output row; when
// several benchmarks share an industry the join fans out to one row per
// match, private input order outermost and benchmark input order within.
// Rows without a match carry nil benchmark fields and nil deltas. All rows
// of a batch get the same metadata stamp, with last_updated = now.
func Integrate(private []*data.NormalizedPrivateRecord, benchmarks []*data.BenchmarkRecord, targetCurrency, targetUnit string, now time.Time) []*data.IntegratedRecord {
	byIndustry := make(map[string][]*data.BenchmarkRecord, len(benchmarks))
	for _, benchmark := range benchmarks {
		byIndustry[benchmark.Industry] = append(byIndustry[benchmark.Industry], benchmark)
	}

	stamp := data.Timestamp{Time: now}
	stampStr := now.Format(data.TimeLayout)

	integrated := make([]*data.IntegratedRecord, 0, len(private))

	for _, row := range private {
		matches := byIndustry[row.Industry]
		if len(matches) == 0 {
			integrated = append(integrated, joinRow(row, nil, targetCurrency, targetUnit, stamp, stampStr))
			continue
		}

		for _, benchmark := range matches {
			integrated = append(integrated, joinRow(row, benchmark, targetCurrency, targetUnit, stamp, stampStr))
		}
	}

	return integrated
}

func joinRow(row *data.NormalizedPrivateRecord, benchmark *data.BenchmarkRecord, targetCurrency, targetUnit string, stamp data.Timestamp, stampStr string) *data.IntegratedRecord {
	record := &data.IntegratedRecord{
		CompanyName:       row.CompanyName,
		Industry:          row.Industry,
		Country:           row.Country,
		FiscalYear:        row.FiscalYear,
		Revenue:           row.Revenue,
		EBITDA:            row.EBITDA,
		EBITDAMargin:      row.EBITDAMargin,
		ValuationMultiple: row.ValuationMultiple,
		DataSource:        data.IntegratedDataSource,
		Currency:          targetCurrency,
		Units:             targetUnit,
		LastUpdated:       stamp,
		LastUpdatedStr:    stampStr,
	}

	if benchmark == nil {
		return record
	}

	record.AverageMargin = fptr(benchmark.AverageMargin)
	record.SectorGrowthRate = fptr(benchmark.SectorGrowthRate)
	record.AverageValuationMultiple = fptr(benchmark.AverageValuationMultiple)
	record.MarketSizeBillions = fptr(benchmark.MarketSizeBillions)

	record.ValuationVsSectorAvg = fptr(data.Round2(row.ValuationMultiple - benchmark.AverageValuationMultiple))

	// a zero-revenue private row has no margin, so its delta stays nil
	if row.EBITDAMargin != nil {
		record.MarginVsSectorAvg = fptr(data.Round2(*row.EBITDAMargin - benchmark.AverageMargin))
	}

	return record
}

func fptr(v float64) *float64 {
	return &v
}
