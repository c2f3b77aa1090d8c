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
	"sync"

	"github.com/JohanThomas16/valucompany-data-integration/data"
	"github.com/JohanThomas16/valucompany-data-integration/fx"
)

const normalizeWorkers = 4

// NormalizePrivate converts each raw private record to the target currency
// basis and derives the canonical schema. Rows are fanned out to a small
// worker pool; every worker writes its result by index, so output order
// always equals input order.
func NormalizePrivate(records []*data.PrivateRecord, rates *fx.RateTable) []*data.NormalizedPrivateRecord {
	normalized := make([]*data.NormalizedPrivateRecord, len(records))

	jobs := make(chan int, len(records))

	var wg sync.WaitGroup
	for worker := 0; worker < normalizeWorkers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				normalized[idx] = normalizeRecord(records[idx], rates)
			}
		}()
	}

	for idx := range records {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return normalized
}

// normalizeRecord converts one row. Revenue, ebitda, and the valuation
// multiple are rounded first; the margin is derived from the rounded
// values and rounded again. A zero rounded revenue leaves the margin nil
// instead of dividing.
func normalizeRecord(record *data.PrivateRecord, rates *fx.RateTable) *data.NormalizedPrivateRecord {
	revenue := data.Round2(rates.Convert(record.RevenueLocal, record.Country))
	ebitda := data.Round2(rates.Convert(record.EBITDALocal, record.Country))

	normalized := &data.NormalizedPrivateRecord{
		CompanyName:       record.CompanyName,
		Industry:          record.Industry,
		Country:           record.Country,
		FiscalYear:        record.FiscalYear,
		Revenue:           revenue,
		EBITDA:            ebitda,
		ValuationMultiple: data.Round2(record.ValuationMultiple),
	}

	if revenue != 0 {
		margin := data.Round2(ebitda / revenue * 100)
		normalized.EBITDAMargin = &margin
	}

	return normalized
}

// NormalizeBenchmarks rounds the four benchmark metrics to two decimals;
// identity otherwise. Input records are not mutated.
func NormalizeBenchmarks(records []*data.BenchmarkRecord) []*data.BenchmarkRecord {
	normalized := make([]*data.BenchmarkRecord, len(records))

	for idx, record := range records {
		normalized[idx] = &data.BenchmarkRecord{
			Industry:                 record.Industry,
			AverageMargin:            data.Round2(record.AverageMargin),
			SectorGrowthRate:         data.Round2(record.SectorGrowthRate),
			AverageValuationMultiple: data.Round2(record.AverageValuationMultiple),
			MarketSizeBillions:       data.Round2(record.MarketSizeBillions),
		}
	}

	return normalized
}
