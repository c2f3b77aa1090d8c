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
	"fmt"

	"github.com/rs/zerolog"
)

// BenchmarkRecord is an industry benchmark row. Industry is the join key;
// the schema does not force it unique, and the integrator fans out when a
// batch repeats one.
type BenchmarkRecord struct {
	Industry                 string  `csv:"industry" json:"industry"`
	AverageMargin            float64 `csv:"average_margin" json:"average_margin"`
	SectorGrowthRate         float64 `csv:"sector_growth_rate" json:"sector_growth_rate"`
	AverageValuationMultiple float64 `csv:"average_valuation_multiple" json:"average_valuation_multiple"`
	MarketSizeBillions       float64 `csv:"market_size_billions" json:"market_size_billions"`
}

func (record *BenchmarkRecord) Validate() error {
	if record.Industry == "" {
		return fmt.Errorf("benchmark record: %w", ErrMissingIndustry)
	}

	return nil
}

func (record *BenchmarkRecord) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Industry", record.Industry)
	e.Float64("AverageMargin", record.AverageMargin)
	e.Float64("AverageValuationMultiple", record.AverageValuationMultiple)
}
