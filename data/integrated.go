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

// IntegratedRecord joins a normalized private row with its industry
// benchmark. Pointer fields are nil when the row had no benchmark match or
// when the private side could not produce the value (zero-revenue margin);
// they serialize as empty CSV cells, JSON null, and parquet null. Field
// order is the artifact column order. LastUpdated and LastUpdatedStr carry
// the same instant; the string form exists for the parquet writer.
type IntegratedRecord struct {
	CompanyName              string    `csv:"company_name" json:"company_name" parquet:"name=company_name, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Industry                 string    `csv:"industry" json:"industry" parquet:"name=industry, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Country                  string    `csv:"country" json:"country" parquet:"name=country, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	FiscalYear               int       `csv:"fiscal_year" json:"fiscal_year" parquet:"name=fiscal_year, type=INT32"`
	Revenue                  float64   `csv:"revenue" json:"revenue" parquet:"name=revenue, type=DOUBLE"`
	EBITDA                   float64   `csv:"ebitda" json:"ebitda" parquet:"name=ebitda, type=DOUBLE"`
	EBITDAMargin             *float64  `csv:"ebitda_margin" json:"ebitda_margin" parquet:"name=ebitda_margin, type=DOUBLE, repetitiontype=OPTIONAL"`
	ValuationMultiple        float64   `csv:"valuation_multiple" json:"valuation_multiple" parquet:"name=valuation_multiple, type=DOUBLE"`
	AverageMargin            *float64  `csv:"average_margin" json:"average_margin" parquet:"name=average_margin, type=DOUBLE, repetitiontype=OPTIONAL"`
	SectorGrowthRate         *float64  `csv:"sector_growth_rate" json:"sector_growth_rate" parquet:"name=sector_growth_rate, type=DOUBLE, repetitiontype=OPTIONAL"`
	AverageValuationMultiple *float64  `csv:"average_valuation_multiple" json:"average_valuation_multiple" parquet:"name=average_valuation_multiple, type=DOUBLE, repetitiontype=OPTIONAL"`
	MarketSizeBillions       *float64  `csv:"market_size_billions" json:"market_size_billions" parquet:"name=market_size_billions, type=DOUBLE, repetitiontype=OPTIONAL"`
	DataSource               string    `csv:"data_source" json:"data_source" parquet:"name=data_source, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Currency                 string    `csv:"currency" json:"currency" parquet:"name=currency, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Units                    string    `csv:"units" json:"units" parquet:"name=units, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	LastUpdated              Timestamp `csv:"last_updated" json:"last_updated"`
	LastUpdatedStr           string    `csv:"-" json:"-" parquet:"name=last_updated, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	ValuationVsSectorAvg     *float64  `csv:"valuation_vs_sector_avg" json:"valuation_vs_sector_avg" parquet:"name=valuation_vs_sector_avg, type=DOUBLE, repetitiontype=OPTIONAL"`
	MarginVsSectorAvg        *float64  `csv:"margin_vs_sector_avg" json:"margin_vs_sector_avg" parquet:"name=margin_vs_sector_avg, type=DOUBLE, repetitiontype=OPTIONAL"`
}

// IntegratedColumns returns the canonical column names in artifact order.
// The validator sizes its cell grid from this list.
func IntegratedColumns() []string {
	return []string{
		"company_name",
		"industry",
		"country",
		"fiscal_year",
		"revenue",
		"ebitda",
		"ebitda_margin",
		"valuation_multiple",
		"average_margin",
		"sector_growth_rate",
		"average_valuation_multiple",
		"market_size_billions",
		"data_source",
		"currency",
		"units",
		"last_updated",
		"valuation_vs_sector_avg",
		"margin_vs_sector_avg",
	}
}

func (record *IntegratedRecord) MarshalZerologObject(e *zerolog.Event) {
	e.Str("CompanyName", record.CompanyName)
	e.Str("Industry", record.Industry)
	e.Float64("Revenue", record.Revenue)
	e.Float64("EBITDA", record.EBITDA)
	e.Bool("HasBenchmark", record.AverageMargin != nil)
}
