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
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	ErrMissingCompanyName = errors.New("missing company_name")
	ErrMissingIndustry    = errors.New("missing industry")
	ErrMissingCountry     = errors.New("missing country")
	ErrMissingFiscalYear  = errors.New("missing fiscal_year")
)

// PrivateRecord is a raw private-market transaction row in the schema data
// sources deliver it. Currency is a display label reported by the source;
// conversion is keyed on Country, not this field.
type PrivateRecord struct {
	CompanyName       string  `csv:"company_name" json:"company_name"`
	Industry          string  `csv:"industry" json:"industry"`
	RevenueLocal      float64 `csv:"revenue_local" json:"revenue_local"`
	EBITDALocal       float64 `csv:"ebitda_local" json:"ebitda_local"`
	ValuationMultiple float64 `csv:"valuation_multiple" json:"valuation_multiple"`
	Country           string  `csv:"country" json:"country"`
	FiscalYear        int     `csv:"fiscal_year" json:"fiscal_year"`
	Currency          string  `csv:"currency" json:"currency"`
}

// Validate reports whether the row carries the identity fields the pipeline
// requires. Negative or zero financials are not rejected here; the validator
// flags them on the integrated table instead.
func (record *PrivateRecord) Validate() error {
	if record.CompanyName == "" {
		return fmt.Errorf("private record: %w", ErrMissingCompanyName)
	}

	if record.Industry == "" {
		return fmt.Errorf("private record %q: %w", record.CompanyName, ErrMissingIndustry)
	}

	if record.Country == "" {
		return fmt.Errorf("private record %q: %w", record.CompanyName, ErrMissingCountry)
	}

	if record.FiscalYear == 0 {
		return fmt.Errorf("private record %q: %w", record.CompanyName, ErrMissingFiscalYear)
	}

	return nil
}

func (record *PrivateRecord) MarshalZerologObject(e *zerolog.Event) {
	e.Str("CompanyName", record.CompanyName)
	e.Str("Industry", record.Industry)
	e.Str("Country", record.Country)
	e.Int("FiscalYear", record.FiscalYear)
}

// NormalizedPrivateRecord is the canonical private schema: target currency,
// target units, 2-decimal precision. EBITDAMargin is nil when the rounded
// revenue is zero.
type NormalizedPrivateRecord struct {
	CompanyName       string
	Industry          string
	Country           string
	FiscalYear        int
	Revenue           float64
	EBITDA            float64
	EBITDAMargin      *float64
	ValuationMultiple float64
}
