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
package fx

import (
	"sort"
	"strings"

	"github.com/JohanThomas16/valucompany-data-integration/data"
	"github.com/alphadose/haxmap"
	"github.com/spf13/viper"
)

// defaultRates are the exchange rates to USD for the countries covered by
// the private market feed. Countries not listed here convert at 1.0.
var defaultRates = map[string]float64{
	"Germany": 1.07,
	"USA":     1.0,
	"India":   0.012,
	"UK":      1.21,
	"Brazil":  0.20,
}

// DefaultRates returns a copy of the built-in country rate map.
func DefaultRates() map[string]float64 {
	rates := make(map[string]float64, len(defaultRates))
	for country, rate := range defaultRates {
		rates[country] = rate
	}

	return rates
}

// RateTable converts local-currency amounts into a single target currency.
// It is immutable once constructed and safe for concurrent readers. Country
// lookup is case-insensitive; viper lowercases TOML table keys, so rate
// overrides read from config would otherwise never match.
type RateTable struct {
	target    string
	rates     *haxmap.Map[string, float64]
	countries []string
}

// NewRateTable builds a rate table for the given target currency.
func NewRateTable(target string, rates map[string]float64) *RateTable {
	table := &RateTable{
		target:    target,
		rates:     haxmap.New[string, float64](),
		countries: make([]string, 0, len(rates)),
	}

	for country, rate := range rates {
		table.rates.Set(strings.ToLower(country), rate)
		table.countries = append(table.countries, country)
	}

	sort.Strings(table.countries)
	return table
}

// FromConfig builds a rate table from the default rates merged with any
// overrides in the [rates] config table, targeting
// pipeline.target_currency.
func FromConfig() *RateTable {
	rates := DefaultRates()

	canonical := make(map[string]string, len(rates))
	for country := range rates {
		canonical[strings.ToLower(country)] = country
	}

	for country := range viper.GetStringMap("rates") {
		rate := viper.GetFloat64("rates." + country)
		if name, ok := canonical[strings.ToLower(country)]; ok {
			rates[name] = rate
		} else {
			rates[country] = rate
		}
	}

	target := viper.GetString("pipeline.target_currency")
	if target == "" {
		target = data.DefaultTargetCurrency
	}

	return NewRateTable(target, rates)
}

// Convert returns amount expressed in the target currency. Unmapped
// countries convert at the identity rate.
func (table *RateTable) Convert(amount float64, country string) float64 {
	return amount * table.Rate(country)
}

// Rate returns the conversion rate for country, or 1.0 when unmapped.
func (table *RateTable) Rate(country string) float64 {
	if rate, ok := table.rates.Get(strings.ToLower(country)); ok {
		return rate
	}

	return 1.0
}

// Target returns the currency this table converts into.
func (table *RateTable) Target() string {
	return table.target
}

// Countries returns the mapped country names in sorted order.
func (table *RateTable) Countries() []string {
	countries := make([]string, len(table.countries))
	copy(countries, table.countries)
	return countries
}
