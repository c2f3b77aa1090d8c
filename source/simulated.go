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
package source

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/JohanThomas16/valucompany-data-integration/data"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	DefaultSeed      = 42
	DefaultCompanies = 10
)

// Industries is the canonical industry universe. Benchmarks carry one row
// per entry; simulated companies draw from a prefix of this list.
var Industries = []string{
	"Technology",
	"Healthcare",
	"Financial Services",
	"Consumer Goods",
	"Energy",
	"Manufacturing",
	"Retail",
	"Telecommunications",
	"Real Estate",
	"Transportation",
}

// Countries lists the covered countries together with their local currency
// label. Order matters for reproducible draws.
var Countries = []struct {
	Name     string
	Currency string
}{
	{"Germany", "EUR"},
	{"USA", "USD"},
	{"India", "INR"},
	{"UK", "GBP"},
	{"Brazil", "BRL"},
}

// Simulated generates a deterministic batch of private market and industry
// benchmark records. Each dataset is drawn from a fresh generator with the
// configured seed, so the same seed always yields the same batch.
type Simulated struct{}

func (sim *Simulated) Name() string {
	return "Simulated"
}

func (sim *Simulated) ConfigDescription() map[string]string {
	return map[string]string{
		"simulated.seed":      "What seed should the random generator use?",
		"simulated.companies": "How many companies should be simulated?",
	}
}

func (sim *Simulated) Description() string {
	return `Generates a reproducible sample of private market transactions and industry benchmarks. Stands in for API calls or database queries in demos and tests.`
}

func (sim *Simulated) Fetch(ctx context.Context) ([]*data.PrivateRecord, []*data.BenchmarkRecord, error) {
	logger := zerolog.Ctx(ctx)

	seed := viper.GetInt64("simulated.seed")
	if seed == 0 {
		seed = DefaultSeed
	}

	numCompanies := viper.GetInt("simulated.companies")
	if numCompanies <= 0 {
		numCompanies = DefaultCompanies
	}

	logger.Debug().Int64("Seed", seed).Int("NumCompanies", numCompanies).Msg("simulating batch")

	private := sim.privateRecords(seed, numCompanies)
	benchmarks := sim.benchmarkRecords(seed)

	return private, benchmarks, nil
}

// privateRecords draws one column at a time so adding a column never
// perturbs the values of earlier ones for a given seed.
func (sim *Simulated) privateRecords(seed int64, numCompanies int) []*data.PrivateRecord {
	rng := rand.New(rand.NewSource(seed))

	pool := Industries
	if numCompanies < len(pool) {
		pool = pool[:numCompanies]
	}

	industries := make([]string, numCompanies)
	for idx := range industries {
		industries[idx] = pool[rng.Intn(len(pool))]
	}

	revenues := uniformDraws(rng, 50, 500, numCompanies)
	ebitdas := uniformDraws(rng, 10, 100, numCompanies)
	multiples := uniformDraws(rng, 6, 16, numCompanies)

	countries := make([]string, numCompanies)
	for idx := range countries {
		countries[idx] = Countries[rng.Intn(len(Countries))].Name
	}

	// currency labels come from an independent country draw and therefore
	// do not necessarily agree with the country column
	currencies := make([]string, numCompanies)
	for idx := range currencies {
		currencies[idx] = Countries[rng.Intn(len(Countries))].Currency
	}

	records := make([]*data.PrivateRecord, numCompanies)
	for idx := range records {
		records[idx] = &data.PrivateRecord{
			CompanyName:       fmt.Sprintf("Company_%c", rune('A'+idx)),
			Industry:          industries[idx],
			RevenueLocal:      revenues[idx],
			EBITDALocal:       ebitdas[idx],
			ValuationMultiple: multiples[idx],
			Country:           countries[idx],
			FiscalYear:        2024,
			Currency:          currencies[idx],
		}
	}

	return records
}

func (sim *Simulated) benchmarkRecords(seed int64) []*data.BenchmarkRecord {
	rng := rand.New(rand.NewSource(seed))

	margins := uniformDraws(rng, 15, 40, len(Industries))
	growthRates := uniformDraws(rng, 2, 12, len(Industries))
	multiples := uniformDraws(rng, 7, 14, len(Industries))
	marketSizes := uniformDraws(rng, 10, 500, len(Industries))

	records := make([]*data.BenchmarkRecord, len(Industries))
	for idx, industry := range Industries {
		records[idx] = &data.BenchmarkRecord{
			Industry:                 industry,
			AverageMargin:            margins[idx],
			SectorGrowthRate:         growthRates[idx],
			AverageValuationMultiple: multiples[idx],
			MarketSizeBillions:       marketSizes[idx],
		}
	}

	return records
}

func uniformDraws(rng *rand.Rand, low, high float64, n int) []float64 {
	draws := make([]float64, n)
	for idx := range draws {
		draws[idx] = low + rng.Float64()*(high-low)
	}

	return draws
}
