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
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/JohanThomas16/valucompany-data-integration/data"
	"github.com/JohanThomas16/valucompany-data-integration/fx"
)

// stubSource feeds fixed batches into the pipeline.
type stubSource struct {
	name       string
	private    []*data.PrivateRecord
	benchmarks []*data.BenchmarkRecord
	err        error
}

func (stub *stubSource) Name() string {
	return stub.name
}

func (stub *stubSource) Description() string {
	return "Fixed batches for pipeline tests"
}

func (stub *stubSource) ConfigDescription() map[string]string {
	return map[string]string{}
}

func (stub *stubSource) Fetch(_ context.Context) ([]*data.PrivateRecord, []*data.BenchmarkRecord, error) {
	if stub.err != nil {
		return nil, nil, stub.err
	}

	return stub.private, stub.benchmarks, nil
}

func stubPrivate() []*data.PrivateRecord {
	return []*data.PrivateRecord{
		{
			CompanyName:       "Company_A",
			Industry:          "Technology",
			RevenueLocal:      100,
			EBITDALocal:       20,
			ValuationMultiple: 10,
			Country:           "Germany",
			FiscalYear:        2024,
			Currency:          "EUR",
		},
		{
			CompanyName:       "Company_B",
			Industry:          "Technology",
			RevenueLocal:      250,
			EBITDALocal:       50,
			ValuationMultiple: 12,
			Country:           "USA",
			FiscalYear:        2024,
			Currency:          "USD",
		},
	}
}

func stubBenchmarks() []*data.BenchmarkRecord {
	return []*data.BenchmarkRecord{
		{
			Industry:                 "Technology",
			AverageMargin:            18,
			SectorGrowthRate:         6.5,
			AverageValuationMultiple: 9,
			MarketSizeBillions:       250,
		},
	}
}

var _ = Describe("New", func() {
	var rates *fx.RateTable

	BeforeEach(func() {
		rates = fx.NewRateTable("USD", fx.DefaultRates())
	})

	It("requires a source", func() {
		_, err := New(Config{Rates: rates})
		Expect(err).To(MatchError(ErrNoSource))
	})

	It("requires a rate table", func() {
		_, err := New(Config{Source: &stubSource{name: "stub"}})
		Expect(err).To(MatchError(ErrNoRates))
	})

	It("defaults the target unit", func() {
		myPipeline, err := New(Config{Source: &stubSource{name: "stub"}, Rates: rates})
		Expect(err).To(Succeed())
		Expect(myPipeline.cfg.TargetUnit).To(Equal(data.DefaultTargetUnit))
	})

	It("keeps an explicit target unit", func() {
		myPipeline, err := New(Config{Source: &stubSource{name: "stub"}, Rates: rates, TargetUnit: "thousands"})
		Expect(err).To(Succeed())
		Expect(myPipeline.cfg.TargetUnit).To(Equal("thousands"))
	})
})

var _ = Describe("Run", func() {
	var (
		ctx       context.Context
		rates     *fx.RateTable
		inputDir  string
		outputDir string
	)

	BeforeEach(func() {
		ctx = context.Background()
		rates = fx.NewRateTable("USD", fx.DefaultRates())
		inputDir = filepath.Join(GinkgoT().TempDir(), "input")
		outputDir = filepath.Join(GinkgoT().TempDir(), "output")
	})

	It("runs fetch through export end to end", func() {
		stub := &stubSource{name: "stub", private: stubPrivate(), benchmarks: stubBenchmarks()}
		myPipeline, err := New(Config{Source: stub, Rates: rates})
		Expect(err).To(Succeed())

		records, report, err := myPipeline.Run(ctx, outputDir, inputDir)
		Expect(err).To(Succeed())
		Expect(records).To(HaveLen(2))
		Expect(report.TotalRecords).To(Equal(2))

		Expect(filepath.Join(inputDir, "private_market_data_example.csv")).To(BeAnExistingFile())
		Expect(filepath.Join(inputDir, "industry_benchmark_data_example.csv")).To(BeAnExistingFile())
		Expect(filepath.Join(outputDir, "final_integrated_valuation_data.csv")).To(BeAnExistingFile())
		Expect(filepath.Join(outputDir, "validation_report.json")).To(BeAnExistingFile())

		summary := myPipeline.Summary()
		Expect(summary.Status).To(Equal(data.RunSuccess))
		Expect(summary.Source).To(Equal("stub"))
		Expect(summary.NumPrivate).To(Equal(2))
		Expect(summary.NumBenchmarks).To(Equal(1))
		Expect(summary.NumRejected).To(Equal(0))
		Expect(summary.NumIntegrated).To(Equal(2))
		Expect(summary.QualityScore).To(Equal(report.DataQualityScore))
		Expect(summary.RunID).ToNot(Equal(uuid.Nil))
		Expect(summary.EndTime).ToNot(BeZero())

		// the report carries the run identity for the info command
		Expect(report.RunID).To(Equal(summary.RunID.String()))
		Expect(report.Source).To(Equal("stub"))
		Expect(report.GeneratedAt.Time).ToNot(BeZero())
	})

	It("converts and integrates through the rate table", func() {
		stub := &stubSource{name: "stub", private: stubPrivate(), benchmarks: stubBenchmarks()}
		myPipeline, err := New(Config{Source: stub, Rates: rates})
		Expect(err).To(Succeed())

		records, _, err := myPipeline.Run(ctx, outputDir, inputDir)
		Expect(err).To(Succeed())

		Expect(records[0].CompanyName).To(Equal("Company_A"))
		Expect(records[0].Revenue).To(Equal(107.0))
		Expect(records[0].Currency).To(Equal("USD"))
		Expect(records[0].AverageMargin).To(HaveValue(Equal(18.0)))
		Expect(records[1].Revenue).To(Equal(250.0))
	})

	It("snapshots raw rows before rejecting them", func() {
		invalid := &data.PrivateRecord{
			CompanyName:       "Company_Z",
			RevenueLocal:      5,
			EBITDALocal:       1,
			ValuationMultiple: 2,
			Country:           "USA",
			FiscalYear:        2024,
			Currency:          "USD",
		}
		stub := &stubSource{name: "stub", private: append(stubPrivate(), invalid), benchmarks: stubBenchmarks()}
		myPipeline, err := New(Config{Source: stub, Rates: rates})
		Expect(err).To(Succeed())

		records, report, err := myPipeline.Run(ctx, outputDir, inputDir)
		Expect(err).To(Succeed())

		// the rejected row never reaches the integrated table
		Expect(records).To(HaveLen(2))
		Expect(report.TotalRecords).To(Equal(2))
		Expect(myPipeline.Summary().NumRejected).To(Equal(1))
		Expect(myPipeline.Summary().NumPrivate).To(Equal(3))

		// but the raw snapshot still carries it
		body, err := os.ReadFile(filepath.Join(inputDir, "private_market_data_example.csv"))
		Expect(err).To(Succeed())
		Expect(string(body)).To(ContainSubstring("Company_Z"))

		lines := strings.Split(strings.TrimSpace(string(body)), "\n")
		Expect(lines).To(HaveLen(4))
	})

	It("fails the run when fetch fails", func() {
		errFetch := errors.New("upstream unavailable")
		stub := &stubSource{name: "stub", err: errFetch}
		myPipeline, err := New(Config{Source: stub, Rates: rates})
		Expect(err).To(Succeed())

		records, report, err := myPipeline.Run(ctx, outputDir, inputDir)
		Expect(err).To(MatchError(errFetch))
		Expect(records).To(BeNil())
		Expect(report).To(BeNil())
		Expect(myPipeline.Summary().Status).To(Equal(data.RunFailed))

		Expect(filepath.Join(outputDir, "final_integrated_valuation_data.csv")).ToNot(BeAnExistingFile())
		Expect(filepath.Join(outputDir, "validation_report.json")).ToNot(BeAnExistingFile())
	})

	It("completes an empty fetch with a perfect score", func() {
		stub := &stubSource{name: "stub"}
		myPipeline, err := New(Config{Source: stub, Rates: rates})
		Expect(err).To(Succeed())

		records, report, err := myPipeline.Run(ctx, outputDir, inputDir)
		Expect(err).To(Succeed())
		Expect(records).To(BeEmpty())
		Expect(report.TotalRecords).To(Equal(0))
		Expect(report.DataQualityScore).To(Equal(100.0))
		Expect(myPipeline.Summary().Status).To(Equal(data.RunSuccess))

		Expect(filepath.Join(outputDir, "validation_report.json")).To(BeAnExistingFile())
	})
})
