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
package export_test

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/JohanThomas16/valucompany-data-integration/data"
	"github.com/JohanThomas16/valucompany-data-integration/export"
)

var _ = Describe("SnapshotFilename", func() {
	It("derives snapshot names from the dataset display names", func() {
		Expect(export.SnapshotFilename(data.PrivateDatasetName)).To(Equal("private_market_data_example.csv"))
		Expect(export.SnapshotFilename(data.BenchmarkDatasetName)).To(Equal("industry_benchmark_data_example.csv"))
	})
})

var _ = Describe("WriteCSV", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("writes raw private records with a header row", func() {
		records := []*data.PrivateRecord{
			{
				CompanyName:       "Company_A",
				Industry:          "Technology",
				RevenueLocal:      100.5,
				EBITDALocal:       20.25,
				ValuationMultiple: 10.5,
				Country:           "Germany",
				FiscalYear:        2024,
				Currency:          "EUR",
			},
		}

		outFile, err := export.WriteCSV(records, dir, export.SnapshotFilename(data.PrivateDatasetName))
		Expect(err).ToNot(HaveOccurred())
		Expect(outFile).To(Equal(filepath.Join(dir, "private_market_data_example.csv")))

		body, err := os.ReadFile(outFile)
		Expect(err).ToNot(HaveOccurred())

		lines := strings.Split(strings.TrimSpace(string(body)), "\n")
		Expect(lines).To(HaveLen(2))
		Expect(lines[0]).To(Equal("company_name,industry,revenue_local,ebitda_local,valuation_multiple,country,fiscal_year,currency"))
		Expect(lines[1]).To(Equal("Company_A,Technology,100.5,20.25,10.5,Germany,2024,EUR"))
	})

	It("writes integrated records in the canonical column order", func() {
		margin := 20.0
		stamp := data.NewTimestamp(time.Date(2024, 6, 30, 13, 45, 12, 0, time.UTC))

		records := []*data.IntegratedRecord{
			{
				CompanyName:       "Company_A",
				Industry:          "Technology",
				Country:           "Germany",
				FiscalYear:        2024,
				Revenue:           107.5,
				EBITDA:            21.4,
				EBITDAMargin:      &margin,
				ValuationMultiple: 10.5,
				DataSource:        data.IntegratedDataSource,
				Currency:          data.DefaultTargetCurrency,
				Units:             data.DefaultTargetUnit,
				LastUpdated:       stamp,
			},
		}

		outFile, err := export.WriteCSV(records, dir, export.IntegratedCSVName)
		Expect(err).ToNot(HaveOccurred())

		body, err := os.ReadFile(outFile)
		Expect(err).ToNot(HaveOccurred())

		lines := strings.Split(strings.TrimSpace(string(body)), "\n")
		Expect(lines).To(HaveLen(2))
		Expect(lines[0]).To(Equal(strings.Join(data.IntegratedColumns(), ",")))

		fields := strings.Split(lines[1], ",")
		Expect(fields).To(HaveLen(len(data.IntegratedColumns())))
		Expect(fields[0]).To(Equal("Company_A"))
		Expect(fields[6]).To(Equal("20"))
		Expect(fields[15]).To(Equal("2024-06-30 13:45:12"))
	})

	It("renders missing benchmark fields as empty cells", func() {
		records := []*data.IntegratedRecord{
			{
				CompanyName: "Company_B",
				Industry:    "Unmatched",
				Country:     "USA",
				FiscalYear:  2024,
				Revenue:     250,
				EBITDA:      50,
			},
		}

		outFile, err := export.WriteCSV(records, dir, export.IntegratedCSVName)
		Expect(err).ToNot(HaveOccurred())

		body, err := os.ReadFile(outFile)
		Expect(err).ToNot(HaveOccurred())

		lines := strings.Split(strings.TrimSpace(string(body)), "\n")
		fields := strings.Split(lines[1], ",")

		// average_margin through market_size_billions and both deltas
		Expect(fields[8]).To(Equal(""))
		Expect(fields[9]).To(Equal(""))
		Expect(fields[10]).To(Equal(""))
		Expect(fields[11]).To(Equal(""))
		Expect(fields[16]).To(Equal(""))
		Expect(fields[17]).To(Equal(""))
	})

	It("creates the output directory when missing", func() {
		nested := filepath.Join(dir, "artifacts", "run-1")

		outFile, err := export.WriteCSV([]*data.BenchmarkRecord{{Industry: "Energy"}}, nested, export.SnapshotFilename(data.BenchmarkDatasetName))
		Expect(err).ToNot(HaveOccurred())
		Expect(outFile).To(BeAnExistingFile())
	})
})
