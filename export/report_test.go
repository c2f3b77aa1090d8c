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
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/JohanThomas16/valucompany-data-integration/data"
	"github.com/JohanThomas16/valucompany-data-integration/export"
)

var _ = Describe("Reports", func() {
	var (
		dir    string
		report *data.ValidationReport
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()

		report = &data.ValidationReport{
			RunID:        "1b9674f7-a606-488f-bcbd-1cb2da17666e",
			Source:       "Simulated",
			GeneratedAt:  data.NewTimestamp(time.Date(2024, 6, 30, 13, 45, 12, 0, time.UTC)),
			TotalRecords: 10,
			MissingValues: map[string]int{
				"company_name":   0,
				"average_margin": 2,
			},
			DuplicateCompanies: 1,
			NegativeValues:     map[string]int{"revenue": 0, "ebitda": 1},
			DataQualityScore:   98.89,
		}
	})

	It("round-trips a report through the JSON artifact", func() {
		outFile, err := export.WriteReport(report, dir)
		Expect(err).ToNot(HaveOccurred())
		Expect(outFile).To(Equal(filepath.Join(dir, export.ReportName)))

		loaded, err := export.ReadReport(dir)
		Expect(err).ToNot(HaveOccurred())

		Expect(loaded.RunID).To(Equal(report.RunID))
		Expect(loaded.Source).To(Equal(report.Source))
		Expect(loaded.GeneratedAt.String()).To(Equal("2024-06-30 13:45:12"))
		Expect(loaded.TotalRecords).To(Equal(10))
		Expect(loaded.MissingValues).To(Equal(report.MissingValues))
		Expect(loaded.DuplicateCompanies).To(Equal(1))
		Expect(loaded.NegativeValues).To(Equal(report.NegativeValues))
		Expect(loaded.DataQualityScore).To(Equal(98.89))
	})

	It("writes snake_case keys for downstream consumers", func() {
		_, err := export.WriteReport(report, dir)
		Expect(err).ToNot(HaveOccurred())

		body, err := os.ReadFile(filepath.Join(dir, export.ReportName))
		Expect(err).ToNot(HaveOccurred())

		Expect(string(body)).To(ContainSubstring(`"data_quality_score": 98.89`))
		Expect(string(body)).To(ContainSubstring(`"duplicate_companies": 1`))
		Expect(string(body)).To(ContainSubstring(`"generated_at": "2024-06-30 13:45:12"`))
	})

	It("fails cleanly when no report exists", func() {
		_, err := export.ReadReport(dir)
		Expect(err).To(MatchError(os.ErrNotExist))
	})
})
