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
package data_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/JohanThomas16/valucompany-data-integration/data"
)

var _ = Describe("Timestamp", func() {
	var stamp data.Timestamp

	BeforeEach(func() {
		stamp = data.NewTimestamp(time.Date(2024, 6, 30, 13, 45, 12, 0, time.UTC))
	})

	It("formats without a timezone or sub-second precision", func() {
		Expect(stamp.String()).To(Equal("2024-06-30 13:45:12"))
	})

	Describe("CSV", func() {
		It("round-trips through the wire layout", func() {
			field, err := stamp.MarshalCSV()
			Expect(err).ToNot(HaveOccurred())
			Expect(field).To(Equal("2024-06-30 13:45:12"))

			parsed := &data.Timestamp{}
			Expect(parsed.UnmarshalCSV(field)).To(Succeed())
			Expect(parsed.Time.Equal(stamp.Time)).To(BeTrue())
		})

		It("rejects other layouts", func() {
			parsed := &data.Timestamp{}
			Expect(parsed.UnmarshalCSV("2024-06-30T13:45:12Z")).ToNot(Succeed())
		})
	})

	Describe("JSON", func() {
		It("round-trips as a quoted string", func() {
			body, err := stamp.MarshalJSON()
			Expect(err).ToNot(HaveOccurred())
			Expect(string(body)).To(Equal(`"2024-06-30 13:45:12"`))

			parsed := &data.Timestamp{}
			Expect(parsed.UnmarshalJSON(body)).To(Succeed())
			Expect(parsed.Time.Equal(stamp.Time)).To(BeTrue())
		})

		It("leaves the zero value alone for null", func() {
			parsed := &data.Timestamp{}
			Expect(parsed.UnmarshalJSON([]byte("null"))).To(Succeed())
			Expect(parsed.Time.IsZero()).To(BeTrue())
		})
	})
})
