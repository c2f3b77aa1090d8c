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
package source_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	"github.com/JohanThomas16/valucompany-data-integration/source"
)

var _ = Describe("FromName", func() {
	It("finds registered sources regardless of case", func() {
		dataSource, err := source.FromName("Simulated")
		Expect(err).ToNot(HaveOccurred())
		Expect(dataSource.Name()).To(Equal("Simulated"))

		dataSource, err = source.FromName("MARKETDATA")
		Expect(err).ToNot(HaveOccurred())
		Expect(dataSource.Name()).To(Equal("MarketData"))
	})

	It("reports unknown sources", func() {
		_, err := source.FromName("quandl")
		Expect(err).To(MatchError(source.ErrSourceNotFound))
	})
})

var _ = Describe("MarketData", func() {
	var (
		ctx context.Context
		md  *source.MarketData
	)

	BeforeEach(func() {
		viper.Reset()

		ctx = context.Background()
		md = &source.MarketData{}
	})

	AfterEach(func() {
		viper.Reset()
	})

	It("requires an endpoint", func() {
		_, _, err := md.Fetch(ctx)
		Expect(err).To(MatchError(source.ErrMissingEndpoint))
	})

	Context("against a paging API", func() {
		var (
			server     *httptest.Server
			requestsMu sync.Mutex
			requests   []string
		)

		BeforeEach(func() {
			requests = nil

			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requestsMu.Lock()
				requests = append(requests, r.URL.Path+"?"+r.URL.RawQuery)
				requestsMu.Unlock()

				if r.URL.Query().Get("token") != "sekret" {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}

				w.Header().Set("Content-Type", "application/json")

				switch r.URL.Path {
				case "/v1/private/transactions":
					if r.URL.Query().Get("cursor") == "" {
						fmt.Fprint(w, `{"data": [
							{"company_name": "Company_A", "industry": "Technology", "revenue_local": 100.0,
							 "ebitda_local": 20.0, "valuation_multiple": 10.0, "country": "Germany",
							 "fiscal_year": 2024, "currency": "EUR"}
						], "meta": {"next_cursor": "page-2"}}`)
					} else {
						fmt.Fprint(w, `{"data": [
							{"company_name": "Company_B", "industry": "Energy", "revenue_local": 300.5,
							 "ebitda_local": 55.25, "valuation_multiple": 8.5, "country": "USA",
							 "fiscal_year": 2024, "currency": "USD"}
						], "meta": {"next_cursor": ""}}`)
					}
				case "/v1/benchmarks/industries":
					fmt.Fprint(w, `{"data": [
						{"industry": "Technology", "average_margin": 18.0, "sector_growth_rate": 6.5,
						 "average_valuation_multiple": 9.0, "market_size_billions": 250.0}
					], "meta": {}}`)
				default:
					w.WriteHeader(http.StatusNotFound)
				}
			}))

			viper.Set("marketdata.endpoint", server.URL)
			viper.Set("marketdata.token", "sekret")
			viper.Set("marketdata.rate_limit", 6000)
		})

		AfterEach(func() {
			server.Close()
		})

		It("collects every page of both datasets", func() {
			private, benchmarks, err := md.Fetch(ctx)
			Expect(err).ToNot(HaveOccurred())

			Expect(private).To(HaveLen(2))
			Expect(private[0].CompanyName).To(Equal("Company_A"))
			Expect(private[0].Country).To(Equal("Germany"))
			Expect(private[0].FiscalYear).To(Equal(2024))
			Expect(private[1].CompanyName).To(Equal("Company_B"))
			Expect(private[1].RevenueLocal).To(Equal(300.5))

			Expect(benchmarks).To(HaveLen(1))
			Expect(benchmarks[0].Industry).To(Equal("Technology"))
			Expect(benchmarks[0].AverageValuationMultiple).To(Equal(9.0))

			requestsMu.Lock()
			defer requestsMu.Unlock()

			Expect(requests).To(HaveLen(3))
			Expect(requests[1]).To(ContainSubstring("cursor=page-2"))
		})

		It("surfaces http failures", func() {
			viper.Set("marketdata.token", "wrong")

			_, _, err := md.Fetch(ctx)
			Expect(err).To(MatchError(source.ErrRequestFailed))
		})
	})
})
