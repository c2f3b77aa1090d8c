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
	"errors"
	"fmt"

	"github.com/JohanThomas16/valucompany-data-integration/data"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

var (
	ErrMissingEndpoint = errors.New("marketdata.endpoint is not configured")
	ErrRequestFailed   = errors.New("market data request failed")
)

// MarketData pulls private market transactions and industry benchmark
// aggregates from a REST API. Both collections are paged with an opaque
// cursor returned in meta.next_cursor.
type MarketData struct{}

func (md *MarketData) Name() string {
	return "MarketData"
}

func (md *MarketData) ConfigDescription() map[string]string {
	return map[string]string{
		"marketdata.endpoint":   "What is the base URL of the market data API?",
		"marketdata.token":      "Enter your market data API token:",
		"marketdata.rate_limit": "What is the maximum number of requests per minute?",
	}
}

func (md *MarketData) Description() string {
	return `Downloads private market transactions and industry benchmark aggregates from a market data REST API.`
}

func (md *MarketData) Fetch(ctx context.Context) ([]*data.PrivateRecord, []*data.BenchmarkRecord, error) {
	endpoint := viper.GetString("marketdata.endpoint")
	if endpoint == "" {
		return nil, nil, ErrMissingEndpoint
	}

	rateLimit := viper.GetInt("marketdata.rate_limit")
	if rateLimit <= 0 {
		rateLimit = 60
	}

	api := &marketDataAPI{
		endpoint: endpoint,
		client:   resty.New().SetBaseURL(endpoint).SetQueryParam("token", viper.GetString("marketdata.token")),
		limiter:  rate.NewLimiter(rate.Limit(float64(rateLimit)/float64(61)), 1),
	}

	private, err := api.privateRecords(ctx)
	if err != nil {
		return nil, nil, err
	}

	benchmarks, err := api.benchmarkRecords(ctx)
	if err != nil {
		return nil, nil, err
	}

	return private, benchmarks, nil
}

type marketDataAPI struct {
	endpoint string
	client   *resty.Client
	limiter  *rate.Limiter
}

type marketDataTransaction struct {
	CompanyName       string
	Industry          string
	RevenueLocal      float64
	EBITDALocal       float64
	ValuationMultiple float64
	Country           string
	FiscalYear        int64
	Currency          string
}

func (transaction *marketDataTransaction) ToRecord() *data.PrivateRecord {
	return &data.PrivateRecord{
		CompanyName:       transaction.CompanyName,
		Industry:          transaction.Industry,
		RevenueLocal:      transaction.RevenueLocal,
		EBITDALocal:       transaction.EBITDALocal,
		ValuationMultiple: transaction.ValuationMultiple,
		Country:           transaction.Country,
		FiscalYear:        int(transaction.FiscalYear),
		Currency:          transaction.Currency,
	}
}

func (api *marketDataAPI) privateRecords(ctx context.Context) ([]*data.PrivateRecord, error) {
	logger := zerolog.Ctx(ctx)

	records := make([]*data.PrivateRecord, 0, 100)

	cursor := ""
	for {
		logger.Debug().Str("Cursor", cursor).Msg("fetching next page of private transactions")

		body, err := api.getPage(ctx, "/v1/private/transactions", cursor)
		if err != nil {
			return nil, err
		}

		for _, val := range gjson.Get(body, "data").Array() {
			transaction := &marketDataTransaction{
				CompanyName:       val.Get("company_name").String(),
				Industry:          val.Get("industry").String(),
				RevenueLocal:      val.Get("revenue_local").Float(),
				EBITDALocal:       val.Get("ebitda_local").Float(),
				ValuationMultiple: val.Get("valuation_multiple").Float(),
				Country:           val.Get("country").String(),
				FiscalYear:        val.Get("fiscal_year").Int(),
				Currency:          val.Get("currency").String(),
			}

			records = append(records, transaction.ToRecord())
		}

		cursor = gjson.Get(body, "meta.next_cursor").String()
		if cursor == "" {
			break
		}
	}

	return records, nil
}

func (api *marketDataAPI) benchmarkRecords(ctx context.Context) ([]*data.BenchmarkRecord, error) {
	logger := zerolog.Ctx(ctx)

	records := make([]*data.BenchmarkRecord, 0, 25)

	cursor := ""
	for {
		logger.Debug().Str("Cursor", cursor).Msg("fetching next page of industry benchmarks")

		body, err := api.getPage(ctx, "/v1/benchmarks/industries", cursor)
		if err != nil {
			return nil, err
		}

		for _, val := range gjson.Get(body, "data").Array() {
			records = append(records, &data.BenchmarkRecord{
				Industry:                 val.Get("industry").String(),
				AverageMargin:            val.Get("average_margin").Float(),
				SectorGrowthRate:         val.Get("sector_growth_rate").Float(),
				AverageValuationMultiple: val.Get("average_valuation_multiple").Float(),
				MarketSizeBillions:       val.Get("market_size_billions").Float(),
			})
		}

		cursor = gjson.Get(body, "meta.next_cursor").String()
		if cursor == "" {
			break
		}
	}

	return records, nil
}

func (api *marketDataAPI) getPage(ctx context.Context, path, cursor string) (string, error) {
	if err := api.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req := api.client.R().SetContext(ctx)
	if cursor != "" {
		req.SetQueryParam("cursor", cursor)
	}

	resp, err := req.Get(path)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", path, err)
	}

	if resp.StatusCode() >= 300 {
		return "", fmt.Errorf("%w: %s returned status %d", ErrRequestFailed, path, resp.StatusCode())
	}

	return string(resp.Body()), nil
}
