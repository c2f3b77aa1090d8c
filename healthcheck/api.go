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

// Package healthcheck pings healthchecks.io around pipeline runs so a
// cron'd vcdata can be monitored for missed or failed executions. All
// functions are no-ops unless healthcheck.uuid is configured.
package healthcheck

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var (
	ErrStatus = errors.New("status code is invalid")
)

// Enabled reports whether a healthchecks.io check is configured.
func Enabled() bool {
	return viper.GetString("healthcheck.uuid") != ""
}

// PingStart signals that a run has begun.
func PingStart(ctx context.Context) {
	ping(ctx, "/start")
}

// PingSuccess signals that a run completed successfully.
func PingSuccess(ctx context.Context) {
	ping(ctx, "")
}

// PingFail signals that a run failed.
func PingFail(ctx context.Context) {
	ping(ctx, "/fail")
}

// ping best-effort notifies the configured check; failures are logged and
// never interrupt the run.
func ping(ctx context.Context, suffix string) {
	if !Enabled() {
		return
	}

	logger := zerolog.Ctx(ctx)
	url := fmt.Sprintf("https://hc-ping.com/%s%s", viper.GetString("healthcheck.uuid"), suffix)

	client := resty.New()
	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		logger.Warn().Err(err).Str("Url", url).Msg("healthcheck ping failed")
		return
	}

	if resp.StatusCode() >= 300 {
		logger.Warn().Err(fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())).Str("Url", url).Msg("healthcheck ping failed")
	}
}
