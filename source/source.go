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
	"strings"

	"github.com/JohanThomas16/valucompany-data-integration/data"
)

var (
	ErrSourceNotFound = errors.New("source not found")
)

// Source fetches one batch of raw private market records and industry
// benchmark records. Implementations read their settings from viper and
// must not mutate the returned slices after Fetch returns.
type Source interface {
	Name() string
	ConfigDescription() map[string]string
	Description() string
	Fetch(ctx context.Context) ([]*data.PrivateRecord, []*data.BenchmarkRecord, error)
}

// Map holds all registered data sources keyed by their lookup name.
var Map = map[string]Source{
	"simulated":  &Simulated{},
	"marketdata": &MarketData{},
}

// FromName returns the registered source for name. Lookup is
// case-insensitive.
func FromName(name string) (Source, error) {
	sourceObj, ok := Map[strings.ToLower(name)]
	if !ok {
		return nil, ErrSourceNotFound
	}

	return sourceObj, nil
}
