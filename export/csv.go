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

// Package export writes the pipeline artifacts: raw snapshot CSVs, the
// integrated CSV and parquet tables, and the validation report JSON.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/gosimple/slug"
)

const (
	IntegratedCSVName     = "final_integrated_valuation_data.csv"
	IntegratedParquetName = "final_integrated_valuation_data.parquet"
	ReportName            = "validation_report.json"
)

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	return nil
}

// SnapshotFilename derives a raw snapshot file name from a dataset display
// name, e.g. "Private Market Data" -> private_market_data_example.csv.
func SnapshotFilename(datasetName string) string {
	name := strings.ReplaceAll(slug.Make(datasetName), "-", "_")
	return name + "_example.csv"
}

// WriteCSV writes records to the named file inside dir with a header row.
// records must be a slice of csv-tagged structs.
func WriteCSV(records interface{}, dir, name string) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	outFile := filepath.Join(dir, name)

	fh, err := os.Create(outFile)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", outFile, err)
	}

	defer fh.Close()

	if err := gocsv.MarshalFile(records, fh); err != nil {
		return "", fmt.Errorf("marshal csv %s: %w", outFile, err)
	}

	return outFile, nil
}
