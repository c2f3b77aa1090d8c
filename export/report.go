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
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/JohanThomas16/valucompany-data-integration/data"
	"github.com/goccy/go-json"
)

// WriteReport writes the validation report as indented JSON inside dir.
func WriteReport(report *data.ValidationReport, dir string) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	outFile := filepath.Join(dir, ReportName)

	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal validation report: %w", err)
	}

	if err := os.WriteFile(outFile, body, 0640); err != nil {
		return "", fmt.Errorf("write %s: %w", outFile, err)
	}

	return outFile, nil
}

// ReadReport loads a validation report previously written by WriteReport.
func ReadReport(dir string) (*data.ValidationReport, error) {
	reportFile := filepath.Join(dir, ReportName)

	body, err := os.ReadFile(reportFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", reportFile, err)
	}

	report := &data.ValidationReport{}
	if err := json.Unmarshal(body, report); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", reportFile, err)
	}

	return report, nil
}
