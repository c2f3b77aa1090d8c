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
package data

import (
	"strconv"
	"time"
)

// TimeLayout is the wire format for last_updated and report timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// Timestamp wraps time.Time so CSV and JSON artifacts carry TimeLayout
// instead of RFC 3339.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t}
}

func (ts Timestamp) String() string {
	return ts.Format(TimeLayout)
}

func (ts Timestamp) MarshalCSV() (string, error) {
	return ts.Format(TimeLayout), nil
}

func (ts *Timestamp) UnmarshalCSV(field string) error {
	t, err := time.Parse(TimeLayout, field)
	if err != nil {
		return err
	}

	ts.Time = t
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(ts.Format(TimeLayout))), nil
}

func (ts *Timestamp) UnmarshalJSON(raw []byte) error {
	if string(raw) == "null" {
		return nil
	}

	fieldStr, err := strconv.Unquote(string(raw))
	if err != nil {
		return err
	}

	t, err := time.Parse(TimeLayout, fieldStr)
	if err != nil {
		return err
	}

	ts.Time = t
	return nil
}
