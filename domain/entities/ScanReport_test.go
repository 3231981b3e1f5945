/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanReportKeepsInsertionOrder(t *testing.T) {
	report := NewScanReport("logs")
	report.Add(ValidationOutcome{Path: "b.gz", IsValid: true})
	report.Add(ValidationOutcome{Path: "a.gz", IsValid: false})
	report.Add(ValidationOutcome{Path: "b.gz", IsValid: true})

	assert.Equal(t, []ValidationOutcome{
		{Path: "b.gz", IsValid: true},
		{Path: "a.gz", IsValid: false},
		{Path: "b.gz", IsValid: true},
	}, report.Outcomes())
	assert.Equal(t, 3, report.Scanned())
	assert.Equal(t, 1, report.Corrupt())
}

func TestScanReportOutcomesAreCopied(t *testing.T) {
	report := NewScanReport("logs")
	report.Add(ValidationOutcome{Path: "a.gz", IsValid: true})

	outcomes := report.Outcomes()
	outcomes[0].IsValid = false

	assert.True(t, report.Outcomes()[0].IsValid)
}

func TestBadFilePayload(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []ValidationOutcome
		expected string
	}{
		{name: "no outcomes", outcomes: nil, expected: ""},
		{name: "all valid", outcomes: []ValidationOutcome{{Path: "a.gz", IsValid: true}}, expected: ""},
		{name: "single invalid", outcomes: []ValidationOutcome{{Path: "a.gz", IsValid: false}}, expected: "logs/a.gz"},
		{
			name: "invalid entries only, no trailing newline",
			outcomes: []ValidationOutcome{
				{Path: "2024/a.gz", IsValid: false},
				{Path: "2024/b.gz", IsValid: true},
				{Path: "2024/c.gz", IsValid: false},
			},
			expected: "logs/2024/a.gz\nlogs/2024/c.gz",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			report := NewScanReport("logs")
			for _, outcome := range tt.outcomes {
				report.Add(outcome)
			}

			assert.Equal(t, tt.expected, string(report.BadFilePayload()))
		})
	}
}
