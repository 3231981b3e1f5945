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
	"fmt"
	"strings"
)

const badFileSeparator = "\n"

// ValidationOutcome is the verdict for a single object.
type ValidationOutcome struct {
	Path    string
	IsValid bool
}

// ScanReport accumulates outcomes in the order they are added. It is not safe for concurrent use.
type ScanReport struct {
	Container       string
	BadFileListPath string
	outcomes        []ValidationOutcome
}

func NewScanReport(container string) *ScanReport {
	return &ScanReport{Container: container, outcomes: make([]ValidationOutcome, 0)}
}

func (r *ScanReport) Add(outcome ValidationOutcome) {
	r.outcomes = append(r.outcomes, outcome)
}

func (r *ScanReport) Outcomes() []ValidationOutcome {
	outcomes := make([]ValidationOutcome, len(r.outcomes))
	copy(outcomes, r.outcomes)

	return outcomes
}

func (r *ScanReport) Scanned() int {
	return len(r.outcomes)
}

func (r *ScanReport) Corrupt() int {
	corrupt := 0

	for _, outcome := range r.outcomes {
		if !outcome.IsValid {
			corrupt++
		}
	}

	return corrupt
}

// BadFiles lists invalid objects as {container}/{objectName}.
func (r *ScanReport) BadFiles() []string {
	badFiles := make([]string, 0)

	for _, outcome := range r.outcomes {
		if !outcome.IsValid {
			badFiles = append(badFiles, fmt.Sprintf("%s/%s", r.Container, outcome.Path))
		}
	}

	return badFiles
}

// BadFilePayload renders the bad-file list persisted after folder scans.
func (r *ScanReport) BadFilePayload() []byte {
	return []byte(strings.Join(r.BadFiles(), badFileSeparator))
}
