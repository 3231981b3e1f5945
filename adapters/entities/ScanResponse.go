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
	"gzip-checker/domain/entities"
)

type GZipResultResponse struct {
	Path    string `json:"path"`
	IsValid bool   `json:"isValid"`
}

type SummaryResponse struct {
	Message string `json:"message"`
	Corrupt int    `json:"corrupt"`
	Scanned int    `json:"scanned"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ObjectURL renders https://{account}.{domain}/{container}/{name}.
func ObjectURL(account, domain, container, name string) string {
	return fmt.Sprintf("https://%s.%s/%s/%s", account, domain, container, name)
}

func MapToGZipResult(account, domain, container string, outcome entities.ValidationOutcome) GZipResultResponse {
	return GZipResultResponse{Path: ObjectURL(account, domain, container, outcome.Path), IsValid: outcome.IsValid}
}

func MapToGZipResults(account, domain string, report *entities.ScanReport) []GZipResultResponse {
	outcomes := report.Outcomes()
	results := make([]GZipResultResponse, 0, len(outcomes))

	for _, outcome := range outcomes {
		results = append(results, MapToGZipResult(account, domain, report.Container, outcome))
	}

	return results
}

func MapToSummary(report *entities.ScanReport) SummaryResponse {
	return SummaryResponse{
		Message: fmt.Sprintf("Found %d corrupt GZips", report.Corrupt()),
		Corrupt: report.Corrupt(),
		Scanned: report.Scanned(),
	}
}
