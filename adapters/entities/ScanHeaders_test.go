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
	"gzip-checker/domain/entities"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullScanHeader(t *testing.T) {
	tests := []struct {
		value    string
		fullScan bool
	}{
		{value: "", fullScan: true},
		{value: "1", fullScan: true},
		{value: "0", fullScan: false},
		{value: "2", fullScan: false},
		{value: "-1", fullScan: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run("value "+tt.value, func(t *testing.T) {
			request, err := ObjectHeaders{Account: "acc", Container: "logs", Path: "a.gz", FullScan: tt.value}.ToScanRequest("id")
			require.NoError(t, err)
			assert.Equal(t, tt.fullScan, request.Policy.FullScan)
		})
	}

	_, err := FolderHeaders{Account: "acc", Container: "logs", Folder: "2024/", FullScan: "yes"}.ToScanRequest("id")
	assert.ErrorIs(t, err, entities.ErrConfig)
}

func TestObjectURL(t *testing.T) {
	assert.Equal(t, "https://acc.blob.core.windows.net/logs/2024/a.gz", ObjectURL("acc", "blob.core.windows.net", "logs", "2024/a.gz"))
}

func TestSummary(t *testing.T) {
	report := entities.NewScanReport("logs")
	report.Add(entities.ValidationOutcome{Path: "a.gz", IsValid: false})
	report.Add(entities.ValidationOutcome{Path: "b.gz", IsValid: true})

	assert.Equal(t, SummaryResponse{Message: "Found 1 corrupt GZips", Corrupt: 1, Scanned: 2}, MapToSummary(report))
}
