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

func TestScanRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		request ScanRequest
		valid   bool
	}{
		{
			name:    "single object",
			request: ScanRequest{Account: "acc", Container: "logs", Target: NewSingleObjectTarget("a.gz")},
			valid:   true,
		},
		{
			name:    "folder",
			request: ScanRequest{Account: "acc", Container: "logs", Target: NewFolderTarget("2024/", ".gz", "issues.txt")},
			valid:   true,
		},
		{
			name:    "missing account",
			request: ScanRequest{Container: "logs", Target: NewSingleObjectTarget("a.gz")},
		},
		{
			name:    "missing container",
			request: ScanRequest{Account: "acc", Target: NewSingleObjectTarget("a.gz")},
		},
		{
			name:    "missing path",
			request: ScanRequest{Account: "acc", Container: "logs", Target: NewSingleObjectTarget("")},
		},
		{
			name:    "missing folder",
			request: ScanRequest{Account: "acc", Container: "logs", Target: NewFolderTarget("", ".gz", "issues.txt")},
		},
		{
			name:    "missing bad file list path",
			request: ScanRequest{Account: "acc", Container: "logs", Target: NewFolderTarget("2024/", ".gz", "")},
		},
		{
			name:    "no target",
			request: ScanRequest{Account: "acc", Container: "logs"},
		},
		{
			name: "both targets",
			request: ScanRequest{Account: "acc", Container: "logs", Target: ScanTarget{
				Object: &SingleObject{Path: "a.gz"},
				Folder: &FolderScan{Prefix: "2024/", BadFileListPath: "issues.txt"},
			}},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestScanTargetMode(t *testing.T) {
	assert.Equal(t, SingleObjectMode, NewSingleObjectTarget("a.gz").Mode())
	assert.Equal(t, FolderMode, NewFolderTarget("2024/", ".gz", "issues.txt").Mode())
}
