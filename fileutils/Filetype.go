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

package fileutils

import (
	"bytes"
	"sync"

	"github.com/gabriel-vasile/mimetype"
)

const maxHeaderBuffer = 1024

const EmptyObjectType = "empty"

//nolint:gochecknoglobals
var once sync.Once

func prefix(preffix []byte) func([]byte, uint32) bool {
	return func(raw []byte, limit uint32) bool {
		if limit < uint32(len(preffix)) {
			return false
		}

		return bytes.Equal(raw[:len(preffix)], preffix)
	}
}

func registerAdditionalTypes() {
	// Support for LZ4
	mimetype.Extend(prefix([]byte{0x04, 0x22, 0x4D, 0x18}), "application/x-lz4", ".lz4")

	// Support for Zstandard frames
	mimetype.Extend(prefix([]byte{0x28, 0xB5, 0x2F, 0xFD}), "application/x-zstd", ".zst")
}

// DetectType returns the MIME type guessed from the first bytes of an object.
// Used to describe objects that failed the GZIP header check.
func DetectType(data []byte) string {
	once.Do(registerAdditionalTypes)

	if len(data) == 0 {
		return EmptyObjectType
	}

	head := data
	if len(head) > maxHeaderBuffer {
		head = head[:maxHeaderBuffer]
	}

	return mimetype.Detect(head).String()
}
