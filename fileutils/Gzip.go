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
	"compress/gzip"
	"errors"
	"io"
)

const (
	gzipMagicFirst  = 0x1F
	gzipMagicSecond = 0x8B

	// Decompressed output is drained in chunks of this size.
	DecompressChunkSize = 1024
)

// HasGzipHeader reports whether data starts with the two GZIP magic bytes.
func HasGzipHeader(data []byte) bool {
	return len(data) >= 2 &&
		data[0] == gzipMagicFirst &&
		data[1] == gzipMagicSecond
}

// IsFullyDecompressible decompresses the whole stream and reports whether it ended cleanly.
// Concatenated members are accepted; any framing, deflate or checksum error yields false.
func IsFullyDecompressible(data []byte) bool {
	gzRead, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return false
	}
	defer gzRead.Close()

	chunk := make([]byte, DecompressChunkSize)

	// The gzip reader only verifies CRC32 and ISIZE once the member is exhausted, so a
	// short read is not enough: keep reading until io.EOF.
	for {
		_, err := gzRead.Read(chunk)
		if errors.Is(err, io.EOF) {
			return true
		}

		if err != nil {
			return false
		}
	}
}
