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
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compress(t *testing.T, payload []byte) []byte {
	t.Helper()

	var buffer bytes.Buffer
	writer := gzip.NewWriter(&buffer)
	_, err := writer.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return buffer.Bytes()
}

func randomBytes(t *testing.T, size int) []byte {
	t.Helper()

	data := make([]byte, size)
	_, err := rand.Read(data)
	require.NoError(t, err)

	return data
}

func TestHasGzipHeader(t *testing.T) {
	table := []struct {
		name      string
		fileBytes []byte
		expected  bool
	}{
		{name: "nil", fileBytes: nil, expected: false},
		{name: "empty", fileBytes: []byte{}, expected: false},
		{name: "single magic byte", fileBytes: []byte{0x1f}, expected: false},
		{name: "magic only", fileBytes: []byte{0x1f, 0x8b}, expected: true},
		{name: "magic followed by garbage", fileBytes: []byte{0x1f, 0x8b, 0xde, 0xad, 0xbe, 0xef}, expected: true},
		{name: "swapped magic", fileBytes: []byte{0x8b, 0x1f}, expected: false},
		{name: "zip", fileBytes: []byte{0x50, 0x4B, 0x03, 0x04}, expected: false},
		{name: "plain text", fileBytes: []byte("hello"), expected: false},
	}

	for _, v := range table {
		v := v
		t.Run(v.name, func(t *testing.T) {
			assert.Equal(t, v.expected, HasGzipHeader(v.fileBytes))
		})
	}
}

func TestValidStreamsAreDecompressible(t *testing.T) {
	table := []struct {
		name    string
		payload []byte
	}{
		{name: "empty payload", payload: []byte{}},
		{name: "hello", payload: []byte("hello")},
		{name: "exactly one chunk", payload: bytes.Repeat([]byte{'a'}, DecompressChunkSize)},
		{name: "several chunks", payload: bytes.Repeat([]byte("gzip-checker "), 5000)},
		{name: "incompressible", payload: randomBytes(t, 256*1024)},
	}

	for _, v := range table {
		v := v
		t.Run(v.name, func(t *testing.T) {
			assert.True(t, IsFullyDecompressible(compress(t, v.payload)))
		})
	}
}

func TestConcatenatedMembersAreDecompressible(t *testing.T) {
	data := append(compress(t, []byte("first")), compress(t, []byte("second"))...)

	assert.True(t, IsFullyDecompressible(data))
}

func TestCorruptStreamsAreRejected(t *testing.T) {
	valid := compress(t, bytes.Repeat([]byte("corrupted payload "), 200))

	truncated := valid[:len(valid)-1]

	truncatedBody := valid[:len(valid)/2]

	badChecksum := append([]byte{}, valid...)
	badChecksum[len(badChecksum)-8] ^= 0xff

	badSize := append([]byte{}, valid...)
	badSize[len(badSize)-1] ^= 0xff

	trailingGarbage := append(append([]byte{}, valid...), []byte("not a gzip member")...)

	headerOnly := []byte{0x1f, 0x8b, 0x00, 0x01}

	reservedBlockType := append([]byte{0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff}, bytes.Repeat([]byte{0xff}, 64)...)

	table := []struct {
		name      string
		fileBytes []byte
	}{
		{name: "nil", fileBytes: nil},
		{name: "empty", fileBytes: []byte{}},
		{name: "not gzip", fileBytes: []byte("hello world")},
		{name: "last byte removed", fileBytes: truncated},
		{name: "truncated mid stream", fileBytes: truncatedBody},
		{name: "checksum mismatch", fileBytes: badChecksum},
		{name: "size mismatch", fileBytes: badSize},
		{name: "trailing garbage", fileBytes: trailingGarbage},
		{name: "header only", fileBytes: headerOnly},
		{name: "invalid deflate block", fileBytes: reservedBlockType},
	}

	for _, v := range table {
		v := v
		t.Run(v.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, IsFullyDecompressible(v.fileBytes))
			})
		})
	}
}
