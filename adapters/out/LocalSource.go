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

package out

import (
	"context"
	"gzip-checker/domain/ports/out"
	iofs "io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	defaultDirPermission  = 0755
	defaultFilePermission = 0644
	rootDir               = "/"
)

// LocalSource maps object names to files below the root of fs. Directories play the role of prefixes.
type LocalSource struct {
	container string
	fs        afero.Fs
}

func NewLocalSource(fs afero.Fs, container string) *LocalSource {
	return &LocalSource{fs: fs, container: container}
}

func (l *LocalSource) List(ctx context.Context, prefix, delimiter string) ([]out.ObjectRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if delimiter == "" {
		return l.listFlat(prefix)
	}

	if delimiter != out.PathDelimiter {
		return nil, storeError(errors.Errorf("unsupported delimiter %q", delimiter), "failed to list %s", prefix)
	}

	// The directory holding every candidate is the prefix cut at its last delimiter.
	dir := prefix[:strings.LastIndex(prefix, delimiter)+1]

	entries, err := afero.ReadDir(l.fs, toPath(dir))
	if errors.Is(err, iofs.ErrNotExist) {
		return []out.ObjectRecord{}, nil
	}

	if err != nil {
		return nil, storeError(err, "failed to list %s", prefix)
	}

	records := make([]out.ObjectRecord, 0, len(entries))

	for _, entry := range entries {
		name := dir + entry.Name()
		if entry.IsDir() {
			name += delimiter
		}

		if !strings.HasPrefix(name, prefix) {
			continue
		}

		records = append(records, out.ObjectRecord{Name: name, IsPrefix: entry.IsDir()})
	}

	sortRecords(records)

	return records, nil
}

func (l *LocalSource) listFlat(prefix string) ([]out.ObjectRecord, error) {
	records := make([]out.ObjectRecord, 0)

	err := afero.Walk(l.fs, rootDir, func(filePath string, info iofs.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		name := strings.TrimPrefix(filePath, rootDir)
		if strings.HasPrefix(name, prefix) {
			records = append(records, out.ObjectRecord{Name: name})
		}

		return nil
	})

	if err != nil {
		return nil, storeError(err, "failed to list %s", prefix)
	}

	sortRecords(records)

	return records, nil
}

func (l *LocalSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := l.fs.Stat(toPath(name))
	if errors.Is(err, iofs.ErrNotExist) || (err == nil && info.IsDir()) {
		return nil, notFoundError(l.container, name)
	}

	if err != nil {
		return nil, storeError(err, "failed to stat %s", name)
	}

	data, err := afero.ReadFile(l.fs, toPath(name))
	if err != nil {
		return nil, storeError(err, "failed to read %s", name)
	}

	return data, nil
}

func (l *LocalSource) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := toPath(name)
	if err := l.fs.MkdirAll(path.Dir(target), defaultDirPermission); err != nil {
		return storeError(err, "failed to create parent of %s", name)
	}

	if err := afero.WriteFile(l.fs, target, data, defaultFilePermission); err != nil {
		return storeError(err, "failed to write %s", name)
	}

	return nil
}

func toPath(name string) string {
	return rootDir + strings.TrimPrefix(name, rootDir)
}

func sortRecords(records []out.ObjectRecord) {
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
}
