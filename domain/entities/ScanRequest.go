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

type ScanMode string

const (
	SingleObjectMode ScanMode = "object"
	FolderMode       ScanMode = "folder"
)

type SingleObject struct {
	Path string
}

type FolderScan struct {
	Prefix          string
	Suffix          string
	BadFileListPath string
}

// ScanTarget holds exactly one of Object or Folder.
type ScanTarget struct {
	Object *SingleObject
	Folder *FolderScan
}

func NewSingleObjectTarget(path string) ScanTarget {
	return ScanTarget{Object: &SingleObject{Path: path}}
}

func NewFolderTarget(prefix, suffix, badFileListPath string) ScanTarget {
	return ScanTarget{Folder: &FolderScan{Prefix: prefix, Suffix: suffix, BadFileListPath: badFileListPath}}
}

func (t ScanTarget) Mode() ScanMode {
	if t.Folder != nil {
		return FolderMode
	}

	return SingleObjectMode
}

// ScanPolicy selects between the header-only check and full decompression.
type ScanPolicy struct {
	FullScan bool
}

type ScanRequest struct {
	ScanID    string
	Account   string // Storage account, used to pick the store client and build object URLs
	Container string // Container (bucket) holding the objects
	Target    ScanTarget
	Policy    ScanPolicy
	MessageID string // Receipt handle when the request came from the queue
}

func (r ScanRequest) Validate() error {
	var missing []string

	if r.Account == "" {
		missing = append(missing, "account")
	}

	if r.Container == "" {
		missing = append(missing, "container")
	}

	switch {
	case r.Target.Object != nil && r.Target.Folder != nil:
		return fmt.Errorf("%w: both object path and folder were given", ErrConfig)
	case r.Target.Object != nil:
		if r.Target.Object.Path == "" {
			missing = append(missing, "path")
		}
	case r.Target.Folder != nil:
		if r.Target.Folder.Prefix == "" {
			missing = append(missing, "folder")
		}

		if r.Target.Folder.BadFileListPath == "" {
			missing = append(missing, "bad file list path")
		}
	default:
		missing = append(missing, "path or folder")
	}

	if len(missing) != 0 {
		return fmt.Errorf("%w: missing %s", ErrConfig, strings.Join(missing, ", "))
	}

	return nil
}
