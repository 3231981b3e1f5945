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

import "errors"

var (
	// ErrConfig is returned when required scan parameters are missing. No store access happens.
	ErrConfig = errors.New("invalid scan configuration")

	// ErrNotFound is returned when the object of a single-object scan does not exist.
	ErrNotFound = errors.New("object not found")

	// ErrStore is returned when listing, fetching or persisting against the object store fails.
	ErrStore = errors.New("object store failure")

	// ErrScanInProgress is returned when another folder scan holds the lock for the same bad-file list.
	ErrScanInProgress = errors.New("scan already in progress")
)
