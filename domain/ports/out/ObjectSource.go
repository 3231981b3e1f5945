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

import "context"

const PathDelimiter = "/"

// ObjectRecord is a listing entry. IsPrefix marks a virtual directory.
type ObjectRecord struct {
	Name     string
	IsPrefix bool
}

// ObjectSource is bound to a single account and container.
//
// List returns the entries directly under prefix, grouping deeper names into prefix records ending with delimiter.
// Fetch fails with entities.ErrNotFound for a missing object and entities.ErrStore for any other failure.
// Put overwrites the object if it already exists.
//
//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../../mocks/mock_object_source.go -package=mocks -source=ObjectSource.go
type ObjectSource interface {
	List(ctx context.Context, prefix, delimiter string) ([]ObjectRecord, error)
	Fetch(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, data []byte) error
}

type ObjectSourceFactory interface {
	GetObjectSource(account, container string) (ObjectSource, error)
}
