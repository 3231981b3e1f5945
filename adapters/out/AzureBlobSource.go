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
	"gzip-checker/pkg/azureutils"
)

type AzureBlobSource struct {
	svc       *azureutils.Blob
	container string
}

func NewAzureBlobSource(svc *azureutils.Blob, container string) *AzureBlobSource {
	return &AzureBlobSource{svc: svc, container: container}
}

func (a *AzureBlobSource) List(ctx context.Context, prefix, delimiter string) ([]out.ObjectRecord, error) {
	entries, err := a.svc.ListBlobs(ctx, a.container, prefix, delimiter)
	if err != nil {
		return nil, requestError(ctx, err, "failed to list blobs of %s under %q", a.container, prefix)
	}

	records := make([]out.ObjectRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, out.ObjectRecord{Name: entry.Name, IsPrefix: entry.IsPrefix})
	}

	sortRecords(records)

	return records, nil
}

func (a *AzureBlobSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	data, err := a.svc.DownloadBlob(ctx, a.container, name)
	if azureutils.IsNotFound(err) {
		return nil, notFoundError(a.container, name)
	}

	if err != nil {
		return nil, requestError(ctx, err, "failed to download blob %s/%s", a.container, name)
	}

	return data, nil
}

func (a *AzureBlobSource) Put(ctx context.Context, name string, data []byte) error {
	if err := a.svc.UploadBlob(ctx, a.container, name, data); err != nil {
		return requestError(ctx, err, "failed to upload blob %s/%s", a.container, name)
	}

	return nil
}
