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

package azureutils

import (
	"context"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
)

const (
	maxRetries       = 3
	uploadBlockSize  = 4 * 1024 * 1024
	uploadConcurrent = 4
)

type BlobEntry struct {
	Name     string
	IsPrefix bool
}

type Blob struct {
	client *azblob.Client
}

func (b *Blob) Init(account, domain string, credential azcore.TokenCredential) error {
	serviceURL := fmt.Sprintf("https://%s.%s/", account, domain)

	client, err := azblob.NewClient(serviceURL, credential, &azblob.ClientOptions{
		ClientOptions: policy.ClientOptions{Retry: policy.RetryOptions{MaxRetries: maxRetries}},
	})
	if err != nil {
		return err
	}

	b.client = client

	return nil
}

// ListBlobs walks every page of a listing. An empty delimiter lists flat.
func (b *Blob) ListBlobs(ctx context.Context, containerName, prefix, delimiter string) ([]BlobEntry, error) {
	if delimiter == "" {
		return b.listFlat(ctx, containerName, prefix)
	}

	containerClient := b.client.ServiceClient().NewContainerClient(containerName)
	pager := containerClient.NewListBlobsHierarchyPager(delimiter, &container.ListBlobsHierarchyOptions{Prefix: &prefix})

	entries := make([]BlobEntry, 0)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		if page.Segment == nil {
			continue
		}

		for _, blobPrefix := range page.Segment.BlobPrefixes {
			if blobPrefix.Name != nil {
				entries = append(entries, BlobEntry{Name: *blobPrefix.Name, IsPrefix: true})
			}
		}

		for _, item := range page.Segment.BlobItems {
			if item.Name != nil {
				entries = append(entries, BlobEntry{Name: *item.Name})
			}
		}
	}

	return entries, nil
}

func (b *Blob) listFlat(ctx context.Context, containerName, prefix string) ([]BlobEntry, error) {
	pager := b.client.NewListBlobsFlatPager(containerName, &azblob.ListBlobsFlatOptions{Prefix: &prefix})
	entries := make([]BlobEntry, 0)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		if page.Segment == nil {
			continue
		}

		for _, item := range page.Segment.BlobItems {
			if item.Name != nil {
				entries = append(entries, BlobEntry{Name: *item.Name})
			}
		}
	}

	return entries, nil
}

func (b *Blob) DownloadBlob(ctx context.Context, containerName, blobName string) ([]byte, error) {
	response, err := b.client.DownloadStream(ctx, containerName, blobName, nil)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	return io.ReadAll(response.Body)
}

// UploadBlob replaces the blob content, creating it when missing.
func (b *Blob) UploadBlob(ctx context.Context, containerName, blobName string, data []byte) error {
	_, err := b.client.UploadBuffer(ctx, containerName, blobName, data, &azblob.UploadBufferOptions{
		BlockSize:   uploadBlockSize,
		Concurrency: uploadConcurrent,
	})

	return err
}

func IsNotFound(err error) bool {
	return bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound, bloberror.ResourceNotFound)
}
