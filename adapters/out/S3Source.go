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
	"gzip-checker/pkg/awsutils"
)

// S3Source treats the container as a bucket.
type S3Source struct {
	svc    *awsutils.S3
	bucket string
}

func NewS3Source(svc *awsutils.S3, bucket string) *S3Source {
	return &S3Source{svc: svc, bucket: bucket}
}

func (s *S3Source) List(ctx context.Context, prefix, delimiter string) ([]out.ObjectRecord, error) {
	entries, err := s.svc.ListFilesFromS3Bucket(ctx, s.bucket, prefix, delimiter)
	if err != nil {
		return nil, requestError(ctx, err, "failed to list objects of %s under %q", s.bucket, prefix)
	}

	records := make([]out.ObjectRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, out.ObjectRecord{Name: entry.Name, IsPrefix: entry.IsPrefix})
	}

	sortRecords(records)

	return records, nil
}

func (s *S3Source) Fetch(ctx context.Context, name string) ([]byte, error) {
	data, err := s.svc.DownloadFromS3Bucket(ctx, s.bucket, name)
	if awsutils.IsNotFound(err) {
		return nil, notFoundError(s.bucket, name)
	}

	if err != nil {
		return nil, requestError(ctx, err, "failed to download %s/%s", s.bucket, name)
	}

	return data, nil
}

func (s *S3Source) Put(ctx context.Context, name string, data []byte) error {
	if err := s.svc.UploadToS3Bucket(ctx, data, s.bucket, name); err != nil {
		return requestError(ctx, err, "failed to upload %s/%s", s.bucket, name)
	}

	return nil
}
