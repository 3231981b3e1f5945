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

package awsutils

import (
	"bytes"
	"context"
	"errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const (
	downloadConcurrency = 1
	uploadPartSize      = 64 * 1024 * 1024
	uploadConcurrency   = 4
	notFoundCode        = "NotFound"
)

type S3Entry struct {
	Name     string
	IsPrefix bool
}

type S3 struct {
	svc        *s3.S3
	downloader *s3manager.Downloader
	uploader   *s3manager.Uploader
}

func (s *S3) Init(awsSession *session.Session, awsConfig *aws.Config) {
	if awsConfig == nil {
		s.svc = s3.New(awsSession)
	} else {
		s.svc = s3.New(awsSession, awsConfig)
	}

	s.downloader = s3manager.NewDownloaderWithClient(s.svc, func(d *s3manager.Downloader) {
		d.Concurrency = downloadConcurrency
	})

	s.uploader = s3manager.NewUploaderWithClient(s.svc, func(u *s3manager.Uploader) {
		u.PartSize = uploadPartSize
		u.Concurrency = uploadConcurrency
	})
}

// ListFilesFromS3Bucket follows continuation tokens until the listing is exhausted.
// Common prefixes are returned as prefix entries when a delimiter is given.
func (s *S3) ListFilesFromS3Bucket(ctx context.Context, bucket, prefix, delimiter string) ([]S3Entry, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	}

	if delimiter != "" {
		input.Delimiter = aws.String(delimiter)
	}

	entries := make([]S3Entry, 0)

	err := s.svc.ListObjectsV2PagesWithContext(ctx, input, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, commonPrefix := range page.CommonPrefixes {
			entries = append(entries, S3Entry{Name: aws.StringValue(commonPrefix.Prefix), IsPrefix: true})
		}

		for _, object := range page.Contents {
			entries = append(entries, S3Entry{Name: aws.StringValue(object.Key)})
		}

		return true
	})

	return entries, err
}

func (s *S3) DownloadFromS3Bucket(ctx context.Context, bucket, item string) ([]byte, error) {
	buffer := aws.NewWriteAtBuffer(make([]byte, 0))

	_, err := s.downloader.DownloadWithContext(ctx, buffer, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(item),
	})
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func (s *S3) UploadToS3Bucket(ctx context.Context, data []byte, bucket, key string) error {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})

	return err
}

func IsNotFound(err error) bool {
	var awsErr awserr.Error
	if !errors.As(err, &awsErr) {
		return false
	}

	switch awsErr.Code() {
	case s3.ErrCodeNoSuchKey, s3.ErrCodeNoSuchBucket, notFoundCode:
		return true
	default:
		return false
	}
}
