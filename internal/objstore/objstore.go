// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package objstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dustin/go-humanize"

	"github.com/tfctl/awsh/internal/log"
	"github.com/tfctl/awsh/internal/result"
)

// S3 error codes translated into messages.
const (
	CodeNoSuchBucket = "NoSuchBucket"
	CodeNoSuchKey    = "NoSuchKey"
)

// fallbackMessages stand in when S3 returns a code without a message body.
var fallbackMessages = map[string]string{
	CodeNoSuchBucket: "The specified bucket does not exist",
	CodeNoSuchKey:    "The specified key does not exist.",
}

// API is the slice of the S3 client the Store needs.
type API interface {
	PutObject(ctx context.Context, params *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
	s3v2.ListObjectsV2APIClient
}

// Store moves whole files between the local filesystem and S3.
type Store struct {
	client API
}

// NewStore returns a Store over client.
func NewStore(client API) *Store {
	return &Store{client: client}
}

// WriteFile uploads the file at localPath to bucket/key. A missing local file
// and a missing bucket are KnownErrors; anything else is Unrecoverable.
func (s *Store) WriteFile(ctx context.Context, localPath, bucket, key string) result.Result {
	f, err := os.Open(localPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return result.Knownf("No file found with path_to_file: %s", localPath)
		}
		return result.Fail(err)
	}
	defer f.Close()

	var size uint64
	if fi, err := f.Stat(); err == nil {
		size = uint64(fi.Size())
	}
	log.Debugf("s3 put: path=%s, bucket=%s, key=%s, size=%s", localPath, bucket, key, humanize.Bytes(size))

	_, err = s.client.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
		Body:   f,
	})
	if err != nil {
		log.Debugf("s3 put err: err=%v", err)
		return result.FromAPIError(err, fallbackMessages, CodeNoSuchBucket)
	}

	return result.OK(fmt.Sprintf("File uploaded to bucket: %s, on key: %s", bucket, key))
}

// ReadFile downloads bucket/key into destination. The object is fetched
// before destination is touched, so a missing bucket or key is reported
// ahead of a bad destination. A failed copy removes the partial file.
func (s *Store) ReadFile(ctx context.Context, bucket, key, destination string) result.Result {
	log.Debugf("s3 get: bucket=%s, key=%s, destination=%s", bucket, key, destination)

	out, err := s.client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		log.Debugf("s3 get err: err=%v", err)
		return result.FromAPIError(err, fallbackMessages, CodeNoSuchBucket, CodeNoSuchKey)
	}
	defer out.Body.Close()

	f, err := os.Create(destination)
	if err != nil {
		log.Debugf("destination create err: err=%v", err)
		return result.Knownf("Invalid destination: %s", destination)
	}

	n, err := io.Copy(f, out.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(destination)
		return result.Fail(fmt.Errorf("failed to write %s: %w", destination, err))
	}
	log.Debugf("s3 get done: destination=%s, size=%s", destination, humanize.Bytes(uint64(n)))

	return result.OK(fmt.Sprintf("File saved to %s", destination))
}

// ListKeys returns every key in bucket under prefix, walking all pages.
func (s *Store) ListKeys(ctx context.Context, bucket, prefix string) ([]string, error) {
	input := &s3v2.ListObjectsV2Input{Bucket: awsv2.String(bucket)}
	if prefix != "" {
		input.Prefix = awsv2.String(prefix)
	}

	var keys []string
	paginator := s3v2.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		log.Tracef("s3 list page: bucket=%s, objects=%d", bucket, len(page.Contents))
		for _, obj := range page.Contents {
			if obj.Key != nil {
				keys = append(keys, *obj.Key)
			}
		}
	}
	log.Debugf("s3 list: bucket=%s, prefix=%s, count=%d", bucket, prefix, len(keys))

	return keys, nil
}
