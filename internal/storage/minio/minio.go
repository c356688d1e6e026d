// Package minio implements the optional object-store archive for exported
// report files. Every successful export can additionally be uploaded to a
// bucket, giving a durable history beyond the local output directory.
package minio

import (
	"bytes"
	"context"
	"fmt"
	"time"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/zaoqi-icu/negoprep/internal/config"
	"github.com/zaoqi-icu/negoprep/internal/logging"
	"github.com/zaoqi-icu/negoprep/pkg/errors"
)

// Archive uploads exported report files to a MinIO (or S3-compatible)
// bucket.
type Archive struct {
	client *miniogo.Client
	bucket string
	log    logging.Logger
}

// New connects to the object store and creates the bucket when it does not
// exist yet.
func New(ctx context.Context, cfg config.ArchiveConfig, log logging.Logger) (*Archive, error) {
	client, err := miniogo.New(cfg.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to create object store client")
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to check archive bucket")
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, miniogo.MakeBucketOptions{}); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to create archive bucket")
		}
	}

	return &Archive{
		client: client,
		bucket: cfg.Bucket,
		log:    log.Named("storage.minio"),
	}, nil
}

// Store uploads payload under a date-partitioned object key derived from the
// file name and returns that key.
func (a *Archive) Store(ctx context.Context, filename string, payload []byte, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%s", time.Now().UTC().Format("2006/01"), filename)

	_, err := a.client.PutObject(ctx, a.bucket, key,
		bytes.NewReader(payload), int64(len(payload)),
		miniogo.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeExportArchiveFailed, "failed to upload export artifact")
	}

	a.log.Info("export artifact archived",
		logging.String("bucket", a.bucket),
		logging.String("key", key),
		logging.Int("bytes", len(payload)),
	)
	return key, nil
}
