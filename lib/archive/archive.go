package archive

import (
	"bytes"
	"context"

	"github.com/minio/minio-go/v7"
	log "github.com/sirupsen/logrus"

	"hr-bot-backend/config"
	s3client "hr-bot-backend/s3"
)

// Provider архивирует итоговые документы скрининга в S3.
// Побочный канал: если хранилище не настроено или недоступно, диалог не страдает.
type Provider interface {
	ArchiveSummary(ctx context.Context, fileName string, doc []byte) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		s3client: s3client.Client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) ArchiveSummary(ctx context.Context, fileName string, doc []byte) error {
	if i.s3client == nil {
		log.WithField("file_name", fileName).Debug("архивация пропущена, тк не настроен клиент S3")
		return nil
	}
	bucketName := config.Conf.S3.BucketName
	if err := i.makeBucket(ctx, bucketName); err != nil {
		return err
	}
	_, err := i.s3client.PutObject(ctx, bucketName, fileName,
		bytes.NewReader(doc), int64(len(doc)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return err
	}
	return nil
}

func (i impl) makeBucket(ctx context.Context, bucketName string) error {
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}
