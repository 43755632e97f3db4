package s3client

import (
	"github.com/minio/minio-go/v7"
)

// Client - общий клиент S3, nil если хранилище не настроено
var Client *minio.Client
