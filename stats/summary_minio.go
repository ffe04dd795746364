package stats

import (
	"bytes"
	"context"

	"radiology-workflow-api/utils"

	"github.com/minio/minio-go/v7"
)

type MinIOStorage struct {
	minioClient *minio.Client
	bucketName  string
}

func NewMinIOStorage(minioClient *minio.Client, bucketName string) *MinIOStorage {
	return &MinIOStorage{
		minioClient: minioClient,
		bucketName:  bucketName,
	}
}

// StoreFile uploads one export payload, creating the bucket on first use.
func (storage *MinIOStorage) StoreFile(fileName string, fileData []byte) error {
	ctx := context.Background()
	err := storage.minioClient.MakeBucket(ctx, storage.bucketName, minio.MakeBucketOptions{})
	if err != nil {
		exists, errBucketExists := storage.minioClient.BucketExists(ctx, storage.bucketName)
		if errBucketExists != nil || !exists {
			return err
		}
	}

	info, err := storage.minioClient.PutObject(ctx, storage.bucketName, fileName,
		bytes.NewReader(fileData), int64(len(fileData)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return err
	}

	utils.LogInfo("Successfully uploaded %s of size %d", fileName, info.Size)
	return nil
}

func (storage *MinIOStorage) DownloadFile(export SummaryExport) (*minio.Object, error) {
	return storage.minioClient.GetObject(context.Background(), storage.bucketName,
		export.FilePath, minio.GetObjectOptions{})
}
