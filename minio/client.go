package minio

import (
	"bytes"
	"context"
	"log"

	"github.com/nwfth/forms-go/config"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var Client *minioSDK.Client
var BucketName string

// Enabled reports whether the PDF archive is configured. Everything else in
// this package is a no-op when it is not.
func Enabled() bool {
	return config.MinioEndpoint != ""
}

func InitMinio() {
	if !Enabled() {
		log.Println("MinIO not configured, PDF archive disabled")
		return
	}

	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to MinIO: %v", err)
	}

	log.Println("✅ Successfully connected to MinIO")

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("❌ Failed to check bucket existence: %v", err)
	}

	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("❌ Failed to create bucket: %v", err)
		}
		log.Printf("✅ Bucket created: %s\n", BucketName)
	}

	Client = minioClient
}

// UploadPDF archives one rendered document under the given object name.
func UploadPDF(ctx context.Context, objectName string, data []byte) error {
	_, err := Client.PutObject(ctx, BucketName, objectName,
		bytes.NewReader(data), int64(len(data)),
		minioSDK.PutObjectOptions{ContentType: "application/pdf"})
	return err
}
