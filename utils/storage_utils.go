package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// ImageStore writes product photos either to an S3-compatible bucket or,
// when no bucket is configured, to a local directory served by the app.
type ImageStore struct {
	S3Endpoint string
	S3Region   string
	S3Bucket   string
	AccessKey  string
	SecretKey  string
	LocalDir   string
}

func (s *ImageStore) s3Enabled() bool {
	return s.S3Bucket != "" && s.AccessKey != "" && s.SecretKey != ""
}

func (s *ImageStore) getS3Client() *s3.S3 {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(s.S3Region),
		Endpoint: aws.String(s.S3Endpoint),
		Credentials: credentials.NewStaticCredentials(
			s.AccessKey, s.SecretKey, "",
		),
	}))
	return s3.New(sess)
}

// SaveProductImage decodes a base64 image payload (with or without a data:
// URL prefix) and stores it under a random file name. Returns the path the
// frontend can load the image from.
func (s *ImageStore) SaveProductImage(imageBase64 string) (string, error) {
	raw := imageBase64
	if i := strings.IndexByte(raw, ','); i >= 0 {
		raw = raw[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	fileName := RandomFileName(".jpg")
	if s.s3Enabled() {
		return s.uploadToS3(data, fileName, "products")
	}

	if err := os.MkdirAll(s.LocalDir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(s.LocalDir, fileName), data, 0o644); err != nil {
		return "", err
	}
	return "/images/products/" + fileName, nil
}

func (s *ImageStore) uploadToS3(file []byte, fileName string, folder string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	s3Client := s.getS3Client()
	_, err := s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.S3Bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String("image/jpeg"),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	endpoint := strings.TrimRight(s.S3Endpoint, "/")
	return fmt.Sprintf("%s/%s/%s", endpoint, s.S3Bucket, filePath), nil
}
