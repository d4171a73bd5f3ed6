package adapters

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/Slime-Stack/Sluggers/application/ports/outbound"
	"github.com/Slime-Stack/Sluggers/config"
)

type s3MediaStore struct {
	logger   outbound.LoggerPort
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3MediaStore(logger outbound.LoggerPort, s3Svc *s3.S3, s3Config *config.S3Config) outbound.MediaStorePort {
	return &s3MediaStore{
		logger:   logger,
		s3Svc:    s3Svc,
		s3Config: s3Config,
	}
}

func (s *s3MediaStore) Upload(ctx context.Context, objectName string, payload []byte, contentType string) (string, error) {
	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.s3Config.BucketName),
		Key:           aws.String(objectName),
		Body:          bytes.NewReader(payload),
		ContentLength: aws.Int64(int64(len(payload))),
		ContentType:   aws.String(contentType),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload object to S3", map[string]interface{}{
			"bucket":     s.s3Config.BucketName,
			"objectName": objectName,
		})
		return "", err
	}

	s3Url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, objectName)
	s.logger.DebugWithFields("Successfully uploaded object to S3", map[string]interface{}{
		"s3Url": s3Url,
	})

	return s3Url, nil
}
