// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ffbazaar/ffbazaar-backend/internal/config"
)

// StorageService uploads listing and seller images to S3. Without AWS
// credentials it degrades to a local stub so the admin surface stays usable
// in development.
type StorageService struct {
	cfg      *config.Config
	s3Client *s3.S3
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

type UploadOptions struct {
	Folder       string
	MaxSize      int64
	AllowedTypes []string
}

func NewStorageService(cfg *config.Config) *StorageService {
	svc := &StorageService{cfg: cfg}

	if cfg.AWS.AccessKeyID != "" && cfg.AWS.SecretAccessKey != "" {
		sess, err := session.NewSession(&aws.Config{
			Region: aws.String(cfg.AWS.Region),
			Credentials: credentials.NewStaticCredentials(
				cfg.AWS.AccessKeyID,
				cfg.AWS.SecretAccessKey,
				"",
			),
		})
		if err != nil {
			logrus.WithError(err).Warn("Failed to create AWS session, uploads use local stub")
		} else {
			svc.s3Client = s3.New(sess)
		}
	}

	return svc
}

// UploadImage validates and stores one image file.
func (s *StorageService) UploadImage(file multipart.File, header *multipart.FileHeader, options UploadOptions) (*UploadResult, error) {
	if options.MaxSize > 0 && header.Size > options.MaxSize {
		return nil, fmt.Errorf("file size %d exceeds maximum %d bytes", header.Size, options.MaxSize)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if len(options.AllowedTypes) > 0 {
		allowed := false
		for _, t := range options.AllowedTypes {
			if ext == t {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, fmt.Errorf("file type %s is not allowed", ext)
		}
	}

	key := s.objectKey(header.Filename, options.Folder)

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	contentType := header.Header.Get("Content-Type")
	if s.s3Client != nil {
		return s.uploadToS3(fileBytes, key, contentType)
	}
	return s.uploadToLocal(fileBytes, key, contentType)
}

func (s *StorageService) uploadToS3(fileBytes []byte, key, contentType string) (*UploadResult, error) {
	_, err := s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &UploadResult{
		URL:      s.publicURL(key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) uploadToLocal(fileBytes []byte, key, contentType string) (*UploadResult, error) {
	// Development stub: hand back a URL the dev server would serve.
	return &UploadResult{
		URL:      fmt.Sprintf("http://localhost:%s/uploads/%s", s.cfg.Server.Port, key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) DeleteFile(key string) error {
	if s.s3Client == nil {
		logrus.WithField("key", key).Info("Local storage stub, nothing to delete")
		return nil
	}

	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.AWS.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}

// ImageUploadOptions returns the constraints for a given upload category.
func (s *StorageService) ImageUploadOptions(category string) UploadOptions {
	switch category {
	case "listings":
		return UploadOptions{
			Folder:       "listings",
			MaxSize:      10 * 1024 * 1024,
			AllowedTypes: []string{".jpg", ".jpeg", ".png", ".webp"},
		}
	case "sellers":
		return UploadOptions{
			Folder:       "sellers",
			MaxSize:      2 * 1024 * 1024,
			AllowedTypes: []string{".jpg", ".jpeg", ".png", ".webp"},
		}
	default:
		return UploadOptions{
			Folder:       "general",
			MaxSize:      5 * 1024 * 1024,
			AllowedTypes: []string{".jpg", ".jpeg", ".png"},
		}
	}
}

func (s *StorageService) objectKey(originalName, folder string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.New().String(), ext)
	if folder == "" {
		return name
	}
	return fmt.Sprintf("%s/%s", folder, name)
}

func (s *StorageService) publicURL(key string) string {
	if s.cfg.AWS.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.cfg.AWS.CloudFrontURL, "/"), key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.AWS.S3Bucket, s.cfg.AWS.Region, key)
}
