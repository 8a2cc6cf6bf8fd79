package filestorage

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/SeakMengs/PdfPress/internal/config"
	"github.com/SeakMengs/PdfPress/internal/util"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func NewMinioClient(cfg *config.MinioConfig) (*minio.Client, error) {
	return minio.New(cfg.ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.ACCESS_KEY, cfg.SECRET_KEY, ""),
		Secure: cfg.USE_SSL,
		Region: "us-east-1",
	})
}

// Storage moves job inputs and outputs between the local disk and one bucket.
type Storage struct {
	S3     *minio.Client
	Bucket string

	bucketOnce sync.Once
	bucketErr  error
}

func (s *Storage) ensureBucket(ctx context.Context) error {
	s.bucketOnce.Do(func() {
		s.bucketErr = util.EnsureBucket(ctx, s.S3, s.Bucket)
	})
	return s.bucketErr
}

func NewStorage(cfg *config.MinioConfig) (*Storage, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("minio is not configured, set MINIO_ENDPOINT and MINIO_BUCKET")
	}

	s3, err := NewMinioClient(cfg)
	if err != nil {
		return nil, err
	}

	return &Storage{S3: s3, Bucket: cfg.BUCKET}, nil
}

// UploadAll uploads every local file under directoryPath and returns the object keys in order.
func (s *Storage) UploadAll(ctx context.Context, files []string, directoryPath string) ([]string, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(files))
	for _, f := range files {
		info, err := util.UploadFileToS3ByPath(ctx, f, &util.FileUploadOptions{
			DirectoryPath: directoryPath,
			Bucket:        s.Bucket,
			S3:            s.S3,
			Metadata:      map[string]string{"Source-Name": filepath.Base(f)},
		})
		if err != nil {
			return keys, err
		}
		keys = append(keys, info.Key)
	}

	return keys, nil
}

func (s *Storage) Download(ctx context.Context, objectName, localPath string) error {
	return util.DownloadFileFromS3(ctx, s.S3, s.Bucket, objectName, localPath)
}
