package util

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
)

func GetJobDirectoryPath(jobId string) string {
	return fmt.Sprintf("jobs/%s", jobId)
}

// Example output: "uploads/{id}"
func GetUploadDirectoryPath(id string) string {
	return fmt.Sprintf("uploads/%s", id)
}

// EnsureBucket creates bucketName when it does not exist yet.
func EnsureBucket(ctx context.Context, s3 *minio.Client, bucketName string) error {
	exists, err := s3.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucketName, err)
	}
	if exists {
		return nil
	}

	if err := s3.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucketName, err)
	}
	return nil
}

type FileUploadOptions struct {
	// Object key prefix, "jobs/123" turns "data.pdf" into "jobs/123/data.pdf"
	DirectoryPath string
	Bucket        string
	S3            *minio.Client
	// Stored as x-amz-meta-* headers on the object
	Metadata map[string]string
}

// UploadFileToS3ByPath uploads localPath into an existing bucket.
func UploadFileToS3ByPath(ctx context.Context, localPath string, fuo *FileUploadOptions) (minio.UploadInfo, error) {
	contentType, err := detectContentType(localPath)
	if err != nil {
		return minio.UploadInfo{}, err
	}

	info, err := fuo.S3.FPutObject(ctx, fuo.Bucket, prepareFileName(filepath.Base(localPath), fuo), localPath, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: fuo.Metadata,
	})
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload %s to S3: %w", filepath.Base(localPath), err)
	}

	return info, nil
}

// downloads an object to a local path, creating or truncating the file
func DownloadFileFromS3(ctx context.Context, s3 *minio.Client, bucket, objectName, localPath string) error {
	if err := s3.FGetObject(ctx, bucket, objectName, localPath, minio.GetObjectOptions{}); err != nil {
		return fmt.Errorf("failed to download %s from S3: %w", objectName, err)
	}
	return nil
}

// Generates the object key of a file under the upload directory
func prepareFileName(originalName string, fuo *FileUploadOptions) string {
	fileName := originalName

	if fuo != nil && fuo.DirectoryPath != "" {
		// object keys always use forward slashes
		fileName = path.Join(fuo.DirectoryPath, fileName)
	}

	return fileName
}

// Determines the content type of a file at the given path
func detectContentType(localPath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(localPath))
	switch ext {
	case ".pdf":
		return "application/pdf", nil
	case ".zip":
		return "application/zip", nil
	}
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType, nil
	}

	// sniff the first 512 bytes
	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open file for content type detection: %w", err)
	}
	defer file.Close()

	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read file for content type detection: %w", err)
	}

	return http.DetectContentType(buf[:n]), nil
}
