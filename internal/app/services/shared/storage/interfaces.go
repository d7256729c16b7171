package storage

import (
	"context"
	"io"
	"mime/multipart"
	"time"
)

type Storage interface {
	UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, objectName string) error
	PresignedDownloadURL(ctx context.Context, objectName, fileName string, expiry time.Duration) (string, error)
	RemoveFile(ctx context.Context, objectName string) error
}
