package archive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectClient подмножество *minio.Client, используемое архивом
type ObjectClient interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// Config параметры подключения к объектному хранилищу
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Store архив загруженных прайс-листов в S3-совместимом хранилище
type Store struct {
	client ObjectClient
	bucket string
	now    func() time.Time
}

// NewMinio создает клиент MinIO
func NewMinio(cfg Config) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create client: %v", ErrBucket, err)
	}
	return client, nil
}

// NewStore создает архив поверх клиента
func NewStore(client ObjectClient, bucket string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		now:    time.Now,
	}
}

// EnsureBucket создает bucket, если его нет
func (s *Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("%w: check %s: %v", ErrBucket, s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrBucket, s.bucket, err)
	}
	return nil
}

// Put сохраняет файл под ключом <prefix>/<YYYY/MM/DD>/<uuid>-<name> и возвращает ключ
func (s *Store) Put(ctx context.Context, prefix, fileName string, content []byte, contentType string) (string, error) {
	key := path.Join(
		strings.Trim(prefix, "/"),
		s.now().UTC().Format("2006/01/02"),
		uuid.NewString()+"-"+path.Base(fileName),
	)

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s/%s: %v", ErrPut, s.bucket, key, err)
	}
	return key, nil
}
