package archive

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	exists    bool
	existsErr error
	made      []string
	putErr    error
	bucket    string
	key       string
	body      string
	opts      minio.PutObjectOptions
}

func (f *fakeObjects) BucketExists(context.Context, string) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeObjects) MakeBucket(_ context.Context, bucket string, _ minio.MakeBucketOptions) error {
	f.made = append(f.made, bucket)
	return nil
}

func (f *fakeObjects) PutObject(_ context.Context, bucket, key string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	data, _ := io.ReadAll(r)
	f.bucket, f.key, f.body, f.opts = bucket, key, string(data), opts
	return minio.UploadInfo{Bucket: bucket, Key: key, Size: size}, nil
}

func TestStore_Put(t *testing.T) {
	objects := &fakeObjects{}
	s := NewStore(objects, "pricing")
	s.now = func() time.Time { return time.Date(2026, 4, 9, 8, 0, 0, 0, time.UTC) }

	key, err := s.Put(context.Background(), "/tests/", "../sheet.csv", []byte("name,mrp\n"), "text/csv")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "tests/2026/04/09/"), key)
	assert.True(t, strings.HasSuffix(key, "-sheet.csv"), key)
	assert.Equal(t, "pricing", objects.bucket)
	assert.Equal(t, key, objects.key)
	assert.Equal(t, "name,mrp\n", objects.body)
	assert.Equal(t, "text/csv", objects.opts.ContentType)
}

func TestStore_PutError(t *testing.T) {
	s := NewStore(&fakeObjects{putErr: errors.New("denied")}, "pricing")
	_, err := s.Put(context.Background(), "tests", "a.csv", []byte("x"), "text/csv")
	assert.ErrorIs(t, err, ErrPut)
}

func TestStore_EnsureBucket(t *testing.T) {
	ctx := context.Background()

	objects := &fakeObjects{exists: true}
	require.NoError(t, NewStore(objects, "pricing").EnsureBucket(ctx))
	assert.Empty(t, objects.made)

	objects = &fakeObjects{}
	require.NoError(t, NewStore(objects, "pricing").EnsureBucket(ctx))
	assert.Equal(t, []string{"pricing"}, objects.made)

	objects = &fakeObjects{existsErr: errors.New("unreachable")}
	assert.ErrorIs(t, NewStore(objects, "pricing").EnsureBucket(ctx), ErrBucket)
}
