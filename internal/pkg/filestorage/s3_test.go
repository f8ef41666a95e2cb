package filestorage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	objects map[string][]byte
	types   map[string]string
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeObjects) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(in.Key)
	f.objects[key] = body
	f.types[key] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	key := aws.ToString(in.Key)
	body, ok := f.objects[key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{
		Body:        io.NopCloser(bytes.NewReader(body)),
		ContentType: aws.String(f.types[key]),
	}, nil
}

func (f *fakeObjects) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Storage_SaveOpenDelete(t *testing.T) {
	objects := newFakeObjects()
	storage := newS3Storage(objects, "placement", "uploads/")
	ctx := context.Background()

	stored, err := storage.Save(ctx, Incoming{OriginalName: "resume.pdf", Content: []byte("%PDF-1.4"), MimeType: "application/pdf"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.Path, "/uploads/"))
	assert.True(t, strings.HasSuffix(stored.Name, ".pdf"))
	assert.True(t, storage.Owns(stored.Path))
	assert.Contains(t, objects.objects, stored.Name)

	body, contentType, err := storage.Open(ctx, stored.Path)
	require.NoError(t, err)
	content, err := io.ReadAll(body)
	require.NoError(t, body.Close())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(content))
	assert.Equal(t, "application/pdf", contentType)

	require.NoError(t, storage.Delete(ctx, stored.Path))
	_, _, err = storage.Open(ctx, stored.Path)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestS3Storage_ForeignReferences(t *testing.T) {
	storage := newS3Storage(newFakeObjects(), "placement", "/uploads")

	assert.False(t, storage.Owns("https://cdn.example.com/a.png"))
	assert.False(t, storage.Owns("/uploads/../secrets"))
	assert.ErrorIs(t, storage.Delete(context.Background(), "/static/a.png"), ErrNotManaged)
}
