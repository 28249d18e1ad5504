package services

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eohue/ibookee-web-sub001/internal/pkg/apperrors"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/images"
)

type fakeStorage struct {
	stored  map[string][]byte
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{stored: map[string][]byte{}}
}

func (f *fakeStorage) Name() string { return "fake" }

func (f *fakeStorage) Store(_ context.Context, key, _ string, data []byte) (string, error) {
	f.stored[key] = data
	return "https://cdn.example/" + key, nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func multipartFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/uploads", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["image"][0]
}

func smallPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestUploadService(storage *fakeStorage) UploadService {
	return NewUploadService(storage, images.NewProcessor(2560, 80), 20, zerolog.Nop())
}

func TestUploadFileImage(t *testing.T) {
	storage := newFakeStorage()
	svc := newTestUploadService(storage)

	url, err := svc.UploadFile(context.Background(), multipartFileHeader(t, "photo.png", smallPNG(t)))
	require.NoError(t, err)

	assert.Contains(t, url, "https://cdn.example/images/")
	assert.Contains(t, url, ".webp")
	assert.Len(t, storage.stored, 1)
}

func TestUploadFilePDFPassesThrough(t *testing.T) {
	storage := newFakeStorage()
	svc := newTestUploadService(storage)

	content := []byte("%PDF-1.4 fake document")
	url, err := svc.UploadFile(context.Background(), multipartFileHeader(t, "brochure.pdf", content))
	require.NoError(t, err)

	assert.Contains(t, url, "/files/")
	assert.Contains(t, url, ".pdf")
	for _, stored := range storage.stored {
		assert.Equal(t, content, stored)
	}
}

func TestUploadFileRejectsDisallowedExtension(t *testing.T) {
	svc := newTestUploadService(newFakeStorage())

	_, err := svc.UploadFile(context.Background(), multipartFileHeader(t, "malware.exe", []byte("MZ")))
	assert.ErrorIs(t, err, apperrors.ErrFileTypeNotAllowed)
}

func TestUploadFileRejectsOversize(t *testing.T) {
	storage := newFakeStorage()
	svc := NewUploadService(storage, images.NewProcessor(2560, 80), 1, zerolog.Nop())

	big := make([]byte, 2<<20)
	_, err := svc.UploadFile(context.Background(), multipartFileHeader(t, "big.pdf", big))
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestUploadFileRejectsCorruptImage(t *testing.T) {
	svc := newTestUploadService(newFakeStorage())

	_, err := svc.UploadFile(context.Background(), multipartFileHeader(t, "broken.jpg", []byte("not an image")))
	assert.ErrorIs(t, err, apperrors.ErrInvalidImage)
}

func TestUploadFileNilHeader(t *testing.T) {
	svc := newTestUploadService(newFakeStorage())

	_, err := svc.UploadFile(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteFile(t *testing.T) {
	storage := newFakeStorage()
	svc := newTestUploadService(storage)

	require.NoError(t, svc.DeleteFile(context.Background(), "images/a.webp"))
	assert.Equal(t, []string{"images/a.webp"}, storage.deleted)

	err := svc.DeleteFile(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
