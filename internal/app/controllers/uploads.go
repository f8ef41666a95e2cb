package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/campusconnect/placement-api/internal/app/services"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/filestorage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// UploadConfig configures multipart handling
type UploadConfig struct {
	MaxUploadBytes    int64
	MaxCertifications int
	Inspector         filestorage.Inspector
}

// fieldPolicy decides whether a file field is accepted and which checks it gets
type fieldPolicy func(field string) (filestorage.Kind, bool)

// uploadHandler reads multipart forms and stores their files only after every file passed inspection
type uploadHandler struct {
	storage filestorage.FileStorage
	config  UploadConfig
	logger  zerolog.Logger
}

func newUploadHandler(storage filestorage.FileStorage, config UploadConfig, logger zerolog.Logger) *uploadHandler {
	return &uploadHandler{storage: storage, config: config, logger: logger}
}

// profilePolicy accepts the photo, the resume and one image per certification slot
func (h *uploadHandler) profilePolicy() fieldPolicy {
	return func(field string) (filestorage.Kind, bool) {
		switch field {
		case services.FieldProfilePhoto:
			return filestorage.KindImage, true
		case services.FieldResume:
			return filestorage.KindResume, true
		}
		if i, ok := certificationIndex(field); ok && (h.config.MaxCertifications <= 0 || i < h.config.MaxCertifications) {
			return filestorage.KindImage, true
		}
		return 0, false
	}
}

// singlePolicy accepts exactly one named field
func singlePolicy(name string, kind filestorage.Kind) fieldPolicy {
	return func(field string) (filestorage.Kind, bool) {
		return kind, field == name
	}
}

func certificationIndex(field string) (int, bool) {
	suffix, found := strings.CutPrefix(field, "certificationImage-")
	if !found {
		return 0, false
	}
	i, err := strconv.Atoi(suffix)
	if err != nil || i < 0 || strconv.Itoa(i) != suffix {
		return 0, false
	}
	return i, true
}

// parseForm reads a multipart or urlencoded body within the configured size limit
func (h *uploadHandler) parseForm(c *gin.Context) (*multipart.Form, error) {
	if h.config.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.config.MaxUploadBytes)
	}

	form, err := c.MultipartForm()
	if err == nil {
		return form, nil
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return nil, apperrors.NewUploadRejectedError(fmt.Sprintf("Request exceeds the %d byte upload limit", maxErr.Limit))
	}
	if errors.Is(err, http.ErrNotMultipart) {
		if perr := c.Request.ParseForm(); perr != nil {
			return nil, &apperrors.CustomError{Err: apperrors.ErrMalformedPayload, Message: "Invalid form body"}
		}
		return &multipart.Form{Value: c.Request.PostForm, File: map[string][]*multipart.FileHeader{}}, nil
	}
	return nil, &apperrors.CustomError{
		Err:     apperrors.ErrMalformedPayload,
		Message: "Invalid multipart form",
		Details: map[string]interface{}{"reason": err.Error()},
	}
}

// rawFields keeps the first value of every text field
func rawFields(form *multipart.Form) map[string]string {
	fields := make(map[string]string, len(form.Value))
	for k, v := range form.Value {
		if len(v) > 0 {
			fields[k] = v[0]
		}
	}
	return fields
}

// store checks every file of the form against policy and saves them.
// Nothing is written unless all files pass.
func (h *uploadHandler) store(ctx context.Context, form *multipart.Form, policy fieldPolicy) (map[string]filestorage.StoredFile, error) {
	pending := make(map[string]filestorage.Incoming, len(form.File))
	for field, headers := range form.File {
		if len(headers) == 0 {
			continue
		}
		kind, ok := policy(field)
		if !ok {
			return nil, apperrors.NewUploadRejectedError(fmt.Sprintf("Unexpected file field '%s'", field))
		}
		if len(headers) > 1 {
			return nil, apperrors.NewUploadRejectedError(fmt.Sprintf("Only one file is allowed in field '%s'", field))
		}

		content, err := readFile(headers[0])
		if err != nil {
			return nil, fmt.Errorf("error reading upload %s: %w", field, err)
		}
		incoming, err := h.config.Inspector.Check(kind, headers[0].Filename, headers[0].Header.Get("Content-Type"), content)
		if err != nil {
			return nil, err
		}
		pending[field] = incoming
	}

	stored := make(map[string]filestorage.StoredFile, len(pending))
	for field, incoming := range pending {
		file, err := h.storage.Save(ctx, incoming)
		if err != nil {
			h.discard(ctx, stored)
			return nil, fmt.Errorf("error storing upload %s: %w", field, err)
		}
		stored[field] = file
	}
	return stored, nil
}

// discard removes files saved for a request that did not complete
func (h *uploadHandler) discard(ctx context.Context, files map[string]filestorage.StoredFile) {
	for _, f := range files {
		if err := h.storage.Delete(context.WithoutCancel(ctx), f.Path); err != nil {
			h.logger.Warn().Err(err).Str("path", f.Path).Msg("Failed to discard upload")
		}
	}
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
