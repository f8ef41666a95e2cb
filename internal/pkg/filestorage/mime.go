package filestorage

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Resume MIME types accepted for upload
const (
	MIMEPDF  = "application/pdf"
	MIMEDoc  = "application/msword"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ResumeMIMETypes is the allow-list for resume uploads
var ResumeMIMETypes = []string{MIMEPDF, MIMEDoc, MIMEDocx}

// Kind selects the checks applied to an upload
type Kind int

const (
	KindImage Kind = iota
	KindResume
)

// Inspector validates uploaded content before it reaches storage
type Inspector struct {
	// InspectResumes additionally opens PDF and DOCX resumes to reject corrupt files
	InspectResumes bool
}

// Check sniffs the content type and returns the file ready to be saved
func (in Inspector) Check(kind Kind, originalName, declaredType string, content []byte) (Incoming, error) {
	if len(content) == 0 {
		return Incoming{}, apperrors.NewUploadRejectedError(fmt.Sprintf("File %q is empty", originalName))
	}

	detected := mimetype.Detect(content)

	switch kind {
	case KindImage:
		if !strings.HasPrefix(detected.String(), "image/") {
			return Incoming{}, apperrors.NewUploadRejectedError("Only image files are allowed")
		}
		return Incoming{OriginalName: originalName, Content: content, MimeType: baseType(detected)}, nil

	case KindResume:
		mimeType, ok := resumeType(detected, declaredType)
		if !ok {
			return Incoming{}, apperrors.NewUploadRejectedError("Only .pdf, .doc, and .docx files are allowed")
		}
		if in.InspectResumes {
			if err := InspectResume(content, mimeType); err != nil {
				return Incoming{}, apperrors.NewUploadRejectedError("Resume file is corrupt or unreadable")
			}
		}
		return Incoming{OriginalName: originalName, Content: content, MimeType: mimeType}, nil
	}

	return Incoming{}, apperrors.NewUploadRejectedError("Unsupported upload")
}

// resumeType matches sniffed content against the allow-list. Legacy Word files are
// plain OLE containers, so a generic OLE match is accepted when the client declared msword.
func resumeType(detected *mimetype.MIME, declared string) (string, bool) {
	for _, allowed := range ResumeMIMETypes {
		if detected.Is(allowed) {
			return allowed, true
		}
	}
	if detected.Is("application/x-ole-storage") && strings.EqualFold(strings.TrimSpace(declared), MIMEDoc) {
		return MIMEDoc, true
	}
	return "", false
}

func baseType(m *mimetype.MIME) string {
	return strings.SplitN(m.String(), ";", 2)[0]
}

// InspectResume opens PDF and DOCX content to make sure it is a readable document
func InspectResume(content []byte, mimeType string) (err error) {
	// pdf parsing panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to parse document: %v", r)
		}
	}()

	switch mimeType {
	case MIMEPDF:
		reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
		if err != nil {
			return fmt.Errorf("failed to read pdf: %w", err)
		}
		if reader.NumPage() < 1 {
			return fmt.Errorf("pdf has no pages")
		}
	case MIMEDocx:
		doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
		if err != nil {
			return fmt.Errorf("failed to parse docx: %w", err)
		}
		defer doc.Close()
	}
	return nil
}
