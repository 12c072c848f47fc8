package invoices

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AttachmentStore writes uploaded invoice files under a base directory,
// one subdirectory per project code.
type AttachmentStore struct {
	baseDir string
}

// NewAttachmentStore creates a store rooted at baseDir
func NewAttachmentStore(baseDir string) *AttachmentStore {
	return &AttachmentStore{baseDir: baseDir}
}

// sanitize keeps letters, digits, dash and underscore so invoice numbers
// with slashes or spaces cannot escape the directory.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Save stores the file content and returns the path it was written to.
// Files are named INV_<invoice-no>_<uuid><ext> under <base>/<project>,
// falling back to a GENERAL directory when the invoice has no project.
func (s *AttachmentStore) Save(projectCode, invoiceNo, filename string, src io.Reader) (string, error) {
	dir := sanitize(strings.TrimSpace(projectCode))
	if dir == "" {
		dir = "GENERAL"
	}

	destDir := filepath.Join(s.baseDir, dir)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create attachment directory: %w", err)
	}

	ext := filepath.Ext(filename)
	name := fmt.Sprintf("INV_%s_%s%s", sanitize(invoiceNo), uuid.New().String(), ext)
	dest := filepath.Join(destDir, name)

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, src); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("failed to write attachment: %w", err)
	}
	return dest, nil
}
