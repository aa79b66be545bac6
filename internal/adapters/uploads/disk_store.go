package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	portsrepo "github.com/degroeneboom/school_site_app/internal/core/ports/repositories"
	"github.com/degroeneboom/school_site_app/internal/utils"
)

// DiskStore is the upload collaborator: it accepts binary payloads, writes
// them under a local directory and returns an opaque reference string. The
// rest of the system only ever stores the reference, never the bytes.
type DiskStore struct {
	dir     string
	baseRef string
}

// NewDiskStore creates an upload store writing into dir. References are
// rooted at baseRef (e.g. "/uploads").
func NewDiskStore(dir, baseRef string) *DiskStore {
	return &DiskStore{dir: dir, baseRef: strings.TrimRight(baseRef, "/")}
}

var _ portsrepo.UploadStore = (*DiskStore)(nil)

// Save writes the payload under a timestamped, slug-sanitized name and
// returns the reference to store in an entity's image or file field.
func (s *DiskStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	base := filepath.Base(filename)
	ext := strings.ToLower(filepath.Ext(base))
	stem := utils.Slugify(strings.TrimSuffix(base, filepath.Ext(base)))
	if stem == "" {
		stem = "upload"
	}
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), stem, ext)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return path.Join(s.baseRef, name), nil
}
