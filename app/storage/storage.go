package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/vistoriaguardioes/financeiro/app/models"
)

// ErrExtensaoInvalida is returned for files outside the allow-list.
var ErrExtensaoInvalida = errors.New("file extension not allowed (pdf, jpg, jpeg, png)")

// The allow-list lives here so every call site enforces the same rule.
var extensoesPermitidas = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Uploader writes attachments into a disk-backed bucket whose contents are
// served publicly under BaseURL.
type Uploader struct {
	Dir     string
	BaseURL string
}

func New(dir, baseURL string) *Uploader {
	return &Uploader{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

// Upload stores the file under a path namespaced by record id, document kind
// and a timestamp to avoid collisions, and returns its public URL.
// A nil reader returns an empty URL without error.
func (u *Uploader) Upload(r io.Reader, nomeOriginal string, tipo models.TipoDocumento, eventoID string) (string, error) {
	if r == nil {
		return "", nil
	}
	if !tipo.Valido() {
		return "", fmt.Errorf("unknown document kind %q", tipo)
	}

	ext := strings.ToLower(filepath.Ext(nomeOriginal))
	if !extensoesPermitidas[ext] {
		return "", ErrExtensaoInvalida
	}

	nome := fmt.Sprintf("%s_%s_%d%s", tipo, eventoID, time.Now().UnixMilli(), ext)
	relativo := path.Join(eventoID, nome)

	destino := filepath.Join(u.Dir, eventoID, nome)
	if err := os.MkdirAll(filepath.Dir(destino), 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	f, err := os.Create(destino)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(destino)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return u.BaseURL + "/" + relativo, nil
}

// Remove deletes a previously uploaded file given its public URL. Used as
// compensating cleanup when a record patch fails after uploads succeeded.
func (u *Uploader) Remove(publicURL string) error {
	if publicURL == "" {
		return nil
	}
	relativo := strings.TrimPrefix(publicURL, u.BaseURL+"/")
	if relativo == publicURL {
		return fmt.Errorf("url %q is outside the bucket", publicURL)
	}

	destino := filepath.Join(u.Dir, filepath.FromSlash(path.Clean(relativo)))
	if !strings.HasPrefix(destino, filepath.Clean(u.Dir)+string(os.PathSeparator)) {
		return fmt.Errorf("url %q resolves outside the bucket", publicURL)
	}
	return os.Remove(destino)
}
