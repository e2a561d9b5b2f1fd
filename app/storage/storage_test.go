package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vistoriaguardioes/financeiro/app/models"
)

func TestUpload(t *testing.T) {
	u := New(t.TempDir(), "/documentos/")

	url, err := u.Upload(strings.NewReader("conteudo"), "nota fiscal.PDF", models.DocumentoNFe, "ev-1")
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if !strings.HasPrefix(url, "/documentos/ev-1/nfe_ev-1_") {
		t.Errorf("url = %q, want /documentos/ev-1/nfe_ev-1_<ts> prefix", url)
	}
	if !strings.HasSuffix(url, ".pdf") {
		t.Errorf("url = %q, extension should be lowercased", url)
	}

	relativo := strings.TrimPrefix(url, "/documentos/")
	dados, err := os.ReadFile(filepath.Join(u.Dir, filepath.FromSlash(relativo)))
	if err != nil {
		t.Fatalf("uploaded file missing on disk: %v", err)
	}
	if string(dados) != "conteudo" {
		t.Errorf("file contents = %q, want %q", dados, "conteudo")
	}
}

func TestUploadSemArquivo(t *testing.T) {
	u := New(t.TempDir(), "/documentos")
	url, err := u.Upload(nil, "", models.DocumentoNFe, "ev-1")
	if err != nil || url != "" {
		t.Fatalf("nil reader should be a no-op, got url=%q err=%v", url, err)
	}
}

func TestUploadExtensaoInvalida(t *testing.T) {
	u := New(t.TempDir(), "/documentos")
	for _, nome := range []string{"script.exe", "planilha.xlsx", "semextensao"} {
		if _, err := u.Upload(strings.NewReader("x"), nome, models.DocumentoBoleto, "ev-1"); !errors.Is(err, ErrExtensaoInvalida) {
			t.Errorf("Upload(%q) err = %v, want ErrExtensaoInvalida", nome, err)
		}
	}
}

func TestUploadTipoDesconhecido(t *testing.T) {
	u := New(t.TempDir(), "/documentos")
	if _, err := u.Upload(strings.NewReader("x"), "a.pdf", models.TipoDocumento("contrato"), "ev-1"); err == nil {
		t.Fatal("unknown document kind should be rejected")
	}
}

func TestRemove(t *testing.T) {
	u := New(t.TempDir(), "/documentos")

	url, err := u.Upload(strings.NewReader("x"), "boleto.pdf", models.DocumentoBoleto, "ev-2")
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if err := u.Remove(url); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}

	relativo := strings.TrimPrefix(url, "/documentos/")
	if _, err := os.Stat(filepath.Join(u.Dir, filepath.FromSlash(relativo))); !os.IsNotExist(err) {
		t.Error("file still present after Remove")
	}
}

func TestRemoveForaDoBucket(t *testing.T) {
	u := New(t.TempDir(), "/documentos")
	cases := []string{
		"/outro/ev-1/arquivo.pdf",
		"/documentos/../segredo.pdf",
		"",
	}
	for _, url := range cases {
		err := u.Remove(url)
		if url == "" {
			if err != nil {
				t.Errorf("Remove(%q) = %v, want nil", url, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("Remove(%q) should be refused", url)
		}
	}
}
