package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store grava anexos no filesystem local, abaixo de um diretório base.
// O caminho devolvido é relativo ao base (é o que o domínio persiste).
type Store struct {
	base string
}

func New(base string) *Store {
	return &Store{base: base}
}

func (s *Store) Save(ctx context.Context, pasta, nome string, conteudo io.Reader) (string, error) {
	nome = sanitizar(nome)
	if nome == "" {
		nome = "arquivo"
	}

	dir := filepath.Join(s.base, pasta)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	// Prefixo uuid evita colisão entre uploads com o mesmo nome.
	rel := filepath.Join(pasta, fmt.Sprintf("%s-%s", uuid.NewString(), nome))

	f, err := os.Create(filepath.Join(s.base, rel))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, conteudo); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

func sanitizar(nome string) string {
	nome = filepath.Base(strings.TrimSpace(nome))
	if nome == "." || nome == string(filepath.Separator) {
		return ""
	}
	return nome
}
