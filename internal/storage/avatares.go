// Package storage guarda os arquivos enviados pelo cadastro (hoje só o
// avatar do usuário) no disco local e devolve a URL pública servida pelo
// próprio servidor em /avatars/.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const PublicPrefix = "/avatars"

type Avatares struct {
	dir string
}

func NovoAvatares(dir string) (*Avatares, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("não foi possível criar a pasta de avatares: %w", err)
	}
	return &Avatares{dir: dir}, nil
}

func (a *Avatares) Dir() string { return a.dir }

// Salvar grava o arquivo enviado com um nome novo e devolve a URL pública.
func (a *Avatares) Salvar(fh *multipart.FileHeader) (string, error) {
	origem, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer origem.Close()

	nome := uuid.NewString() + filepath.Ext(fh.Filename)
	destino, err := os.Create(filepath.Join(a.dir, nome))
	if err != nil {
		return "", err
	}
	defer destino.Close()

	if _, err := io.Copy(destino, origem); err != nil {
		return "", err
	}

	return PublicPrefix + "/" + nome, nil
}
