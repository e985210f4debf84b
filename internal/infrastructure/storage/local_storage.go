// Package storage implementa los puertos de almacenamiento de archivos.
// El adaptador de disco local sirve para desarrollo y despliegues de un solo
// nodo; un bucket cloud entra por el mismo puerto sin tocar los casos de uso.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docscompta/docscompta-api/internal/application/ports"
)

var _ ports.FileStorage = (*LocalStorage)(nil)

// LocalStorage guarda archivos bajo un directorio base y los expone con un
// prefijo de URL pública.
type LocalStorage struct {
	basePath  string
	publicURL string
}

// NewLocalStorage construye el adaptador; crea el directorio base si no existe.
func NewLocalStorage(basePath, publicURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio base: %w", err)
	}
	return &LocalStorage{
		basePath:  basePath,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload escribe los bytes bajo la clave y devuelve la URL pública.
// La clave no puede escapar del directorio base.
func (s *LocalStorage) Upload(_ context.Context, key string, data []byte) (string, error) {
	path, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("storage: crear directorio: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: escribir archivo: %w", err)
	}
	return s.publicURL + "/" + key, nil
}

// Delete elimina el objeto; borrar una clave inexistente no es error.
func (s *LocalStorage) Delete(_ context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: eliminar archivo: %w", err)
	}
	return nil
}

func (s *LocalStorage) resolve(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("storage: clave inválida %q", key)
	}
	return filepath.Join(s.basePath, clean), nil
}
