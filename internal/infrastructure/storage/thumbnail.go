package storage

import (
	"context"

	"github.com/docscompta/docscompta-api/internal/application/ports"
)

var _ ports.ThumbnailGenerator = (*NoopThumbnailGenerator)(nil)

// NoopThumbnailGenerator implementación neutra del puerto de miniaturas: no
// sabe producir miniatura para ningún MIME y devuelve nil. El rasterizador
// real es un colaborador externo reemplazable detrás del mismo puerto.
type NoopThumbnailGenerator struct{}

// NewNoopThumbnailGenerator construye el generador neutro.
func NewNoopThumbnailGenerator() *NoopThumbnailGenerator { return &NoopThumbnailGenerator{} }

// Generate devuelve nil, nil para cualquier entrada.
func (g *NoopThumbnailGenerator) Generate(context.Context, []byte, string) ([]byte, error) {
	return nil, nil
}
