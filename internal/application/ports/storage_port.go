package ports

import "context"

// FileStorage abstrae el almacenamiento de objetos (disco local, bucket cloud).
// Upload guarda los bytes bajo la clave indicada y devuelve la URL pública
// con la que se puede resolver el archivo.
type FileStorage interface {
	Upload(ctx context.Context, key string, data []byte) (url string, err error)
	Delete(ctx context.Context, key string) error
}

// ThumbnailGenerator genera una miniatura para el archivo indicado.
// Devuelve nil (sin error) cuando no sabe producir miniatura para ese MIME;
// cualquier fallo es best-effort y nunca bloquea la subida.
type ThumbnailGenerator interface {
	Generate(ctx context.Context, data []byte, mimeType string) ([]byte, error)
}
