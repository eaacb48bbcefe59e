package blob

import (
	"context"
	"io"
)

// Store guarda anexos binários (fotos, documentos) e devolve o caminho
// de referência. O domínio só persiste o caminho, nunca o conteúdo.
type Store interface {
	Save(ctx context.Context, pasta, nome string, conteudo io.Reader) (string, error)
}
