package odds

import "context"

// RawDocument is one undecoded odds payload and the name it was stored under.
type RawDocument struct {
	Name string
	Body []byte
}

// Source lists the raw documents of one slate directory.
type Source interface {
	Load(ctx context.Context, dir string) ([]RawDocument, error)
}
