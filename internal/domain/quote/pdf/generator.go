package pdf

import "nf-demos/go_backend/internal/domain/quote"

type Generator interface {
	Generate(q quote.Quote) ([]byte, error)
}
