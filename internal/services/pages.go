package services

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	HelloPage    = "hello.html"
	NotFoundPage = "404.html"
)

// Pages holds the static pages served by the handlers.
// They are read once, so a missing file fails at startup rather than per request.
type Pages struct {
	hello    []byte
	notFound []byte
}

func NewPagesService(folder string) (*Pages, error) {
	hello, err := os.ReadFile(filepath.Join(folder, HelloPage))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", HelloPage, err)
	}
	notFound, err := os.ReadFile(filepath.Join(folder, NotFoundPage))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", NotFoundPage, err)
	}
	return &Pages{hello: hello, notFound: notFound}, nil
}

func (p *Pages) Hello() []byte {
	return p.hello
}

func (p *Pages) NotFound() []byte {
	return p.notFound
}
