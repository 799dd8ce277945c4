// Package clipboard copies rendered output to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Copier copies text to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using the platform clipboard utilities.
type Service struct{}

// NewService creates a clipboard service.
func NewService() *Service {
	return &Service{}
}

// Copy replaces the clipboard contents with text.
func (s *Service) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

var _ Copier = (*Service)(nil)
