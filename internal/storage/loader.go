package storage

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"contacts-book/internal/models"
)

// ErrMalformedBundle is returned when a contacts bundle cannot be decoded
var ErrMalformedBundle = errors.New("malformed contacts bundle")

//go:embed contacts.json
var bundledContacts []byte

// Source supplies the contacts a store starts with
type Source interface {
	Load(ctx context.Context) ([]models.Contact, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func(ctx context.Context) ([]models.Contact, error)

// Load calls f
func (f SourceFunc) Load(ctx context.Context) ([]models.Contact, error) {
	return f(ctx)
}

// EmbeddedBundle returns the contacts.json compiled into the binary
func EmbeddedBundle() Source {
	return SourceFunc(func(ctx context.Context) ([]models.Contact, error) {
		return DecodeBundle(bytes.NewReader(bundledContacts))
	})
}

// FileBundle returns a source reading a contacts.json file from disk
func FileBundle(path string) Source {
	return SourceFunc(func(ctx context.Context) ([]models.Contact, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open contacts file: %w", err)
		}
		defer f.Close()

		return DecodeBundle(f)
	})
}

// DecodeBundle decodes a {"contacts": [...]} document into fresh contacts
func DecodeBundle(r io.Reader) ([]models.Contact, error) {
	var bundle models.Bundle
	if err := json.NewDecoder(r).Decode(&bundle); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBundle, err)
	}
	if bundle.Contacts == nil {
		return nil, fmt.Errorf("%w: missing contacts array", ErrMalformedBundle)
	}

	contacts := make([]models.Contact, 0, len(bundle.Contacts))
	for _, entry := range bundle.Contacts {
		contacts = append(contacts, entry.Contact())
	}
	return contacts, nil
}
