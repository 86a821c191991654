package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/appl/pkg/catalogs"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
// Save calls are counted in Saves.
type Mock struct {
	CatalogFunc      func() (catalogs.Store, error)
	CatalogPathFunc  func() string
	SaveFunc         func() error
	MediaRootFunc    func() string
	MaxResultsFunc   func() int
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string

	Saves int
}

// Catalog returns a catalog using the mock function or nil.
func (m *Mock) Catalog() (catalogs.Store, error) {
	if m.CatalogFunc != nil {
		return m.CatalogFunc()
	}
	return nil, nil
}

// CatalogPath returns the catalog path using the mock function or "".
func (m *Mock) CatalogPath() string {
	if m.CatalogPathFunc != nil {
		return m.CatalogPathFunc()
	}
	return ""
}

// Save records the call and runs the mock function if set.
func (m *Mock) Save() error {
	m.Saves++
	if m.SaveFunc != nil {
		return m.SaveFunc()
	}
	return nil
}

// MediaRoot returns the root override using the mock function or "".
func (m *Mock) MediaRoot() string {
	if m.MediaRootFunc != nil {
		return m.MediaRootFunc()
	}
	return ""
}

// MaxResults returns the result limit using the mock function or 0.
func (m *Mock) MaxResults() int {
	if m.MaxResultsFunc != nil {
		return m.MaxResultsFunc()
	}
	return 0
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)
