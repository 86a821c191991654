package errors_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/appl/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "entry",
			ID:       "books/a.epub",
		}
		assert.Equal(t, "entry with ID books/a.epub not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("entry", "7")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestDuplicateKeyError(t *testing.T) {
	err := pkgerrors.NewDuplicateKeyError("entry", "/a/1.epub")
	assert.Equal(t, "entry with key /a/1.epub already exists", err.Error())
	assert.True(t, pkgerrors.IsAlreadyExists(err))
	assert.False(t, pkgerrors.IsNotFound(err))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "path",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field path: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "too many words"}
		assert.Equal(t, "validation failed: too many words", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *pkgerrors.ParseError
		want string
	}{
		{
			name: "file and line",
			err:  &pkgerrors.ParseError{Format: "appl", File: "lib.appl", Line: 12, Message: "vol is not a number"},
			want: "parse error in appl at lib.appl:12: vol is not a number",
		},
		{
			name: "line only",
			err:  &pkgerrors.ParseError{Format: "appl", Line: 3, Message: "bad header"},
			want: "appl parse error at line 3: bad header",
		},
		{
			name: "file only",
			err:  &pkgerrors.ParseError{Format: "yaml", File: "x.yaml", Message: "boom"},
			want: "parse error in yaml file x.yaml: boom",
		},
		{
			name: "bare",
			err:  &pkgerrors.ParseError{Format: "appl", Message: "empty"},
			want: "appl parse error: empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.True(t, pkgerrors.IsFormatError(tt.err))
		})
	}
}

func TestIOError(t *testing.T) {
	err := pkgerrors.WrapIO("read", "/tmp/lib.appl", fs.ErrNotExist)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsIOError(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "IO error during read of /tmp/lib.appl")

	assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
}

func TestWrapHelpers(t *testing.T) {
	base := errors.New("base")

	assert.Nil(t, pkgerrors.WrapParse("appl", "f", nil))
	assert.Nil(t, pkgerrors.WrapValidation("f", nil))
	assert.Nil(t, pkgerrors.WrapConfig("viper", "m", nil))

	parseErr := pkgerrors.WrapParse("appl", "f", base)
	assert.True(t, errors.Is(parseErr, base))
	assert.True(t, pkgerrors.IsFormatError(parseErr))

	assert.True(t, pkgerrors.IsValidationError(pkgerrors.WrapValidation("tags", base)))

	var cfgErr *pkgerrors.ConfigError
	require.True(t, errors.As(pkgerrors.WrapConfig("viper", "read failed", base), &cfgErr))
	assert.Equal(t, "configuration error in viper: read failed", cfgErr.Error())
}
