// Package opener launches the external program associated with an entry's
// file extension.
package opener

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/agentstation/appl/pkg/errors"
)

// ErrNoAssociation is returned when no opener is configured for an extension.
var ErrNoAssociation = errors.New("no opener associated")

// Resolver looks up opener commands. *catalogs.Catalog implements it.
type Resolver interface {
	Root() string
	Opener(path string) (string, bool)
}

// Opener starts association commands.
type Opener struct {
	resolver Resolver
	stdio    bool
}

// Option configures an Opener.
type Option func(*Opener)

// WithStdio attaches the command to the current terminal.
func WithStdio() Option {
	return func(o *Opener) {
		o.stdio = true
	}
}

// New creates an opener that resolves commands through r.
func New(r Resolver, opts ...Option) *Opener {
	o := &Opener{resolver: r}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Target returns the file an entry path refers to on disk.
func (o *Opener) Target(path string) string {
	return filepath.Join(o.resolver.Root(), filepath.FromSlash(path))
}

// Command returns the command that opens the entry at path. The opener
// string may carry arguments; the target file is appended last.
func (o *Opener) Command(ctx context.Context, path string) (*exec.Cmd, error) {
	command, ok := o.resolver.Opener(path)
	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrNoAssociation, path)
	}
	args := strings.Fields(command)
	if len(args) == 0 {
		return nil, fmt.Errorf("%w for %s: opener is empty", ErrNoAssociation, path)
	}

	cmd := exec.CommandContext(ctx, args[0], append(args[1:], o.Target(path))...)
	if o.stdio {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	return cmd, nil
}

// Open starts the opener and returns without waiting for it to exit.
func (o *Opener) Open(path string) error {
	cmd, err := o.Command(context.Background(), path)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return errors.WrapIO("exec", cmd.Path, err)
	}
	return cmd.Process.Release()
}

// Run starts the opener and waits for it to exit.
func (o *Opener) Run(ctx context.Context, path string) error {
	cmd, err := o.Command(ctx, path)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return errors.WrapIO("exec", cmd.Path, err)
	}
	return nil
}
