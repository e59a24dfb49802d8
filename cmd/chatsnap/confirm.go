package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/chatsnap"
)

// Ensure stdinConfirmer implements chatsnap.Confirmer at compile time.
var _ chatsnap.Confirmer = (*stdinConfirmer)(nil)

// stdinConfirmer blocks until the operator presses Enter. There is no
// timeout: solving a verification challenge takes as long as it takes.
// Cancellation happens only through process termination.
type stdinConfirmer struct {
	in  io.Reader
	out io.Writer
}

func (c *stdinConfirmer) Confirm(ctx context.Context, prompt string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%s ", prompt)

	_, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
