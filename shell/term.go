// Copyright 2024 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"os"

	"github.com/beevik/term"
)

// A RawSession remembers a terminal's state before it was put into raw
// input mode, so it can be restored on exit or interrupt.
type RawSession struct {
	fd    int
	state *term.State
}

// EnableRawMode puts stdin into raw input mode, the same way the
// teacher's top-level command enables it before an interactive
// session, and returns a handle to restore it. It returns a nil
// session, with no error, when stdin isn't a terminal (e.g. when input
// is piped), matching that session's no-op Restore.
func EnableRawMode() (*RawSession, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, nil
	}
	state, err := term.MakeRawInput(fd)
	if err != nil {
		return nil, err
	}
	return &RawSession{fd: fd, state: state}, nil
}

// Restore puts the terminal back into the mode it was in before
// EnableRawMode. It is safe to call on a nil session.
func (rs *RawSession) Restore() error {
	if rs == nil {
		return nil
	}
	return term.Restore(rs.fd, rs.state)
}
