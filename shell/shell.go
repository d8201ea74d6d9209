// Copyright 2024 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shell implements an interactive command-line front end to the
// evaluator: a command tree of subcommands (send/translate/encode/
// decode/solve), a settings table, and an optional raw-mode terminal
// session, in the same shape the teacher wraps its CPU emulator in.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/cmd"

	"github.com/beevik/icfplang/client"
)

// A Shell is one interactive or scripted session: an input/output pair,
// the settings table, and the lazily-constructed HTTP client the send
// subcommand uses.
type Shell struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	lastCmd     *cmd.Selection
	settings    *Settings
	client      *client.Client
}

// New returns a Shell with default settings. Call RunCommands to start
// processing input.
func New() *Shell {
	return &Shell{
		settings: NewSettings(),
	}
}

// Configure sets the send subcommand's server URL and auth token ahead
// of any RunCommands call, equivalent to running "set serverurl <url>"
// and "set authtoken <token>" before the first send.
func (s *Shell) Configure(token, url string) error {
	if err := s.settings.Set("authtoken", token); err != nil {
		return err
	}
	if url != "" {
		if err := s.settings.Set("serverurl", url); err != nil {
			return err
		}
	}
	return nil
}

// RunCommands reads lines from r, dispatches each through the command
// tree, and writes output to w. If interactive, a prompt is displayed
// before each line. In either mode an empty line repeats the last
// command.
func (s *Shell) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	s.input = bufio.NewScanner(r)
	s.output = bufio.NewWriter(w)
	s.interactive = interactive

	for {
		s.prompt()

		line, err := s.getLine()
		if err != nil {
			break
		}
		// A handler's returned error, like host.Host's, ends the
		// session (cmdQuit's sole purpose); handlers that merely fail
		// print their own message and return nil.
		if err := s.process(line); err != nil {
			break
		}
	}
}

func (s *Shell) process(line string) error {
	var sel cmd.Selection
	if line != "" {
		var err error
		sel, err = commands.Lookup(line)
		switch {
		case err == cmd.ErrNotFound:
			s.println("Command not found.")
			return nil
		case err == cmd.ErrAmbiguous:
			s.println("Command is ambiguous.")
			return nil
		case err != nil:
			s.printf("error: %v\n", err)
			return nil
		}
	} else if s.lastCmd != nil {
		sel = *s.lastCmd
	}

	if sel.Command == nil {
		return nil
	}
	if sel.Command.Data == nil && sel.Command.Subtree != nil {
		s.displayCommands(sel.Command.Subtree)
		return nil
	}

	s.lastCmd = &sel
	handler := sel.Command.Data.(func(*Shell, cmd.Selection) error)
	return handler(s, sel)
}

// Break is called from a signal handler when the user presses Ctrl-C.
// Reduction runs to completion or to its step budget within a single
// command and isn't itself interruptible, so Break only reminds the
// user how to exit cleanly.
func (s *Shell) Break() {
	s.println()
	s.println("Type 'quit' to exit.")
	s.prompt()
}

func (s *Shell) displayCommands(t *cmd.Tree) {
	s.printf("%s commands:\n", t.Title)
	for _, c := range t.Commands {
		if c.Brief != "" {
			s.printf("    %-15s %s\n", c.Name, c.Brief)
		}
	}
}

func (s *Shell) ensureClient() error {
	if s.client != nil {
		return nil
	}
	c, err := client.New(s.settings.AuthToken, s.settings.ServerURL)
	if err != nil {
		return err
	}
	s.client = c
	return nil
}

// send submits message to the contest server and returns the raw reply
// body, a wire expression the caller still has to parse.
func (s *Shell) send(ctx context.Context, message string) (string, error) {
	if err := s.ensureClient(); err != nil {
		return "", err
	}
	if s.settings.ShowWire {
		s.printf("> %s\n", message)
	}
	reply, err := s.client.Send(ctx, message)
	if err != nil {
		return "", err
	}
	return reply, nil
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.output, format, args...)
	s.flush()
}

func (s *Shell) println(args ...any) {
	fmt.Fprintln(s.output, args...)
	s.flush()
}

func (s *Shell) flush() {
	s.output.Flush()
}

func (s *Shell) getLine() (string, error) {
	if s.input.Scan() {
		return strings.TrimSpace(s.input.Text()), nil
	}
	if s.input.Err() != nil {
		return "", s.input.Err()
	}
	return "", io.EOF
}

func (s *Shell) prompt() {
	if !s.interactive {
		return
	}
	s.printf("icfp> ")
}
