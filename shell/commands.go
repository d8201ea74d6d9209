// Copyright 2024 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/beevik/cmd"

	"github.com/beevik/icfplang"
)

var commands *cmd.Tree

func init() {
	root := cmd.NewTree("icfplang")
	root.AddCommand(cmd.Command{
		Name:        "help",
		Brief:       "Display help for a command",
		Description: "Display a list of commands, or help for one command.",
		Usage:       "help [<command>]",
		Data:        (*Shell).cmdHelp,
	})
	root.AddCommand(cmd.Command{
		Name:  "send",
		Brief: "Send a wire expression to the contest server",
		Description: "POST the given wire expression to the configured" +
			" server, parse and reduce the reply, and print its value.",
		Usage: "send <expression>",
		Data:  (*Shell).cmdSend,
	})
	root.AddCommand(cmd.Command{
		Name:  "eval",
		Brief: "Evaluate a wire expression locally",
		Description: "Lex, parse, alpha-convert, and reduce a wire" +
			" expression without contacting the server.",
		Usage: "eval <expression>",
		Data:  (*Shell).cmdEval,
	})

	tr := cmd.NewTree("Translate")
	root.AddCommand(cmd.Command{
		Name:    "translate",
		Brief:   "Translate between human text and wire strings",
		Subtree: tr,
	})
	tr.AddCommand(cmd.Command{
		Name:  "encode",
		Brief: "Encode a human string into a wire string literal",
		Usage: "translate encode <text>",
		Data:  (*Shell).cmdTranslateEncode,
	})
	tr.AddCommand(cmd.Command{
		Name:  "decode",
		Brief: "Decode a wire string body into human text",
		Usage: "translate decode <body>",
		Data:  (*Shell).cmdTranslateDecode,
	})

	enc := cmd.NewTree("Encode")
	root.AddCommand(cmd.Command{
		Name:    "encode",
		Brief:   "Encode a value to its wire body",
		Subtree: enc,
	})
	enc.AddCommand(cmd.Command{
		Name:  "int",
		Brief: "Encode a decimal integer to its base-94 wire body",
		Usage: "encode int <n>",
		Data:  (*Shell).cmdEncodeInt,
	})
	enc.AddCommand(cmd.Command{
		Name:  "string",
		Brief: "Encode human text to its wire body",
		Usage: "encode string <text>",
		Data:  (*Shell).cmdEncodeString,
	})

	dec := cmd.NewTree("Decode")
	root.AddCommand(cmd.Command{
		Name:    "decode",
		Brief:   "Decode a wire body to a value",
		Subtree: dec,
	})
	dec.AddCommand(cmd.Command{
		Name:  "int",
		Brief: "Decode a base-94 wire body to a decimal integer",
		Usage: "decode int <body>",
		Data:  (*Shell).cmdDecodeInt,
	})
	dec.AddCommand(cmd.Command{
		Name:  "string",
		Brief: "Decode a wire body to human text",
		Usage: "decode string <body>",
		Data:  (*Shell).cmdDecodeString,
	})

	root.AddCommand(cmd.Command{
		Name:  "solve",
		Brief: "Run a contest problem-family solver",
		Description: "Placeholder for a problem-family solver" +
			" (lambdaman, spaceship, efficiency). Writing an actual" +
			" solver is out of scope for this evaluator; this command" +
			" only documents the known families and reports that none" +
			" is implemented.",
		Usage: "solve <lambdaman|spaceship|efficiency> ...",
		Data:  (*Shell).cmdSolve,
	})

	root.AddCommand(cmd.Command{
		Name:        "set",
		Brief:       "Display or change a setting",
		Description: "With no arguments, display all settings. With a key and value, change one.",
		Usage:       "set [<key> <value>]",
		Data:        (*Shell).cmdSet,
	})
	root.AddCommand(cmd.Command{
		Name:        "quit",
		Brief:       "Exit the shell",
		Description: "Exit the interactive shell.",
		Usage:       "quit",
		Data:        (*Shell).cmdQuit,
	})

	commands = root
}

// ErrNotImplemented is the error cmdSolve prints for a known problem
// family: no contest solver is implemented in this module.
var ErrNotImplemented = errors.New("shell: solver not implemented")

var solverFamilies = map[string]string{
	"lambdaman":  "navigate a grid to visit every open cell",
	"spaceship":  "visit a sequence of waypoints under inertial movement",
	"efficiency": "evaluate a closed-form recurrence without exhausting the step budget",
}

func (s *Shell) cmdHelp(c cmd.Selection) error {
	switch {
	case len(c.Args) == 0:
		s.displayCommands(commands)
	default:
		sel, err := commands.Lookup(strings.Join(c.Args, " "))
		if err != nil {
			s.printf("%v\n", err)
			return nil
		}
		if sel.Command.Subtree != nil {
			s.displayCommands(sel.Command.Subtree)
			return nil
		}
		if sel.Command.Usage != "" {
			s.printf("Usage: %s\n", sel.Command.Usage)
		}
		if sel.Command.Description != "" {
			s.printf("%s\n", sel.Command.Description)
		} else if sel.Command.Brief != "" {
			s.printf("%s.\n", sel.Command.Brief)
		}
	}
	return nil
}

func (s *Shell) cmdEval(c cmd.Selection) error {
	if len(c.Args) == 0 {
		s.displayUsage(c.Command)
		return nil
	}
	v, err := icfplang.Parse(strings.Join(c.Args, " "))
	if err != nil {
		s.printf("%v\n", err)
		return nil
	}
	s.println(v.String())
	return nil
}

func (s *Shell) cmdSend(c cmd.Selection) error {
	if len(c.Args) == 0 {
		s.displayUsage(c.Command)
		return nil
	}
	reply, err := s.send(context.Background(), strings.Join(c.Args, " "))
	if err != nil {
		s.printf("%v\n", err)
		return nil
	}
	v, err := icfplang.Parse(reply)
	if err != nil {
		s.printf("%v\n", err)
		return nil
	}
	s.println(v.String())
	return nil
}

func (s *Shell) cmdTranslateEncode(c cmd.Selection) error {
	if len(c.Args) == 0 {
		s.displayUsage(c.Command)
		return nil
	}
	body, err := icfplang.EncodeString(strings.Join(c.Args, " "))
	if err != nil {
		s.printf("%v\n", err)
		return nil
	}
	s.println("S" + body)
	return nil
}

func (s *Shell) cmdTranslateDecode(c cmd.Selection) error {
	if len(c.Args) != 1 {
		s.displayUsage(c.Command)
		return nil
	}
	text, err := icfplang.DecodeString(strings.TrimPrefix(c.Args[0], "S"))
	if err != nil {
		s.printf("%v\n", err)
		return nil
	}
	s.println(text)
	return nil
}

func (s *Shell) cmdEncodeInt(c cmd.Selection) error {
	if len(c.Args) != 1 {
		s.displayUsage(c.Command)
		return nil
	}
	n, ok := new(big.Int).SetString(c.Args[0], 10)
	if !ok {
		s.println("not a decimal integer")
		return nil
	}
	s.println("I" + icfplang.EncodeInt(n))
	return nil
}

func (s *Shell) cmdEncodeString(c cmd.Selection) error {
	if len(c.Args) == 0 {
		s.displayUsage(c.Command)
		return nil
	}
	body, err := icfplang.EncodeString(strings.Join(c.Args, " "))
	if err != nil {
		s.printf("%v\n", err)
		return nil
	}
	s.println("S" + body)
	return nil
}

func (s *Shell) cmdDecodeInt(c cmd.Selection) error {
	if len(c.Args) != 1 {
		s.displayUsage(c.Command)
		return nil
	}
	n, err := icfplang.DecodeInt(strings.TrimPrefix(c.Args[0], "I"))
	if err != nil {
		s.printf("%v\n", err)
		return nil
	}
	s.println(n.String())
	return nil
}

func (s *Shell) cmdDecodeString(c cmd.Selection) error {
	if len(c.Args) != 1 {
		s.displayUsage(c.Command)
		return nil
	}
	text, err := icfplang.DecodeString(strings.TrimPrefix(c.Args[0], "S"))
	if err != nil {
		s.printf("%v\n", err)
		return nil
	}
	s.println(text)
	return nil
}

func (s *Shell) cmdSolve(c cmd.Selection) error {
	if len(c.Args) == 0 {
		s.println("Known problem families:")
		for name, desc := range solverFamilies {
			s.printf("    %-12s %s\n", name, desc)
		}
		return nil
	}
	if _, ok := solverFamilies[c.Args[0]]; !ok {
		s.printf("unknown problem family %q\n", c.Args[0])
		return nil
	}
	s.printf("%v\n", ErrNotImplemented)
	return nil
}

func (s *Shell) cmdSet(c cmd.Selection) error {
	switch len(c.Args) {
	case 0:
		s.println("Settings:")
		s.settings.Display(s.output)
	case 1:
		s.displayUsage(c.Command)
	default:
		key, value := strings.ToLower(c.Args[0]), strings.Join(c.Args[1:], " ")

		var err error
		switch s.settings.Kind(key) {
		case reflect.Invalid:
			err = fmt.Errorf("setting %q not found", key)
		case reflect.String:
			err = s.settings.Set(key, value)
		case reflect.Bool:
			var b bool
			b, err = strconv.ParseBool(value)
			if err == nil {
				err = s.settings.Set(key, b)
			}
		default:
			var n int
			n, err = strconv.Atoi(value)
			if err == nil {
				err = s.settings.Set(key, n)
			}
		}

		if err != nil {
			s.printf("%v\n", err)
		} else {
			s.println("Setting updated.")
		}
	}
	return nil
}

func (s *Shell) cmdQuit(c cmd.Selection) error {
	return errors.New("exiting shell")
}

func (s *Shell) displayUsage(c *cmd.Command) {
	if c.Usage != "" {
		s.printf("Usage: %s\n", c.Usage)
	}
}
