// Copyright 2024 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command icfplang is an interactive shell and batch-mode front end for
// the evaluator: send/eval/translate/encode/decode/solve subcommands
// over a single wire-expression-at-a-time session.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/beevik/icfplang/shell"
)

var (
	token string
	url   string
)

func init() {
	flag.StringVar(&token, "token", "", "bearer auth token for the send command")
	flag.StringVar(&url, "url", "", "contest server URL (defaults to the standard endpoint)")
	flag.CommandLine.Usage = func() {
		fmt.Println("Usage: icfplang [script] ..\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	s := shell.New()
	if token != "" {
		if err := s.Configure(token, url); err != nil {
			exitOnError(err)
		}
	}

	// Run commands contained in command-line files.
	args := flag.Args()
	if len(args) > 0 {
		for _, filename := range args {
			file, err := os.Open(filename)
			if err != nil {
				exitOnError(err)
			}
			s.RunCommands(file, os.Stdout, false)
			file.Close()
		}
	}

	// Break on Ctrl-C.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go handleInterrupt(s, c)

	// Raw input mode isn't reliable on Windows; run in cooked mode there.
	var rs *shell.RawSession
	if runtime.GOOS != "windows" {
		rs, _ = shell.EnableRawMode()
	}

	s.RunCommands(os.Stdin, os.Stdout, true)

	rs.Restore()
}

func handleInterrupt(s *shell.Shell, c chan os.Signal) {
	for {
		<-c
		s.Break()
	}
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
