// Copyright 2025 The WordGrid Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordgrid command line tool.

wordgrid finds every dictionary word that can be traced on a letter grid by
moving between 8-connected cells without reusing a cell, scores each word with
the board's letter and word multipliers, and prints them ranked.

# Usage

Solve a board file with the English tables and the default dictionary:

	wordgrid solve -l en -b board.txt

Rank by word length, longest last, without the board and summary:

	wordgrid solve -l en -b board.txt -s length -R -q

Try the bundled demo board, or generate a new one:

	wordgrid demo -l it
	wordgrid generate -l en -r 5 -c 5 -o big.txt

Prepare a dictionary. compile normalizes, upper-cases and writes the compact
msgpack format; cat prints the keys of any dictionary as they are stored:

	wordgrid compile -d words.txt -o data/en
	wordgrid cat -d data/en.bin

Serve msgpack requests on stdin/stdout, or read boards interactively:

	wordgrid serve -l en
	wordgrid interactive -l en

# Boards

A board file has one row per line. Each token is a letter optionally followed
by a multiplier: dl and tl multiply the letter, dw and tw the whole word.

	Ttl R   S   Ndl
	Odw Htw E   I
	Cdw I   N   V
	Etl A   D   E

# Configuration

Defaults come from ~/.config/wordgrid/config.toml, created on first run:

	[solver]
	language = "en"
	sort = "score"
	workers = 0

	[dict]
	path = ""
	normalize = true
	ignore_case = true

Print the file in use with "wordgrid config", or restore the defaults with
"wordgrid config --reset". Command line flags override the file. Without -d
the dictionary is looked up as <lang>.bin, <lang>.txt or <lang>.dic in the
data directory.
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordgrid"
	gh      = "https://github.com/bastiangx/wordgrid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
