// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package cmd implements the subcommands of the bitset tool.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/bitarray/bitset"
	"github.com/grailbio/bitarray/errors"
	"github.com/grailbio/bitarray/log"
)

var commands = []struct {
	name     string
	callback func(ctx context.Context, out io.Writer, args []string) error
	help     string
}{
	{"show", Show, `Show prints the pattern with its size, population count and set indices.`},
	{"not", Not, `Not prints the complement of a pattern.`},
	{"and", And, `And prints the intersection of two or more patterns. The result is as long as the longest pattern.`},
	{"or", Or, `Or prints the union of two or more patterns. The result is as long as the longest pattern.`},
}

// PrintHelp lists the subcommands on stderr.
func PrintHelp() {
	fmt.Fprintln(os.Stderr, `Subcommands (a PATTERN is a string of 0s and 1s, bit 0 last):`)
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "%s: %s\n", c.name, c.help)
	}
}

// Run dispatches args[0] to its subcommand, which writes to stdout.
func Run(ctx context.Context, args []string) error {
	return run(ctx, os.Stdout, args)
}

func run(ctx context.Context, out io.Writer, args []string) error {
	if len(args) == 0 {
		PrintHelp()
		return errors.E(errors.Invalid, "no subcommand given")
	}
	for _, c := range commands {
		if c.name == args[0] {
			return c.callback(ctx, out, args[1:])
		}
	}
	PrintHelp()
	return errors.E(errors.Invalid, "unknown command", args[0])
}

// Show prints a single pattern.
func Show(ctx context.Context, out io.Writer, args []string) error {
	b, err := parseOne("show", args)
	if err != nil {
		return err
	}
	return printSet(out, b)
}

// Not prints the complement of a single pattern.
func Not(ctx context.Context, out io.Writer, args []string) error {
	b, err := parseOne("not", args)
	if err != nil {
		return err
	}
	return printSet(out, b.Not())
}

// And prints the intersection of its patterns.
func And(ctx context.Context, out io.Writer, args []string) error {
	return fold(out, "and", args, (*bitset.BitSet).And)
}

// Or prints the union of its patterns.
func Or(ctx context.Context, out io.Writer, args []string) error {
	return fold(out, "or", args, (*bitset.BitSet).Or)
}

func fold(out io.Writer, name string, args []string, op func(a, b *bitset.BitSet) *bitset.BitSet) error {
	if len(args) < 2 {
		return errors.E(errors.Invalid, fmt.Sprintf("%s: need at least two patterns, got %d", name, len(args)))
	}
	sets, err := parseAll(name, args)
	if err != nil {
		return err
	}
	r := sets[0]
	for _, b := range sets[1:] {
		r = op(r, b)
	}
	return printSet(out, r)
}

func parseOne(name string, args []string) (*bitset.BitSet, error) {
	if len(args) != 1 {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("%s: need exactly one pattern, got %d", name, len(args)))
	}
	b, err := bitset.Parse(args[0])
	if err != nil {
		return nil, errors.E(name, err)
	}
	return b, nil
}

// parseAll parses the patterns in argument order.
func parseAll(name string, args []string) ([]*bitset.BitSet, error) {
	sets := make([]*bitset.BitSet, len(args))
	for i, arg := range args {
		b, err := bitset.Parse(arg)
		if err != nil {
			return nil, errors.E(name, fmt.Sprintf("argument %d", i+1), err)
		}
		sets[i] = b
	}
	log.Debug.Printf("%s: parsed %d patterns", name, len(sets))
	return sets, nil
}

func printSet(out io.Writer, b *bitset.BitSet) error {
	_, err := fmt.Fprintf(out, "%s size=%d count=%d set=%v\n", b, b.Size(), b.Count(), b.SetBits())
	return err
}
