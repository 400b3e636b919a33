// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command bitset evaluates bitwise expressions over bit patterns, which
// is handy when debugging Bloom filter contents:
//
//	bitset show 0010110
//	bitset not 001
//	bitset or 10101 1110
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/bitarray/cmd/bitset/cmd"
	"github.com/grailbio/bitarray/log"
)

func main() {
	log.AddFlags()
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-log=level] <command> PATTERN...\n", os.Args[0])
		flag.PrintDefaults()
		cmd.PrintHelp()
	}
	flag.Parse()
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if err := cmd.Run(context.Background(), flag.Args()); err != nil {
		log.Fatal(err)
	}
}
