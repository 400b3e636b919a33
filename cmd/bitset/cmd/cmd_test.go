// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/grailbio/bitarray/errors"
	"github.com/stretchr/testify/assert"
)

func doRun(t *testing.T, args ...string) (string, error) {
	out := bytes.Buffer{}
	err := run(context.Background(), &out, args)
	return strings.TrimSpace(out.String()), err
}

func TestCommands(t *testing.T) {
	for _, c := range []struct {
		args []string
		want string
	}{
		{[]string{"show", "0010110"}, "0010110 size=7 count=3 set=[1 2 4]"},
		{[]string{"show", ""}, "size=0 count=0 set=[]"},
		{[]string{"not", "001"}, "110 size=3 count=2 set=[1 2]"},
		{[]string{"or", "10101", "1110"}, "11111 size=5 count=5 set=[0 1 2 3 4]"},
		{[]string{"and", "10101", "1110"}, "00100 size=5 count=1 set=[2]"},
		{[]string{"and", "111", "110", "011"}, "010 size=3 count=1 set=[1]"},
		{[]string{"or", "1", "0000000000"}, "0000000001 size=10 count=1 set=[0]"},
	} {
		got, err := doRun(t, c.args...)
		assert.NoError(t, err, "args %v", c.args)
		assert.Equal(t, c.want, got, "args %v", c.args)
	}
}

func TestCommandErrors(t *testing.T) {
	for _, c := range []struct {
		args []string
		want string
	}{
		{nil, "no subcommand"},
		{[]string{"xor", "1", "0"}, "unknown command xor"},
		{[]string{"show"}, "need exactly one pattern"},
		{[]string{"not", "1", "0"}, "need exactly one pattern"},
		{[]string{"or", "1"}, "need at least two patterns"},
		{[]string{"show", "10z"}, "bad character"},
		{[]string{"and", "101", "1a1"}, "argument 2"},
	} {
		got, err := doRun(t, c.args...)
		assert.Error(t, err, "args %v", c.args)
		assert.True(t, errors.Is(errors.Invalid, err), "%v: %v", c.args, err)
		assert.Contains(t, err.Error(), c.want)
		assert.Equal(t, "", got)
	}
}
