// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lzsgo compresses and decompresses files in the lzs format.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ogier/pflag"
	"github.com/ulikunitz/ringbuf/xlog"
)

const usageStr = `Usage: lzsgo [OPTION]... [FILE]...
Compress or uncompress FILEs in the .lzs format (by default, compress
FILES in place).

  -c, --stdout      write to standard output and don't delete input files
  -d, --decompress  force decompression
  -f, --force       force overwrite of the output file
  -h, --help        give this help
  -k, --keep        keep (don't delete) input files
  -q, --quiet       suppress all warnings
  -v, --verbose     verbose mode
  -V, --version     display version string
  -w, --winexp EXP  window size as a power of two; default is 16

With no file, or when FILE is -, read standard input and write standard
output.

Report bugs using <https://github.com/ulikunitz/ringbuf/issues>.
`

const version = "0.1.0"

type options struct {
	stdout     bool
	decompress bool
	force      bool
	keep       bool
	winExp     int
}

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

func main() {
	cmdName := filepath.Base(os.Args[0])
	xlog.SetPrefix(fmt.Sprintf("%s: ", cmdName))

	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.SetInterspersed(true)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		help        = pflag.BoolP("help", "h", false, "")
		stdout      = pflag.BoolP("stdout", "c", false, "")
		decompress  = pflag.BoolP("decompress", "d", false, "")
		force       = pflag.BoolP("force", "f", false, "")
		keep        = pflag.BoolP("keep", "k", false, "")
		quiet       = pflag.BoolP("quiet", "q", false, "")
		verbose     = pflag.BoolP("verbose", "v", false, "")
		showVersion = pflag.BoolP("version", "V", false, "")
		winExp      = pflag.IntP("winexp", "w", 16, "")
	)
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	if *showVersion {
		fmt.Printf("%s %s\n", cmdName, version)
		os.Exit(0)
	}
	if *quiet {
		xlog.SetVerbosity(xlog.Quiet)
	}
	if *verbose {
		xlog.SetVerbosity(xlog.Verbose)
	}
	if !(10 <= *winExp && *winExp <= 26) {
		xlog.Fatalf("winexp %d out of range [10, 26]", *winExp)
	}

	opts := &options{
		stdout:     *stdout,
		decompress: *decompress,
		force:      *force,
		keep:       *keep,
		winExp:     *winExp,
	}
	paths := pflag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, path := range paths {
		processFile(path, opts)
	}
}
