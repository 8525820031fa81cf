// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/ringbuf/lzs"
	"github.com/ulikunitz/ringbuf/xlog"
)

const lzsSuffix = ".lzs"

type packer interface {
	outputPaths(path string) (outputPath, tmpPath string, err error)
	pack(w io.Writer, r io.Reader, opts *options) (n int64, err error)
}

type lzsPacker struct{}

func (p lzsPacker) outputPaths(path string) (out, tmp string, err error) {
	if path == "-" {
		return "-", "-", nil
	}
	if path == "" {
		err = errors.New("path is empty")
		return
	}
	if strings.HasSuffix(path, lzsSuffix) {
		err = fmt.Errorf("path %s has suffix %s -- ignored",
			path, lzsSuffix)
		return
	}
	out = path + lzsSuffix
	tmp = out + ".pack"
	return
}

func (p lzsPacker) pack(w io.Writer, r io.Reader, opts *options) (n int64, err error) {
	lw, err := lzs.NewWriterConfig(w, lzs.WriterConfig{
		WindowSize: 1 << opts.winExp,
	})
	if err != nil {
		return 0, err
	}
	n, err = io.Copy(lw, r)
	if err != nil {
		return n, err
	}
	return n, lw.Close()
}

type lzsUnpacker struct{}

func (u lzsUnpacker) outputPaths(path string) (out, tmp string, err error) {
	if path == "-" {
		return "-", "-", nil
	}
	if !strings.HasSuffix(path, lzsSuffix) {
		err = fmt.Errorf("path %s has no suffix %s",
			path, lzsSuffix)
		return
	}
	base := filepath.Base(path)
	if base == lzsSuffix {
		err = fmt.Errorf("path %s has only suffix %s as filename",
			path, lzsSuffix)
		return
	}
	out = path[:len(path)-len(lzsSuffix)]
	tmp = out + ".unpack"
	return
}

func (u lzsUnpacker) pack(w io.Writer, r io.Reader, opts *options) (n int64, err error) {
	lr, err := lzs.NewReader(r)
	if err != nil {
		return 0, err
	}
	return io.Copy(w, lr)
}

// signalHandler removes the temporary file if the process is
// interrupted while packing. Closing the returned channel disarms the
// handler.
func signalHandler(tmpPath string) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
			return
		case <-sigch:
			if tmpPath != "-" {
				os.Remove(tmpPath)
			}
			os.Exit(7)
		}
	}()
	return quit
}

func packFile(pck packer, path, tmpPath string, opts *options) error {
	var err error

	var r *os.File
	if path == "-" {
		r = os.Stdin
	} else {
		fi, err := os.Lstat(path)
		if err != nil {
			return err
		}
		if !fi.Mode().IsRegular() {
			return fmt.Errorf("%s is not a regular file", path)
		}
		r, err = os.Open(path)
		if err != nil {
			return err
		}
		fi, err = r.Stat()
		if err != nil {
			r.Close()
			return err
		}
		if !fi.Mode().IsRegular() {
			r.Close()
			return fmt.Errorf("%s is not a regular file", path)
		}
	}
	defer func() {
		if err != nil {
			r.Close()
		} else {
			err = r.Close()
		}
	}()

	var w *os.File
	if tmpPath == "-" {
		w = os.Stdout
	} else {
		if opts.force {
			os.Remove(tmpPath)
		}
		w, err = os.OpenFile(tmpPath,
			os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			return err
		}
		defer func() {
			if err != nil {
				w.Close()
			} else {
				err = w.Close()
			}
		}()
	}

	n, err := pck.pack(w, r, opts)
	if err != nil {
		return err
	}
	xlog.Infof("%s: %d bytes processed", path, n)
	return nil
}

// userPathError represents a path error presentable to a user. In
// difference to os.PathError it removes the name of the failing system
// call.
type userPathError struct {
	Path string
	Err  error
}

func (e *userPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// userError strips the operation information from path errors. That
// lstat or openat failed is irrelevant for users of the program.
func userError(err error) error {
	var pe *os.PathError
	if !errors.As(err, &pe) {
		return err
	}
	return &userPathError{Path: pe.Path, Err: pe.Err}
}

func processFile(path string, opts *options) {
	var pck packer
	if opts.decompress {
		pck = lzsUnpacker{}
	} else {
		pck = lzsPacker{}
	}
	outputPath, tmpPath, err := pck.outputPaths(path)
	if err != nil {
		xlog.Warn(userError(err))
		return
	}
	if opts.stdout {
		outputPath, tmpPath = "-", "-"
	}
	if outputPath != "-" {
		_, err = os.Lstat(outputPath)
		if err == nil && !opts.force {
			xlog.Warnf("file %s exists", outputPath)
			return
		}
	}
	defer func() {
		if tmpPath != "-" {
			os.Remove(tmpPath)
		}
	}()
	quit := signalHandler(tmpPath)
	defer close(quit)

	if err = packFile(pck, path, tmpPath, opts); err != nil {
		xlog.Warn(userError(err))
		return
	}
	if tmpPath != "-" && outputPath != "-" {
		if err = os.Rename(tmpPath, outputPath); err != nil {
			xlog.Warn(userError(err))
			return
		}
	}
	if !opts.keep && !opts.stdout && path != "-" {
		if err = os.Remove(path); err != nil {
			xlog.Warn(userError(err))
		}
	}
}
