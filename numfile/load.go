package numfile

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ordbag"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	tenKb     = 10240
	hundredKb = 1024000
)

// Fragment is broadcast to subscribers whenever one file fragment has been
// parsed and inserted.
type Fragment struct {
	Pos    int64 // byte offset of the fragment within the file
	Values int   // number of values parsed from this fragment
}

// Loading represents an in-progress bulk load of an integer file.
//
// The bag under construction is owned exclusively by the loader goroutine;
// it is handed over, fully built, through Bag(). This keeps the bag's
// single-writer contract intact while loading happens in the background.
type Loading struct {
	cast *caster.Caster // broadcaster for async load progress
	done chan struct{}
	bag  *ordbag.Bag[int64]
	err  error // remember last I/O or parse error
}

// Load reads a file of whitespace-separated decimal integers and builds an
// ordered bag from it in the background. Clients may indicate a recommended
// fragment length; 0 lets Load pick a sensible default from the file size.
// Opening the file is always done synchronously.
func Load(name string, fragSize int64) (*Loading, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	size := fi.Size()
	if fragSize <= 0 || fragSize > tenKb {
		if size < 1024 {
			fragSize = 64
		} else if size < hundredKb {
			fragSize = twoKb
		} else {
			fragSize = tenKb
		}
	}
	ld := &Loading{
		cast: caster.New(nil), // we will broadcast messages when fragments are loaded
		done: make(chan struct{}),
	}
	ordbag.T().P("load", name).Debugf("loading %d bytes in fragments of %d", size, fragSize)
	go ld.loadAllFragments(file, size, fragSize)
	return ld, nil
}

// Fragments subscribes to load progress. The returned channel carries
// Fragment messages and is closed when loading finishes; the returned
// function cancels the subscription.
func (ld *Loading) Fragments() (<-chan interface{}, func()) {
	ch, _ := ld.cast.Sub(nil, 1)
	return ch, func() { ld.cast.Unsub(ch) }
}

// Bag blocks until loading has finished and returns the completed bag, or
// the first I/O or parse error encountered.
func (ld *Loading) Bag() (*ordbag.Bag[int64], error) {
	<-ld.done
	if ld.err != nil {
		return nil, ld.err
	}
	return ld.bag, nil
}

// loadAllFragments reads the file fragment by fragment, carrying partial
// tokens across fragment boundaries, and inserts every parsed value.
func (ld *Loading) loadAllFragments(file *os.File, size int64, fragSize int64) {
	defer close(ld.done)
	defer ld.cast.Close()
	defer file.Close()
	bag := ordbag.New[int64]()
	var carry []byte
	for pos := int64(0); pos < size; pos += fragSize {
		length := min(fragSize, size-pos)
		buf := make([]byte, length)
		if _, err := file.ReadAt(buf, pos); err != nil {
			ld.err = fmt.Errorf("error loading fragment: %w", err)
			return
		}
		chunk := append(carry, buf...)
		carry = nil
		if pos+length < size {
			// hold back a trailing partial token for the next fragment
			cut := lastBoundary(chunk)
			if cut < 0 {
				carry = chunk
				continue
			}
			carry = append([]byte(nil), chunk[cut:]...)
			chunk = chunk[:cut]
		}
		parsed, err := insertFields(bag, chunk)
		if err != nil {
			ld.err = err
			return
		}
		ld.cast.Pub(Fragment{Pos: pos, Values: parsed})
	}
	ld.bag = bag
}

// lastBoundary returns the index just after the last whitespace in data, or
// -1 if data contains none.
func lastBoundary(data []byte) int {
	for i := len(data) - 1; i >= 0; i-- {
		switch data[i] {
		case ' ', '\t', '\n', '\r':
			return i + 1
		}
	}
	return -1
}

// insertFields parses whitespace-separated decimal integers and inserts
// them into the bag. It stops at the first malformed token.
func insertFields(bag *ordbag.Bag[int64], data []byte) (int, error) {
	parsed := 0
	for _, field := range bytes.Fields(data) {
		v, err := strconv.ParseInt(string(field), 10, 64)
		if err != nil {
			return parsed, fmt.Errorf("invalid value %q: %w", field, err)
		}
		bag.Insert(v)
		parsed++
	}
	return parsed, nil
}
