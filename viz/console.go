package viz

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

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/ordbag/btree"
	"golang.org/x/term"
)

// Config controls console rendering of tree structure.
type Config struct {
	// LineWidth is the target line length; longer node lines are truncated.
	LineWidth int
	// Colorize switches ANSI coloring on. Off, output is plain text.
	Colorize bool
}

// Palette maps node roles to display colors. It may be partially filled;
// missing entries render uncolored.
type Palette struct {
	Keys   *color.Color
	Values *color.Color
	Counts *color.Color
}

func makeDefaultPalette() *Palette {
	return &Palette{
		Keys:   color.New(color.FgCyan),
		Values: color.New(color.FgBlue),
		Counts: color.New(color.Faint),
	}
}

// Print outputs the node structure of a tree to stdout, one node per line,
// indented by depth. Rendering config is derived from the terminal.
//
// Output grows linearly with the tree; this is a debugging aid for small
// trees, not a serialization format.
func Print[T any](tree *btree.Tree[T]) error {
	return Fprint(os.Stdout, tree, nil, nil)
}

// Fprint outputs the node structure of a tree to w.
//
// If parameter config is nil, a heuristic will create one from the current
// terminal's properties (if stdout is interactive). A nil palette uses
// package defaults.
func Fprint[T any](w io.Writer, tree *btree.Tree[T], config *Config, palette *Palette) error {
	if tree == nil {
		return nil
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	if palette == nil {
		palette = makeDefaultPalette()
	}
	var err error
	if tree.IsEmpty() {
		_, err = fmt.Fprintln(w, "·")
		return err
	}
	tree.Walk(func(info btree.NodeInfo[T]) bool {
		_, err = fmt.Fprintln(w, nodeLine(info, config, palette))
		return err == nil
	})
	return err
}

// nodeLine renders one node: indentation, a variant marker, the node's
// values or separator keys, and the subtree value count for internal nodes.
func nodeLine[T any](info btree.NodeInfo[T], config *Config, palette *Palette) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", info.Depth))
	values := make([]string, len(info.Values))
	for i, v := range info.Values {
		values[i] = fmt.Sprintf("%v", v)
	}
	body := strings.Join(values, " ")
	if info.Leaf {
		sb.WriteString("▪ ")
		sb.WriteString(colorize(config, palette.Values, "["+body+"]"))
	} else {
		sb.WriteString("▫ ")
		sb.WriteString(colorize(config, palette.Keys, "("+body+")"))
		sb.WriteString(" ")
		sb.WriteString(colorize(config, palette.Counts, fmt.Sprintf("#%d", info.Count)))
	}
	line := sb.String()
	if !config.Colorize && config.LineWidth > 0 && len(line) > config.LineWidth {
		line = line[:config.LineWidth] + "…"
	}
	return line
}

func colorize(config *Config, c *color.Color, s string) string {
	if !config.Colorize || c == nil {
		return s
	}
	return c.Sprint(s)
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and enables coloring.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		config.Colorize = true
		w, _, err := term.GetSize(0)
		if err != nil || w <= 10 {
			config.LineWidth = 65
		} else {
			config.LineWidth = w - 5
		}
	} else {
		config.LineWidth = 65
	}
	return config
}
