// Package visualization produces descriptive summaries of sequences:
// text and SVG sequence logos, sliding-window GC content series and plots.
package visualization

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrLengthMismatch = errors.New("all sequences must have the same length")
	ErrNoSequences    = errors.New("no sequences")
)

// logoSymbols is the tally order. It also breaks frequency ties.
var logoSymbols = []rune{'A', 'T', 'G', 'C', 'U', '-'}

// column holds the counts of one alignment position, indexed like logoSymbols.
type column [6]int

// tallyColumns counts symbols per position over equal-length sequences.
func tallyColumns(seqs []string) ([]column, error) {
	if len(seqs) == 0 {
		return nil, nil
	}
	width := utf8.RuneCountInString(seqs[0])
	for i, seq := range seqs {
		if n := utf8.RuneCountInString(seq); n != width {
			return nil, fmt.Errorf("%w: sequence %d has length %d, expected %d", ErrLengthMismatch, i+1, n, width)
		}
	}

	cols := make([]column, width)
	for _, seq := range seqs {
		pos := 0
		for _, r := range seq {
			cols[pos][symbolIndex(unicode.ToUpper(r))]++
			pos++
		}
	}
	return cols, nil
}

func symbolIndex(r rune) int {
	for i, s := range logoSymbols {
		if s == r {
			return i
		}
	}
	return len(logoSymbols) - 1 // '-' collects everything else
}

// ranked returns the indices of symbols with a non-zero count, most frequent
// first. Equal counts keep the logoSymbols order.
func (c column) ranked() []int {
	var idx []int
	for i, n := range c {
		if n > 0 {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return c[idx[a]] > c[idx[b]]
	})
	return idx
}

// SequenceLogo renders an ASCII logo of aligned sequences, one line per
// position:
//
//	Pos   1: A:0.67 T:0.33
//
// Frequencies are counts divided by the number of sequences. An empty
// input yields an empty logo.
func SequenceLogo(seqs []string) (string, error) {
	cols, err := tallyColumns(seqs)
	if err != nil {
		return "", err
	}

	total := float64(len(seqs))
	lines := make([]string, 0, len(cols))
	for pos, col := range cols {
		var line strings.Builder
		fmt.Fprintf(&line, "Pos %3d: ", pos+1)
		for _, i := range col.ranked() {
			fmt.Fprintf(&line, "%c:%.2f ", logoSymbols[i], float64(col[i])/total)
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n"), nil
}

// WriteSequenceLogo renders the logo and also writes it to path.
func WriteSequenceLogo(seqs []string, path string) (string, error) {
	logo, err := SequenceLogo(seqs)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(logo), 0644); err != nil {
		return "", err
	}
	return logo, nil
}
