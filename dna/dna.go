// Package dna implements complementation, GC content and transcription of
// DNA sequences.
package dna

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"quickbio_go/utils"
)

// complementBase maps an uppercase DNA base to its pair.
func complementBase(base byte) byte {
	switch base {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	}
	return base
}

// invalid names the first offending character of seq.
func invalid(seq string) error {
	pos := 0
	for _, base := range seq {
		if !common.ValidateDNA(string(base)) {
			return fmt.Errorf("%w: DNA sequence has %q at position %d", common.ErrInvalidSequence, base, pos+1)
		}
		pos++
	}
	return fmt.Errorf("%w: not a DNA sequence", common.ErrInvalidSequence)
}

// Complement returns the base-by-base complement of seq (A<->T, G<->C)
// in uppercase. Sequences with characters outside ATGC are rejected.
func Complement(seq string) (string, error) {
	if !common.ValidateDNA(seq) {
		return "", invalid(seq)
	}
	seq = strings.ToUpper(seq)

	var out strings.Builder
	out.Grow(len(seq))
	for i := 0; i < len(seq); i++ {
		out.WriteByte(complementBase(seq[i]))
	}
	return out.String(), nil
}

// ReverseComplement returns the complement of seq read in reverse order,
// i.e. the opposite strand read 5' to 3'.
func ReverseComplement(seq string) (string, error) {
	if !common.ValidateDNA(seq) {
		return "", invalid(seq)
	}
	seq = strings.ToUpper(seq)

	var rc strings.Builder
	rc.Grow(len(seq))
	for i := len(seq) - 1; i >= 0; i-- {
		rc.WriteByte(complementBase(seq[i]))
	}
	return rc.String(), nil
}

// GCContent returns the fraction of G and C characters in seq, 0 for an
// empty sequence. The alphabet is not checked: any other character only
// counts towards the length.
func GCContent(seq string) float64 {
	if seq == "" {
		return 0
	}
	seq = strings.ToUpper(seq)
	gc := strings.Count(seq, "G") + strings.Count(seq, "C")
	return float64(gc) / float64(utf8.RuneCountInString(seq))
}

// Transcribe converts DNA to RNA by replacing every T with U.
func Transcribe(seq string) (string, error) {
	if !common.ValidateDNA(seq) {
		return "", invalid(seq)
	}
	return strings.ReplaceAll(strings.ToUpper(seq), "T", "U"), nil
}
