// Package rna implements complementation, back-conversion to DNA and
// translation of RNA sequences.
package rna

import (
	"fmt"
	"strings"

	"quickbio_go/utils"
)

func complementBase(base byte) byte {
	switch base {
	case 'A':
		return 'U'
	case 'U':
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
		if !common.ValidateRNA(string(base)) {
			return fmt.Errorf("%w: RNA sequence has %q at position %d", common.ErrInvalidSequence, base, pos+1)
		}
		pos++
	}
	return fmt.Errorf("%w: not an RNA sequence", common.ErrInvalidSequence)
}

// Complement returns the base-by-base complement of seq (A<->U, G<->C) in uppercase.
func Complement(seq string) (string, error) {
	if !common.ValidateRNA(seq) {
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

// ToDNA converts RNA back to DNA by replacing every U with T.
func ToDNA(seq string) (string, error) {
	if !common.ValidateRNA(seq) {
		return "", invalid(seq)
	}
	return strings.ReplaceAll(strings.ToUpper(seq), "U", "T"), nil
}

// Translate converts an RNA sequence into its one-letter protein sequence,
// reading codons from position 0. Trailing bases that do not fill a codon
// are dropped. Stop codons are written as '*' and translation carries on
// through to the last full codon.
func Translate(seq string) (string, error) {
	if !common.ValidateRNA(seq) {
		return "", invalid(seq)
	}
	seq = strings.ToUpper(seq)
	seq = seq[:len(seq)-len(seq)%3]

	protein := make([]byte, 0, len(seq)/3)
	for i := 0; i+3 <= len(seq); i += 3 {
		protein = append(protein, Codon(seq[i:i+3]))
	}
	return string(protein), nil
}
