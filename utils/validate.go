package common

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrInvalidSequence     = errors.New("invalid sequence")
	ErrUnknownSequenceKind = errors.New("unknown sequence type")
)

// Kind names an alphabet a sequence can be validated against.
type Kind int

const (
	KindDNA Kind = iota
	KindRNA
	KindProtein
)

// Alphabets are stored uppercase; input is uppercased rune by rune before lookup.
const (
	dnaAlphabet     = "ATGC"
	rnaAlphabet     = "AUGC"
	proteinAlphabet = "ACDEFGHIKLMNPQRSTVWY*"
)

func (k Kind) String() string {
	switch k {
	case KindDNA:
		return "dna"
	case KindRNA:
		return "rna"
	case KindProtein:
		return "protein"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) alphabet() string {
	switch k {
	case KindDNA:
		return dnaAlphabet
	case KindRNA:
		return rnaAlphabet
	default:
		return proteinAlphabet
	}
}

// ParseKind maps "dna", "rna" or "protein" (any case) to a Kind.
func ParseKind(kind string) (Kind, error) {
	switch strings.ToLower(kind) {
	case "dna":
		return KindDNA, nil
	case "rna":
		return KindRNA, nil
	case "protein":
		return KindProtein, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSequenceKind, kind)
}

// inAlphabet reports whether every rune of seq, uppercased, is in alphabet.
// The empty sequence is vacuously valid.
func inAlphabet(seq, alphabet string) bool {
	for _, base := range seq {
		if !strings.ContainsRune(alphabet, unicode.ToUpper(base)) {
			return false
		}
	}
	return true
}

// ValidateDNA reports whether seq only holds A, T, G and C (case-insensitive).
func ValidateDNA(seq string) bool {
	return inAlphabet(seq, dnaAlphabet)
}

// ValidateRNA reports whether seq only holds A, U, G and C (case-insensitive).
func ValidateRNA(seq string) bool {
	return inAlphabet(seq, rnaAlphabet)
}

// ValidateProtein reports whether seq only holds the 20 standard amino acids or '*'.
func ValidateProtein(seq string) bool {
	return inAlphabet(seq, proteinAlphabet)
}

// ValidateSequence checks seq against the alphabet named by kind.
// An invalid sequence is not an error: it returns false. Only an
// unrecognised kind returns ErrUnknownSequenceKind.
func ValidateSequence(seq string, kind string) (bool, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return false, err
	}
	return inAlphabet(seq, k.alphabet()), nil
}
