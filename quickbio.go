// Package quickbio is a lightweight toolkit for DNA/RNA sequence analysis.
//
// The functions here mirror the toolkit's public surface; the dna, rna,
// utils (package common) and visualization packages hold the
// implementations and their error values.
package quickbio

import (
	version_control "quickbio_go/config"
	"quickbio_go/dna"
	"quickbio_go/rna"
	"quickbio_go/utils"
)

// Version of the toolkit.
const Version = version_control.Main_version

// Records is the ordered identifier -> sequence mapping used for FASTA I/O.
type Records = common.Records

// ComplementDNA complements a DNA sequence (A<->T, G<->C).
func ComplementDNA(seq string) (string, error) { return dna.Complement(seq) }

// ReverseComplement reverse-complements a DNA sequence.
func ReverseComplement(seq string) (string, error) { return dna.ReverseComplement(seq) }

// GCContent returns the G+C fraction of a DNA sequence.
func GCContent(seq string) float64 { return dna.GCContent(seq) }

// Transcribe converts DNA to RNA.
func Transcribe(seq string) (string, error) { return dna.Transcribe(seq) }

// ComplementRNA complements an RNA sequence (A<->U, G<->C).
func ComplementRNA(seq string) (string, error) { return rna.Complement(seq) }

// ToDNA converts RNA to DNA.
func ToDNA(seq string) (string, error) { return rna.ToDNA(seq) }

// Translate converts RNA to a protein sequence.
func Translate(seq string) (string, error) { return rna.Translate(seq) }

// ReadFasta reads sequences from a FASTA file.
func ReadFasta(path string) (*Records, error) { return common.ReadFasta(path) }

// WriteFasta writes sequences to a FASTA file.
func WriteFasta(records *Records, path string) error { return common.WriteFasta(records, path) }

// ValidateSequence checks seq against the "dna", "rna" or "protein" alphabet.
func ValidateSequence(seq, kind string) (bool, error) { return common.ValidateSequence(seq, kind) }
