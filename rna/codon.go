package rna

import "strings"

// unknownAminoAcid is emitted for a triplet missing from codonMap.
const unknownAminoAcid = 'X'

// codonMap is the standard genetic code over RNA codons. It is never mutated.
var codonMap = map[string]byte{
	// Phenylalanine
	"UUU": 'F', "UUC": 'F',
	// Leucine
	"UUA": 'L', "UUG": 'L', "CUU": 'L', "CUC": 'L', "CUA": 'L', "CUG": 'L',
	// Isoleucine
	"AUU": 'I', "AUC": 'I', "AUA": 'I',
	// Methionine (Start)
	"AUG": 'M',
	// Valine
	"GUU": 'V', "GUC": 'V', "GUA": 'V', "GUG": 'V',
	// Serine
	"UCU": 'S', "UCC": 'S', "UCA": 'S', "UCG": 'S', "AGU": 'S', "AGC": 'S',
	// Proline
	"CCU": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	// Threonine
	"ACU": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	// Alanine
	"GCU": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	// Tyrosine
	"UAU": 'Y', "UAC": 'Y',
	// Histidine
	"CAU": 'H', "CAC": 'H',
	// Glutamine
	"CAA": 'Q', "CAG": 'Q',
	// Asparagine
	"AAU": 'N', "AAC": 'N',
	// Lysine
	"AAA": 'K', "AAG": 'K',
	// Aspartic Acid
	"GAU": 'D', "GAC": 'D',
	// Glutamic Acid
	"GAA": 'E', "GAG": 'E',
	// Cysteine
	"UGU": 'C', "UGC": 'C',
	// Tryptophan
	"UGG": 'W',
	// Arginine
	"CGU": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R', "AGA": 'R', "AGG": 'R',
	// Glycine
	"GGU": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
	// Stop codons
	"UAA": '*', "UAG": '*', "UGA": '*',
}

// Codon returns the one-letter amino acid for an RNA codon, '*' for a stop
// codon and 'X' for anything that is not one of the 64 codons.
func Codon(codon string) byte {
	if aa, ok := codonMap[strings.ToUpper(codon)]; ok {
		return aa
	}
	return unknownAminoAcid
}
