package seq_generator

import (
	"math/rand"
)

// 20 standard amino acids
var aminoAcids = []byte("ACDEFGHIKLMNPQRSTVWY")

// GenerateProtein returns a random peptide starting with M and ending with a stop.
func GenerateProtein(r *rand.Rand, length int) string {
	if length < 2 {
		return "M*" // minimal valid peptide
	}
	seq := make([]byte, length)
	seq[0] = 'M' // start codon (methionine)
	for i := 1; i < length-1; i++ {
		seq[i] = aminoAcids[r.Intn(len(aminoAcids))]
	}
	seq[length-1] = '*' // stop codon
	return string(seq)
}
