package seq_generator

import (
	"math/rand"
	"strings"
)

// GenerateDNA returns a random DNA or RNA sequence of the given length.
// gcBias is the expected fraction of G and C bases.
func GenerateDNA(r *rand.Rand, length int, gcBias float64, rna bool) string {
	cWeight := gcBias / 2
	aWeight := (1 - gcBias) / 2
	tWeight := aWeight // AT bias

	seq := make([]byte, length)
	for i := 0; i < length; i++ {
		x := r.Float64()
		switch {
		case x < aWeight:
			seq[i] = 'A'
		case x < aWeight+tWeight:
			seq[i] = 'T'
		case x < aWeight+tWeight+cWeight:
			seq[i] = 'C'
		default:
			seq[i] = 'G'
		}
	}

	s := string(seq)
	if rna {
		s = strings.ReplaceAll(s, "T", "U")
	}
	return s
}

// GenerateMixedCase is GenerateDNA with each base randomly lowercased.
func GenerateMixedCase(r *rand.Rand, length int, gcBias float64, rna bool) string {
	seq := []byte(GenerateDNA(r, length, gcBias, rna))
	for i := range seq {
		if r.Intn(2) == 0 {
			seq[i] += 'a' - 'A'
		}
	}
	return string(seq)
}
