package seq_generator

import (
	"fmt"
	"math/rand"
)

// SequenceRequest describes one generated record.
type SequenceRequest struct {
	ID     string
	Length int
	GCBias float64
}

// GenerateSet returns one DNA sequence per request, keyed by ID, along with
// the IDs in request order.
func GenerateSet(r *rand.Rand, reqs []SequenceRequest) ([]string, map[string]string, error) {
	ids := make([]string, 0, len(reqs))
	seqs := make(map[string]string, len(reqs))
	for _, req := range reqs {
		if req.Length < 0 {
			return nil, nil, fmt.Errorf("invalid length for %s: %d", req.ID, req.Length)
		}
		if req.GCBias < 0.0 || req.GCBias > 1.0 {
			return nil, nil, fmt.Errorf("invalid gc_bias for %s: %v", req.ID, req.GCBias)
		}
		if _, dup := seqs[req.ID]; dup {
			return nil, nil, fmt.Errorf("duplicate sequence name: %s", req.ID)
		}
		ids = append(ids, req.ID)
		seqs[req.ID] = GenerateDNA(r, req.Length, req.GCBias, false)
	}
	return ids, seqs, nil
}
