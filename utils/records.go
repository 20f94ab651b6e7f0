package common

// Records is an ordered identifier -> sequence mapping, as read from or
// written to a FASTA file. Iteration follows the order in which each
// identifier was first set.
type Records struct {
	ids  []string
	seqs map[string]string
}

func NewRecords() *Records {
	return &Records{seqs: make(map[string]string)}
}

// Set stores seq under id. Setting an existing id replaces its sequence
// and keeps the id at its original position.
func (r *Records) Set(id, seq string) {
	if r.seqs == nil {
		r.seqs = make(map[string]string)
	}
	if _, ok := r.seqs[id]; !ok {
		r.ids = append(r.ids, id)
	}
	r.seqs[id] = seq
}

func (r *Records) Get(id string) (string, bool) {
	seq, ok := r.seqs[id]
	return seq, ok
}

// IDs returns a copy of the identifiers in insertion order.
func (r *Records) IDs() []string {
	ids := make([]string, len(r.ids))
	copy(ids, r.ids)
	return ids
}

func (r *Records) Len() int {
	return len(r.ids)
}
