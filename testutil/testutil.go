package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/mmcorpus/model"
)

// RNG encapsulates a seeded random number generator. It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// RandomCorpus generates a corpus of numDocs documents over a vocabulary of
// numTerms terms. Each document gets between 0 and maxDocLen distinct term
// ids in ascending order with uniform weights in [0, 1). The returned
// header carries the exact non-zero total.
func RandomCorpus(rng *RNG, numDocs, numTerms, maxDocLen int) (model.Header, []model.Document) {
	docs := make([]model.Document, numDocs)
	var nnz int

	for i := range docs {
		docLen := rng.Intn(maxDocLen + 1)
		if docLen > numTerms {
			docLen = numTerms
		}

		seen := make(map[int32]struct{}, docLen)
		termIDs := make([]int32, 0, docLen)
		for len(termIDs) < docLen {
			id := int32(rng.Intn(numTerms))
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			termIDs = append(termIDs, id)
		}
		sort.Slice(termIDs, func(a, b int) bool { return termIDs[a] < termIDs[b] })

		entries := make([]model.Entry, docLen)
		for j, id := range termIDs {
			entries[j] = model.Entry{TermID: id, Weight: rng.Float32()}
		}

		docs[i] = model.Document{ID: int32(i), Entries: entries}
		nnz += docLen
	}

	header := model.Header{
		NumDocs:  int32(numDocs),
		NumTerms: int32(numTerms),
		NumNNZ:   int32(nnz),
	}
	return header, docs
}
