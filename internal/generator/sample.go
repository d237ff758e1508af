package generator

import (
	"math/rand"

	seederrors "booking-demo-seeder/internal/errors"
)

// sampleIDs draws n ids from pool without replacement using the given
// source. Asking for more than the pool holds is a precondition violation
// and fails loudly; it never wraps around or truncates.
func sampleIDs(r *rand.Rand, entity string, pool []int64, n int) ([]int64, error) {
	if n > len(pool) {
		return nil, seederrors.NewPoolTooSmallError(entity, n, len(pool))
	}
	picked := r.Perm(len(pool))[:n]
	out := make([]int64, n)
	for i, j := range picked {
		out[i] = pool[j]
	}
	return out, nil
}
