package core

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/huangsam/prioritize/schema"
)

// ciZeroTolerance treats a consistency index this close to zero as exactly
// zero. Perfectly consistent matrices can still produce a tiny nonzero CI
// from floating-point eigenvalue extraction, and the random index for order
// two is zero, so dividing through would turn that noise into infinity.
const ciZeroTolerance = 1e-9

// checkConsistency computes the consistency ratio of a filled comparison
// matrix and rejects it when the ratio exceeds the configured threshold.
//
// The index is (lambda_max - n) / (n - 1) where lambda_max is the largest
// eigenvalue magnitude of the full matrix. A zero index short-circuits
// before the random-index lookup, so perfectly consistent matrices pass at
// any order, including orders without a published random index.
func checkConsistency(t *schema.ComparisonTable, ri schema.RandomIndex, threshold float64) error {
	order := t.Order()

	data := make([]float64, 0, order*order)
	for _, row := range t.Ratios {
		data = append(data, row...)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(mat.NewDense(order, order, data), mat.EigenNone); !ok {
		return &schema.InconsistentMatrixError{Table: t.Name, Ratio: -1, Threshold: threshold}
	}

	var lambdaMax float64
	for _, v := range eig.Values(nil) {
		if m := cmplx.Abs(v); m > lambdaMax {
			lambdaMax = m
		}
	}

	ci := (lambdaMax - float64(order)) / float64(order-1)
	if ci < ciZeroTolerance {
		return nil
	}

	randomIndex, ok := ri.Lookup(order)
	if !ok {
		return &schema.MissingReferenceIndexError{Table: t.Name, Order: order}
	}

	ratio := ci / randomIndex
	if ratio > threshold {
		return &schema.InconsistentMatrixError{Table: t.Name, Ratio: ratio, Threshold: threshold}
	}
	return nil
}
