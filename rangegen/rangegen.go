// Package rangegen produces pseudo-random ContinuousRange values across all
// shapes, with configurable weighting. It exists to drive the property tests
// of the ranges package and is not used by production code.
package rangegen

import (
	"cmp"
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/vbfox/range-ranger/ranges"
	"github.com/vbfox/range-ranger/util"
)

// Config sets up a generator. Values is required; weights of zero fall back
// to the defaults (empty 1, non-empty 10, full 1, shaped 9), which keep the
// degenerate shapes rare without excluding them.
type Config[Idx cmp.Ordered] struct {
	// Seed for the deterministic PCG source.
	Seed uint64
	// Values draws a random element.
	Values func(*rand.Rand) Idx

	// EmptyWeight vs NonEmptyWeight decide how often Any returns the empty
	// range; FullWeight vs ShapedWeight decide how often NonEmpty returns
	// the full range instead of a value-carrying shape.
	EmptyWeight    int
	NonEmptyWeight int
	FullWeight     int
	ShapedWeight   int
}

// Gen draws random ranges. Not safe for concurrent use.
type Gen[Idx cmp.Ordered] struct {
	rng    *rand.Rand
	values func(*rand.Rand) Idx
	cfg    Config[Idx]
	shapes []func() ranges.ContinuousRange[Idx]
}

// New validates cfg and returns a generator.
func New[Idx cmp.Ordered](cfg Config[Idx]) (*Gen[Idx], error) {
	if cfg.Values == nil {
		return nil, errors.New("rangegen: Config.Values is required")
	}
	for _, w := range []int{cfg.EmptyWeight, cfg.NonEmptyWeight, cfg.FullWeight, cfg.ShapedWeight} {
		if w < 0 {
			return nil, errors.Errorf("rangegen: negative weight %d", w)
		}
	}
	if cfg.EmptyWeight == 0 {
		cfg.EmptyWeight = 1
	}
	if cfg.NonEmptyWeight == 0 {
		cfg.NonEmptyWeight = 10
	}
	if cfg.FullWeight == 0 {
		cfg.FullWeight = 1
	}
	if cfg.ShapedWeight == 0 {
		cfg.ShapedWeight = 9
	}
	g := &Gen[Idx]{
		rng:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed+1)),
		values: cfg.Values,
		cfg:    cfg,
	}
	g.shapes = []func() ranges.ContinuousRange[Idx]{
		func() ranges.ContinuousRange[Idx] { return ranges.Single(g.value()) },
		func() ranges.ContinuousRange[Idx] { return ranges.From(g.value()) },
		func() ranges.ContinuousRange[Idx] { return ranges.FromExclusive(g.value()) },
		func() ranges.ContinuousRange[Idx] { return ranges.To(g.value()) },
		func() ranges.ContinuousRange[Idx] { return ranges.ToExclusive(g.value()) },
		func() ranges.ContinuousRange[Idx] { lo, hi := g.valuePair(); return ranges.Inclusive(lo, hi) },
		func() ranges.ContinuousRange[Idx] { lo, hi := g.valuePair(); return ranges.Exclusive(lo, hi) },
		func() ranges.ContinuousRange[Idx] { lo, hi := g.valuePair(); return ranges.StartExclusive(lo, hi) },
		func() ranges.ContinuousRange[Idx] { lo, hi := g.valuePair(); return ranges.EndExclusive(lo, hi) },
	}
	return g, nil
}

// Ints is a convenience generator over small ints, for tests that just need
// plenty of touching and overlapping ranges.
func Ints(seed uint64) *Gen[int] {
	g, err := New(Config[int]{
		Seed:   seed,
		Values: func(rng *rand.Rand) int { return rng.IntN(41) - 20 },
	})
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Gen[Idx]) value() Idx {
	return g.values(g.rng)
}

// valuePair draws two distinct elements in order, so two-endpoint shapes
// stay proper. Redraws are capped: with a value source unable to produce two
// distinct elements the exclusive shapes still collapse to empty through the
// constructors.
func (g *Gen[Idx]) valuePair() (lo, hi Idx) {
	lo, hi = g.value(), g.value()
	for attempts := 0; lo == hi && attempts < 8; attempts++ {
		hi = g.value()
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo, hi
}

// pickWeighted draws one of the weighted choices, gonetics-style cumulative
// scan over the weights.
func pickWeighted[A any](rng *rand.Rand, choices []util.Pair[int, A]) A {
	total := 0
	for _, choice := range choices {
		total += choice.Fst
	}
	n := rng.IntN(total)
	for _, choice := range choices {
		if n < choice.Fst {
			return choice.Snd
		}
		n -= choice.Fst
	}
	panic("rangegen: weights changed during draw")
}

// WithValue draws one of the nine value-carrying shapes, uniformly.
func (g *Gen[Idx]) WithValue() ranges.ContinuousRange[Idx] {
	return g.shapes[g.rng.IntN(len(g.shapes))]()
}

// NonEmpty draws the full range or a value-carrying shape, weighted by
// FullWeight vs ShapedWeight.
func (g *Gen[Idx]) NonEmpty() ranges.ContinuousRange[Idx] {
	pick := pickWeighted(g.rng, []util.Pair[int, func() ranges.ContinuousRange[Idx]]{
		util.NewPair(g.cfg.FullWeight, ranges.Full[Idx]),
		util.NewPair(g.cfg.ShapedWeight, g.WithValue),
	})
	return pick()
}

// Any draws any range at all, weighted by EmptyWeight vs NonEmptyWeight.
func (g *Gen[Idx]) Any() ranges.ContinuousRange[Idx] {
	pick := pickWeighted(g.rng, []util.Pair[int, func() ranges.ContinuousRange[Idx]]{
		util.NewPair(g.cfg.EmptyWeight, ranges.Empty[Idx]),
		util.NewPair(g.cfg.NonEmptyWeight, g.NonEmpty),
	})
	return pick()
}

// Slice draws n ranges with Any.
func (g *Gen[Idx]) Slice(n int) []ranges.ContinuousRange[Idx] {
	out := make([]ranges.ContinuousRange[Idx], n)
	for i := range out {
		out[i] = g.Any()
	}
	return out
}
