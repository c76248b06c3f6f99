package gateway

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"
)

const DefaultReferencePrefix = "NUMERO"

const maxRandomSuffix = 8

// ReferenceGenerator builds merchant references of the form
// PREFIX-<unix millis>-<base36 suffix>. References identify the purchase
// for the provider and are unique per generated value.
type ReferenceGenerator struct {
	prefix string
	now    func() time.Time
	random func() uint64
}

type ReferenceOption func(*ReferenceGenerator)

func WithClock(now func() time.Time) ReferenceOption {
	return func(g *ReferenceGenerator) { g.now = now }
}

func WithRandom(random func() uint64) ReferenceOption {
	return func(g *ReferenceGenerator) { g.random = random }
}

func NewReferenceGenerator(prefix string, opts ...ReferenceOption) *ReferenceGenerator {
	if prefix == "" {
		prefix = DefaultReferencePrefix
	}
	g := &ReferenceGenerator{prefix: prefix, now: time.Now, random: rand.Uint64}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *ReferenceGenerator) New() string {
	suffix := strconv.FormatUint(g.random(), 36)
	if len(suffix) > maxRandomSuffix {
		suffix = suffix[:maxRandomSuffix]
	}
	return fmt.Sprintf("%s-%d-%s", g.prefix, g.now().UnixMilli(), suffix)
}
