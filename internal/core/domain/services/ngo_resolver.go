// Package services contains stateless domain services that operate across
// aggregates. The assignment resolver chooses which NGO a post is routed to.
package services

import (
	"math"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/core/domain/model/ngo"
	"sharebite/internal/core/domain/model/post"
)

// AssignmentResolver selects the NGO a newly created (or re-swept) post
// should be routed to, given a snapshot of the directory.
//
// Implementations must be pure: no side effects, and the same post with the
// same snapshot always yields the same choice. A nil result means the
// directory has no candidates; this is not an error, the post simply stays
// unassigned until the next sweep.
type AssignmentResolver interface {
	ResolveNgoForPost(p *post.Post, ngos []*ngo.NGO) (*kernel.UUID, error)
}

// NearestNgoResolver routes each post to the geographically closest NGO.
//
// Selection rules:
//   - When the post and at least one NGO carry coordinates, the NGO with the
//     smallest great-circle distance wins
//   - Distance ties, NGOs without coordinates, and posts without coordinates
//     fall back to the first NGO in lowest-id order, keeping the choice
//     deterministic over any snapshot ordering
//
// The resolver deliberately ignores the verified flag: an unverified NGO is
// still routed posts, and verification gates other platform features.
type NearestNgoResolver struct{}

// NewNearestNgoResolver creates a NearestNgoResolver.
func NewNearestNgoResolver() NearestNgoResolver {
	return NearestNgoResolver{}
}

// ResolveNgoForPost picks the best candidate from the snapshot, or nil when
// the snapshot is empty. Only input validation can fail.
func (r NearestNgoResolver) ResolveNgoForPost(p *post.Post, ngos []*ngo.NGO) (*kernel.UUID, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var (
		best         *ngo.NGO
		bestDistance = math.MaxFloat64
		bestHasDist  bool
	)

	for _, candidate := range ngos {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		distance, err := p.Location().DistanceKmTo(candidate.Location())
		hasDist := err == nil

		if best == nil {
			best, bestDistance, bestHasDist = candidate, distance, hasDist
			continue
		}

		if better(candidate, distance, hasDist, best, bestDistance, bestHasDist) {
			best, bestDistance, bestHasDist = candidate, distance, hasDist
		}
	}

	if best == nil {
		return nil, nil
	}

	id := best.ID()
	return &id, nil
}

// better reports whether the candidate beats the current best. NGOs with a
// computable distance always beat those without; between two measurable NGOs
// the shorter distance wins; everything else falls back to lowest id.
func better(candidate *ngo.NGO, candidateDist float64, candidateHasDist bool,
	best *ngo.NGO, bestDist float64, bestHasDist bool,
) bool {
	if candidateHasDist != bestHasDist {
		return candidateHasDist
	}
	if candidateHasDist && candidateDist != bestDist {
		return candidateDist < bestDist
	}
	return candidate.ID().String() < best.ID().String()
}
