package vcfsynth_api

import (
	"math/rand"
	"regexp"
)

// SelectContig picks a random contig from the header, honoring the include
// and exclude patterns. At most one of the two patterns may be given.
// Patterns are matched against the start of the contig name.
func SelectContig(rng *rand.Rand, header *Header, include *regexp.Regexp, exclude *regexp.Regexp) (HeaderLineIdLength, error) {
	if include != nil && exclude != nil {
		return HeaderLineIdLength{}, ErrFilterConflict
	}

	candidates := []HeaderLineIdLength{}
	for _, contig := range header.Contig {
		if exclude != nil && matchesStart(exclude, contig.Id) {
			continue
		}
		if include != nil && !matchesStart(include, contig.Id) {
			continue
		}
		candidates = append(candidates, contig)
	}

	if len(candidates) == 0 {
		return HeaderLineIdLength{}, ErrNoContigs
	}

	return candidates[rng.Intn(len(candidates))], nil
}

// matchesStart reports whether the pattern matches at the beginning of name
func matchesStart(pattern *regexp.Regexp, name string) bool {
	location := pattern.FindStringIndex(name)
	return location != nil && location[0] == 0
}
