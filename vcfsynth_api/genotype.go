package vcfsynth_api

import (
	"fmt"
	"math/rand"
)

// GenotypeOption constrains how genotypes are synthesized.
// The empty option places no constraint and yields fully random genotypes.
type GenotypeOption string

const (
	GenotypeRandom GenotypeOption = ""
	GenotypeHomRef GenotypeOption = "hom-ref"
	GenotypeHomAlt GenotypeOption = "hom-alt"
	GenotypeHet    GenotypeOption = "het"
)

// ParseGenotypeOption validates a genotype option given on the command line
func ParseGenotypeOption(input string) (GenotypeOption, error) {
	option := GenotypeOption(input)
	switch option {
	case GenotypeRandom, GenotypeHomRef, GenotypeHomAlt, GenotypeHet:
		return option, nil
	}
	return GenotypeRandom, fmt.Errorf("%w: %q", ErrUnknownGenotypeOption, input)
}

// SynthesizeGenotype generates the allele indices of a genotype call for one
// sample. The call always holds as many allele indices as the variant has
// alleles.
func SynthesizeGenotype(rng *rand.Rand, variant *Variant, option GenotypeOption) ([]int, error) {
	alleleCount := variant.AlleleCount()

	switch option {
	case GenotypeHet:
		// Always one reference call, the rest drawn from the alternates,
		// in a random order
		genotype := append(
			[]int{0},
			randomCombination(rng, 1, alleleCount, alleleCount-1)...,
		)
		rng.Shuffle(len(genotype), func(i, j int) {
			genotype[i], genotype[j] = genotype[j], genotype[i]
		})
		return genotype, nil
	case GenotypeHomAlt:
		return repeatedIndex(1, alleleCount), nil
	case GenotypeHomRef:
		return repeatedIndex(0, alleleCount), nil
	case GenotypeRandom:
		return randomCombination(rng, 0, alleleCount, alleleCount), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownGenotypeOption, option)
}

func repeatedIndex(index int, count int) []int {
	genotype := make([]int, count)
	for i := range genotype {
		genotype[i] = index
	}
	return genotype
}

// randomCombination picks a uniform random combination with replacement of
// length count from the allele indices [low, high)
func randomCombination(rng *rand.Rand, low int, high int, count int) []int {
	combinations := combinationsWithReplacement(low, high, count)
	return combinations[rng.Intn(len(combinations))]
}

// combinationsWithReplacement enumerates every non-decreasing sequence of
// length count over the indices [low, high)
func combinationsWithReplacement(low int, high int, count int) [][]int {
	if count == 0 {
		return [][]int{{}}
	}

	combinations := [][]int{}
	for index := low; index < high; index++ {
		for _, tail := range combinationsWithReplacement(index, high, count-1) {
			combination := append([]int{index}, tail...)
			combinations = append(combinations, combination)
		}
	}
	return combinations
}
