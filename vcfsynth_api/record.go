package vcfsynth_api

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
)

// Options steering the synthesis of variants, fixed for a whole run
type Options struct {
	// Only synthesize variants on contigs whose name matches this pattern
	IncludeContig *regexp.Regexp

	// Never synthesize variants on contigs whose name matches this pattern
	ExcludeContig *regexp.Regexp

	// The constraint to apply to every synthesized genotype
	Genotype GenotypeOption

	// The value ranges to synthesize values from
	Profile *Profile
}

// SynthesizeVariant generates one variant with random data, based on the
// provided header
func SynthesizeVariant(rng *rand.Rand, header *Header, options *Options) (*Variant, error) {
	contig, err := SelectContig(rng, header, options.IncludeContig, options.ExcludeContig)
	if err != nil {
		return nil, err
	}

	variant := newVariant(header)
	variant.Chromosome = contig.Id
	variant.Pos = 1 + rng.Int63n(contig.Length)
	variant.Ref = randomBase(rng, options.Profile)
	variant.Alt = randomBase(rng, options.Profile)

	// Add the INFO fields
	// END is derived from the position, not synthesized
	for _, name := range sortedFieldNames(header.Info) {
		if name == "END" {
			continue
		}
		values, err := synthesizeField(rng, header.Info[name], variant, options.Profile)
		if err != nil {
			return nil, err
		}
		variant.Info[name] = values
	}

	// Add the FORMAT fields for every sample
	for _, sample := range header.Samples {
		format := newVariantFormat(sample)
		for _, name := range sortedFieldNames(header.Format) {
			if name == "GT" {
				genotype, err := SynthesizeGenotype(rng, variant, options.Genotype)
				if err != nil {
					return nil, err
				}
				format.Content[name] = genotypeStrings(genotype)
				continue
			}
			values, err := synthesizeField(rng, header.Format[name], variant, options.Profile)
			if err != nil {
				return nil, err
			}
			format.Content[name] = values
		}
		variant.Format[sample] = *format
	}

	return variant, nil
}

// synthesizeField resolves the multiplicity of a field and generates a value
// tuple of that length
func synthesizeField(rng *rand.Rand, line HeaderLineIdNumberTypeDescription, variant *Variant, profile *Profile) ([]string, error) {
	multiplicity, err := Multiplicity(line, variant)
	if err != nil {
		return nil, err
	}
	if multiplicity == UnboundedNumber {
		return nil, fmt.Errorf("%w: field %s", ErrUnboundedNumber, line.Id)
	}
	return SynthesizeValues(rng, line, multiplicity, profile)
}

// sortedFieldNames returns the field names in a fixed order so that seeded
// runs draw random values in a fixed order
func sortedFieldNames(lines map[string]HeaderLineIdNumberTypeDescription) []string {
	names := make([]string, 0, len(lines))
	for name := range lines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func genotypeStrings(genotype []int) []string {
	values := make([]string, len(genotype))
	for i, index := range genotype {
		values[i] = strconv.Itoa(index)
	}
	return values
}
