package vcfsynth_api

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// SynthesizeValues generates count random values for an INFO or FORMAT field,
// formatted the way they appear in a VCF record.
// Flag fields carry no value and cannot be synthesized.
func SynthesizeValues(rng *rand.Rand, line HeaderLineIdNumberTypeDescription, count int, profile *Profile) ([]string, error) {
	switch line.Type {
	case "Integer", "Float", "Character", "String":
	default:
		return nil, fmt.Errorf("%w: %q for field %s", ErrUnsupportedType, line.Type, line.Id)
	}

	values := make([]string, 0, count)
	for i := 0; i < count; i++ {
		switch line.Type {
		case "Integer":
			number := profile.Integer.Min + rng.Intn(profile.Integer.Max-profile.Integer.Min+1)
			values = append(values, strconv.Itoa(number))
		case "Float":
			values = append(values, strconv.FormatFloat(rng.Float64(), 'f', -1, 64))
		case "Character":
			values = append(values, randomLetter(rng))
		case "String":
			var builder strings.Builder
			for j := 0; j < profile.String.Length; j++ {
				builder.WriteString(randomLetter(rng))
			}
			values = append(values, builder.String())
		}
	}

	return values, nil
}

func randomLetter(rng *rand.Rand) string {
	return string(letterChars[rng.Intn(len(letterChars))])
}

// randomBase draws a single allele symbol from the profile base set
func randomBase(rng *rand.Rand, profile *Profile) string {
	return profile.Bases[rng.Intn(len(profile.Bases))]
}
