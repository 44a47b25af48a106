package vcfsynth_api

import (
	"errors"
	"testing"
)

func TestMultiplicity(t *testing.T) {
	biallelic := biallelicVariant()
	multiallelic := &Variant{Ref: "A", Alt: "T,G"}

	tests := []struct {
		name    string
		line    HeaderLineIdNumberTypeDescription
		variant *Variant
		want    int
	}{
		{"fixed number", integerLine("DP", "1"), biallelic, 1},
		{"fixed number zero", integerLine("SB", "0"), biallelic, 0},
		{"per alternate allele", integerLine("AC", "A"), biallelic, 1},
		{"per alternate allele multiallelic", integerLine("AC", "A"), multiallelic, 2},
		{"per allele", integerLine("AD", "R"), biallelic, 2},
		{"per allele multiallelic", integerLine("AD", "R"), multiallelic, 3},
		{"unbounded", integerLine("CIPOS", "."), biallelic, UnboundedNumber},
		{"GT is always one", integerLine("GT", "."), biallelic, 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Multiplicity(test.line, test.variant)
			if err != nil {
				t.Fatalf("Multiplicity() returned an error: %v", err)
			}
			if got != test.want {
				t.Errorf("Multiplicity() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestMultiplicityUnsupportedNumber(t *testing.T) {
	for _, number := range []string{"G", "-1", "banana"} {
		_, err := Multiplicity(integerLine("XX", number), biallelicVariant())
		if !errors.Is(err, ErrUnsupportedNumber) {
			t.Errorf("Multiplicity() with Number %q: got %v, want ErrUnsupportedNumber", number, err)
		}
	}
}
