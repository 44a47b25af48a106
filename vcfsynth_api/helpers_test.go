package vcfsynth_api

import "math/rand"

func testRng() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// biallelicVariant returns a minimal variant with one reference and one
// alternate allele
func biallelicVariant() *Variant {
	return &Variant{Ref: "A", Alt: "T"}
}

func integerLine(id string, number string) HeaderLineIdNumberTypeDescription {
	return HeaderLineIdNumberTypeDescription{
		Id:     id,
		Number: number,
		Type:   "Integer",
	}
}

func testHeader() *Header {
	header := newHeader()
	header.Contig = append(header.Contig, HeaderLineIdLength{Id: "chr1", Length: 1000})
	header.Info["DP"] = HeaderLineIdNumberTypeDescription{
		Id: "DP", Number: "1", Type: "Integer", Description: `"Total Depth"`,
	}
	header.Format["GT"] = HeaderLineIdNumberTypeDescription{
		Id: "GT", Number: "1", Type: "String", Description: `"Genotype"`,
	}
	header.Samples = []string{"S1"}
	return header
}
