package vcfsynth_api

import "strings"

// The struct representing the header of the template VCF file in a parseable format
type Header struct {
	// Object containing the INFO fields with their ID, Number, Type and Description
	// The ID is the key of the map
	Info map[string]HeaderLineIdNumberTypeDescription

	// Object containing the FORMAT fields with their ID, Number, Type and Description
	// The ID is the key of the map
	Format map[string]HeaderLineIdNumberTypeDescription

	// Object containing the ALT fields with their ID and Description
	// The ID is the key of the map
	Alt map[string]HeaderLineIdDescription

	// Object containing the FILTER fields with their ID and Description
	// The ID is the key of the map
	Filter map[string]HeaderLineIdDescription

	// List of all contigs in the VCF file with their ID and Length,
	// in the order they appear in the template header
	Contig []HeaderLineIdLength

	// List of all other VCF header lines, passed through unchanged
	Other []string

	// List of all samples in the VCF file
	Samples []string
}

// A struct representing a header line in the VCF file with its ID and Description
type HeaderLineIdDescription struct {
	// The ID of the header line
	Id string

	// The description of the header line
	Description string
}

// A struct representing a header line in the VCF file with its ID, Number, Type and Description
type HeaderLineIdNumberTypeDescription struct {
	// The ID of the header line
	Id string

	// The number of values in the header line
	// Can be any integer, "A", "G", "R" or "."
	// A = one value per alternate allele
	// G = one value per possible genotype
	// R = one value per possible allele
	// . = the number varies, is unkown or is unbounded
	Number string

	// The type of the header line
	// Can be "Integer", "Float", "Flag", "String" or "Character"
	Type string

	// The description of the header line
	Description string
}

// A struct representing a header line in the VCF file with its ID and Length
type HeaderLineIdLength struct {
	// The ID of the header line
	Id string

	// The length of the header line
	Length int64
}

// A struct representing a synthesized variant
type Variant struct {
	// The chromosome of the variant
	Chromosome string

	// The 1-based position of the variant
	Pos int64

	// The reference allele of the variant
	Ref string

	// The alternate allele(s) of the variant, comma separated
	Alt string

	// A pointer to the header the variant was synthesized against
	Header *Header

	// The INFO values of the variant
	Info map[string][]string

	// The FORMAT values of the variant
	Format map[string]VariantFormat
}

// A struct representing the format values of one sample of a variant
type VariantFormat struct {
	// The sample name of the variant
	Sample string

	// The content of the format field
	Content map[string][]string
}

// AltCount returns the number of alternate alleles on the variant
func (v *Variant) AltCount() int {
	if v.Alt == "" || v.Alt == "." {
		return 0
	}
	return strings.Count(v.Alt, ",") + 1
}

// AlleleCount returns the number of alleles (reference included) on the variant
func (v *Variant) AlleleCount() int {
	return 1 + v.AltCount()
}

// Initialize a new Variant
func newVariant(header *Header) *Variant {
	return &Variant{
		Header: header,
		Info:   map[string][]string{},
		Format: map[string]VariantFormat{},
	}
}

// Initialize a new VariantFormat
func newVariantFormat(sample string) *VariantFormat {
	return &VariantFormat{
		Sample:  sample,
		Content: map[string][]string{},
	}
}

// Create a new header struct
func newHeader() *Header {
	return &Header{
		Info:    map[string]HeaderLineIdNumberTypeDescription{},
		Format:  map[string]HeaderLineIdNumberTypeDescription{},
		Alt:     map[string]HeaderLineIdDescription{},
		Filter:  map[string]HeaderLineIdDescription{},
		Contig:  []HeaderLineIdLength{},
		Other:   []string{},
		Samples: []string{},
	}
}
