package vcfsynth_api

import "errors"

var (
	// Only one of the include and exclude contig filters may be active per run
	ErrFilterConflict = errors.New("only one of the include and exclude contig filters may be set")

	// The contig filters removed every contig from the header
	ErrNoContigs = errors.New("the contig filters are too restrictive and have resulted in no valid contigs")

	// The field type has no synthesis rule (Flag fields carry no value, unknown
	// types have no defined behavior)
	ErrUnsupportedType = errors.New("no synthesis rule for field type")

	// The Number specifier of a field is not an integer, "A", "R" or "."
	ErrUnsupportedNumber = errors.New("unsupported Number specifier")

	// The field declares Number "." and has no defined value count to synthesize
	ErrUnboundedNumber = errors.New("field declares an unbounded Number")

	// The genotype option is not one of hom-ref, hom-alt, het or empty
	ErrUnknownGenotypeOption = errors.New("unknown genotype option")

	// The synthesis profile declares an impossible value range
	ErrInvalidProfile = errors.New("invalid synthesis profile")
)
