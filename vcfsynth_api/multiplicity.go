package vcfsynth_api

import (
	"fmt"
	"strconv"
)

// UnboundedNumber is returned for fields whose header declares Number "."
// Such fields have no defined value count, callers decide how to handle them
const UnboundedNumber = -1

// Multiplicity determines the number of values an INFO or FORMAT field
// carries on the given variant
func Multiplicity(line HeaderLineIdNumberTypeDescription, variant *Variant) (int, error) {
	// GT always holds a single value, whatever the header declares
	if line.Id == "GT" {
		return 1, nil
	}

	if number, err := strconv.Atoi(line.Number); err == nil {
		if number < 0 {
			return 0, fmt.Errorf("%w: %q for field %s", ErrUnsupportedNumber, line.Number, line.Id)
		}
		return number, nil
	}

	switch line.Number {
	case "A":
		return variant.AltCount(), nil
	case "R":
		return variant.AlleleCount(), nil
	case ".":
		return UnboundedNumber, nil
	}

	return 0, fmt.Errorf("%w: %q for field %s", ErrUnsupportedNumber, line.Number, line.Id)
}
