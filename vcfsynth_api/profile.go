package vcfsynth_api

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// The character set used for Character and String fields
const letterChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// The struct representing the synthesis profile
// The profile file is a YAML file
type Profile struct {
	// The bounds of synthesized Integer values, both inclusive
	Integer struct {
		Min int
		Max int
	}

	// Options for synthesized String values
	String struct {
		// The number of characters in each synthesized string
		Length int
	}

	// The symbols to draw reference and alternate alleles from
	Bases []string
}

// DefaultProfile returns the profile used when no profile file is given
func DefaultProfile() *Profile {
	profile := &Profile{}
	profile.defineMissing()
	return profile
}

// ReadProfile reads the profile file, casts it to its struct and fills in
// the missing fields
func ReadProfile(file string) (*Profile, error) {
	profileFile, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open the profile file: %v", err)
	}

	var profile Profile

	if err := yaml.Unmarshal(profileFile, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse the profile file: %v", err)
	}

	profile.defineMissing()
	if err := profile.validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Validate the value ranges of the profile
func (profile *Profile) validate() error {
	if profile.Integer.Max < profile.Integer.Min {
		return fmt.Errorf("%w: the integer max %d is smaller than the min %d", ErrInvalidProfile, profile.Integer.Max, profile.Integer.Min)
	}
	if profile.String.Length < 0 {
		return fmt.Errorf("%w: the string length %d is negative", ErrInvalidProfile, profile.String.Length)
	}
	return nil
}

// Define all missing mandatory fields
func (profile *Profile) defineMissing() {
	if profile.Integer.Max == 0 {
		profile.Integer.Max = 100
	}
	if profile.String.Length == 0 {
		profile.String.Length = 10
	}
	if len(profile.Bases) == 0 {
		profile.Bases = []string{"A", "T", "C", "G", "N"}
	}
}
