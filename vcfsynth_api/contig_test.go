package vcfsynth_api

import (
	"errors"
	"regexp"
	"testing"
)

func contigHeader(names ...string) *Header {
	header := newHeader()
	for _, name := range names {
		header.Contig = append(header.Contig, HeaderLineIdLength{Id: name, Length: 1000})
	}
	return header
}

func TestSelectContigWithoutFilters(t *testing.T) {
	rng := testRng()
	header := contigHeader("chrA", "chrB")

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		contig, err := SelectContig(rng, header, nil, nil)
		if err != nil {
			t.Fatalf("SelectContig() returned an error: %v", err)
		}
		seen[contig.Id] = true
	}
	if !seen["chrA"] || !seen["chrB"] {
		t.Errorf("expected both contigs to be selected over 50 draws, got %v", seen)
	}
}

func TestSelectContigBothFiltersSet(t *testing.T) {
	_, err := SelectContig(testRng(), contigHeader("chrA"), regexp.MustCompile("chrA"), regexp.MustCompile("chrB"))
	if !errors.Is(err, ErrFilterConflict) {
		t.Errorf("got %v, want ErrFilterConflict", err)
	}
}

func TestSelectContigExclude(t *testing.T) {
	rng := testRng()
	header := contigHeader("chrA", "chrB")
	exclude := regexp.MustCompile("chrA")

	for i := 0; i < 20; i++ {
		contig, err := SelectContig(rng, header, nil, exclude)
		if err != nil {
			t.Fatalf("SelectContig() returned an error: %v", err)
		}
		if contig.Id != "chrB" {
			t.Fatalf("excluded contig %q was selected", contig.Id)
		}
	}
}

func TestSelectContigInclude(t *testing.T) {
	rng := testRng()
	header := contigHeader("chr1", "chr10", "alt_chr1")
	include := regexp.MustCompile("chr1")

	// The pattern is anchored to the start of the name, so "chr1" keeps
	// "chr1" and "chr10" but not "alt_chr1"
	for i := 0; i < 20; i++ {
		contig, err := SelectContig(rng, header, include, nil)
		if err != nil {
			t.Fatalf("SelectContig() returned an error: %v", err)
		}
		if contig.Id == "alt_chr1" {
			t.Fatal("contig \"alt_chr1\" does not match at the start of the name and should not be selected")
		}
	}
}

func TestSelectContigNoCandidates(t *testing.T) {
	tests := []struct {
		name    string
		include *regexp.Regexp
		exclude *regexp.Regexp
	}{
		{"include matches nothing", regexp.MustCompile("chrX"), nil},
		{"exclude matches everything", nil, regexp.MustCompile("chr")},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := SelectContig(testRng(), contigHeader("chrA", "chrB"), test.include, test.exclude)
			if !errors.Is(err, ErrNoContigs) {
				t.Errorf("got %v, want ErrNoContigs", err)
			}
		})
	}
}
