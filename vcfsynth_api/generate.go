package vcfsynth_api

import (
	"fmt"
	"io"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var descriptionRegex = regexp.MustCompile(`["']?([^"']*)["']?`)

// WriteHeader writes the template header back out, ahead of the synthesized
// records
func WriteHeader(header *Header, out io.Writer, noDate bool) error {
	// VCF version
	if err := writeLine("##fileformat=VCFv4.2", out); err != nil {
		return err
	}

	// Date of file creation
	if !noDate {
		cT := time.Now()
		dateLine := fmt.Sprintf("##fileDate=%d%02d%02d", cT.Year(), cT.Month(), cT.Day())
		if err := writeLine(dateLine, out); err != nil {
			return err
		}
	}

	// Other header lines of the template
	for _, line := range header.Other {
		if strings.HasPrefix(line, "##fileformat") || strings.HasPrefix(line, "##fileDate") {
			continue
		}
		if err := writeLine(line, out); err != nil {
			return err
		}
	}

	// ALT header lines
	for _, id := range sortedKeys(header.Alt) {
		description := descriptionRegex.FindStringSubmatch(header.Alt[id].Description)[1]
		altLine := fmt.Sprintf("##ALT=<ID=%s,Description=\"%s\">", id, description)
		if err := writeLine(altLine, out); err != nil {
			return err
		}
	}

	// FILTER header lines
	for _, id := range sortedKeys(header.Filter) {
		description := descriptionRegex.FindStringSubmatch(header.Filter[id].Description)[1]
		filterLine := fmt.Sprintf("##FILTER=<ID=%s,Description=\"%s\">", id, description)
		if err := writeLine(filterLine, out); err != nil {
			return err
		}
	}

	// INFO header lines
	for _, id := range sortedFieldNames(header.Info) {
		if err := writeLine(fieldLine("INFO", header.Info[id]), out); err != nil {
			return err
		}
	}

	// FORMAT header lines
	for _, id := range sortedFieldNames(header.Format) {
		if err := writeLine(fieldLine("FORMAT", header.Format[id]), out); err != nil {
			return err
		}
	}

	// Contig header lines
	for _, contig := range header.Contig {
		contigLine := fmt.Sprintf("##contig=<ID=%s,length=%d>", contig.Id, contig.Length)
		if err := writeLine(contigLine, out); err != nil {
			return err
		}
	}

	// The column headers
	columnHeaders := []string{"#CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO", "FORMAT"}
	columnHeaders = append(columnHeaders, header.Samples...)
	return writeLine(strings.Join(columnHeaders, "\t"), out)
}

// fieldLine renders an INFO or FORMAT header line, normalizing the case of
// the Type token
func fieldLine(headerType string, line HeaderLineIdNumberTypeDescription) string {
	description := descriptionRegex.FindStringSubmatch(line.Description)[1]
	fieldType := cases.Title(language.English, cases.Compact).String(strings.ToLower(line.Type))
	return fmt.Sprintf("##%s=<ID=%s,Number=%s,Type=%s,Description=\"%s\">", headerType, line.Id, line.Number, fieldType, description)
}

// Generate synthesizes count variants against the header and writes them to
// out in order. The first failed variant aborts the whole run.
func Generate(rng *rand.Rand, header *Header, out io.Writer, count int, options *Options) error {
	for i := 0; i < count; i++ {
		variant, err := SynthesizeVariant(rng, header, options)
		if err != nil {
			return err
		}
		if err := writeLine(variant.String(), out); err != nil {
			return err
		}
	}
	return nil
}

// Write a line to the output
func writeLine(line string, out io.Writer) error {
	_, err := fmt.Fprintln(out, line)
	return err
}

// Convert a variant to a VCF record line
func (v *Variant) String() string {
	// Make sure the order of the info fields is respected
	infoSlice := []string{}
	for _, key := range sortedFieldNames(v.Header.Info) {
		value, ok := v.Info[key]
		if !ok {
			continue
		}
		infoSlice = append(infoSlice, fmt.Sprintf("%s=%s", key, strings.Join(value, ",")))
	}
	info := strings.Join(infoSlice, ";")
	if info == "" {
		info = "."
	}

	// GT comes first, the other format fields keep a fixed order
	formatKeys := []string{}
	for _, key := range sortedFieldNames(v.Header.Format) {
		if key == "GT" {
			continue
		}
		formatKeys = append(formatKeys, key)
	}
	if _, ok := v.Header.Format["GT"]; ok {
		formatKeys = append([]string{"GT"}, formatKeys...)
	}

	columns := []string{
		v.Chromosome,
		fmt.Sprint(v.Pos),
		".",
		v.Ref,
		v.Alt,
		".",
		".",
		info,
	}

	if len(v.Header.Samples) > 0 {
		columns = append(columns, strings.Join(formatKeys, ":"))
		for _, sample := range v.Header.Samples {
			sampleArray := []string{}
			for _, key := range formatKeys {
				separator := ","
				if key == "GT" {
					separator = "/"
				}
				sampleArray = append(sampleArray, strings.Join(v.Format[sample].Content[key], separator))
			}
			columns = append(columns, strings.Join(sampleArray, ":"))
		}
	}

	return strings.Join(columns, "\t")
}

func sortedKeys(lines map[string]HeaderLineIdDescription) []string {
	keys := make([]string, 0, len(lines))
	for key := range lines {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
