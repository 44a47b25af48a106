package vcfsynth_api

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/biogo/hts/bgzf"
)

var headerLineRegex = regexp.MustCompile(`^##(?P<headerType>[^=]*)=<(?P<content>.*)>$`)

// Read parses the header of a template VCF file (plain or bgzip compressed).
// Record lines in the template are skipped, only the header is of interest.
func Read(file string) (*Header, error) {
	openFile, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer openFile.Close()

	header := newHeader()
	if strings.HasSuffix(file, ".gz") {
		err = header.readBgzip(openFile)
	} else {
		err = header.readPlain(openFile)
	}
	if err != nil {
		return nil, err
	}

	return header, nil
}

func (header *Header) readBgzip(input *os.File) error {
	bgReader, err := bgzf.NewReader(input, 1)
	if err != nil {
		return err
	}
	defer bgReader.Close()

	for {
		b, _, err := readLine(bgReader)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		if err := header.parse(string(bytes.TrimSpace(b[:]))); err != nil {
			return err
		}
	}
}

// readLine reads a single line from a bgzip file
func readLine(r *bgzf.Reader) ([]byte, bgzf.Chunk, error) {
	tx := r.Begin()
	var (
		data []byte
		b    byte
		err  error
	)
	for {
		b, err = r.ReadByte()
		if err != nil {
			break
		}
		data = append(data, b)
		if b == '\n' {
			break
		}
	}
	chunk := tx.End()
	if err == io.EOF && len(data) > 0 {
		err = nil
	}
	return data, chunk, err
}

func (header *Header) readPlain(input *os.File) error {
	scanner := bufio.NewScanner(input)
	const maxCapacity = 8 * 1000000 // 8 MB
	scanner.Buffer(make([]byte, maxCapacity), maxCapacity)
	for scanner.Scan() {
		if err := header.parse(scanner.Text()); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// Parse a single header line and add it to the Header struct
func (header *Header) parse(line string) error {
	if !strings.HasPrefix(line, "#") {
		return nil
	}

	if strings.HasPrefix(line, "#CHROM") {
		// Sites-only templates stop after the INFO column and carry no samples
		columns := strings.Split(line, "\t")
		if len(columns) > 9 {
			header.Samples = columns[9:]
		}
		return nil
	}

	matches := headerLineRegex.FindStringSubmatch(line)

	if len(matches) == 0 {
		header.Other = append(header.Other, line)
		return nil
	}

	headerType := matches[1]
	content := matches[2]
	contentMap := convertLineToMap(content)

	switch headerType {
	case "INFO":
		header.Info[contentMap["id"]] = HeaderLineIdNumberTypeDescription{
			Id:          contentMap["id"],
			Number:      contentMap["number"],
			Type:        contentMap["type"],
			Description: contentMap["description"],
		}
	case "FORMAT":
		header.Format[contentMap["id"]] = HeaderLineIdNumberTypeDescription{
			Id:          contentMap["id"],
			Number:      contentMap["number"],
			Type:        contentMap["type"],
			Description: contentMap["description"],
		}
	case "ALT":
		header.Alt[contentMap["id"]] = HeaderLineIdDescription{
			Id:          contentMap["id"],
			Description: contentMap["description"],
		}
	case "FILTER":
		header.Filter[contentMap["id"]] = HeaderLineIdDescription{
			Id:          contentMap["id"],
			Description: contentMap["description"],
		}
	case "contig":
		length, err := strconv.ParseInt(contentMap["length"], 0, 64)
		if err != nil {
			return fmt.Errorf("could not convert the length of contig %s to an integer: %v", contentMap["id"], err)
		}
		header.Contig = append(header.Contig, HeaderLineIdLength{
			Id:     contentMap["id"],
			Length: length,
		})
	}

	return nil
}

// convertLineToMap converts the header line contents to a map suitable to transform to a struct
func convertLineToMap(line string) map[string]string {
	data := map[string]string{}
	word := ""
	key := ""
	quote := ""
	for _, letter := range strings.Split(line, "") {
		if letter == "=" && key == "" {
			key = strings.ToLower(word)
			word = ""
			continue
		} else if letter == "," && quote == "" {
			data[key] = word
			key = ""
			word = ""
			continue
		}

		word += letter

		if letter == quote {
			quote = ""
		} else if letter == "\"" || letter == "'" {
			quote = letter
		}
	}
	data[key] = word

	return data
}
