package seq

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Record is a named sequence parsed from a FASTA or GenBank file
type Record struct {
	// Name of the record. In ">example_CDS" FASTA its "example_CDS"
	Name string `json:"name"`

	// Seq is the record's sequence, uppercased
	Seq string `json:"seq"`
}

// fileExts are the extensions that mark an input string as a path rather
// than a raw sequence
var fileExts = []string{".fa", ".fasta", ".txt", ".gb", ".gbk", ".genbank"}

// Read takes either a raw DNA sequence or the path to a FASTA/GenBank file
// and returns the first record in it. Raw input is cleaned, validated and
// named "seq"
func Read(input string) (Record, error) {
	lower := strings.ToLower(input)
	isPath := false
	for _, ext := range fileExts {
		if strings.Contains(lower, ext) {
			isPath = true
			break
		}
	}

	if !isPath {
		cleaned := Clean(input)
		if err := Validate(cleaned); err != nil {
			return Record{}, fmt.Errorf("failed to parse sequence: %v", err)
		}
		return Record{Name: "seq", Seq: cleaned}, nil
	}

	records, err := ReadFile(input)
	if err != nil {
		return Record{}, err
	}

	return records[0], nil
}

// ReadFile reads a FASTA or GenBank file (by its path on the local FS) to a
// slice of Records
func ReadFile(path string) (records []Record, err error) {
	if !filepath.IsAbs(path) {
		if path, err = filepath.Abs(path); err != nil {
			return nil, fmt.Errorf("failed to create path to input file: %v", err)
		}
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %v", err)
	}
	if len(dat) == 0 {
		return nil, fmt.Errorf("failed to parse %s: empty file", path)
	}
	file := string(dat)

	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, "fa") || strings.HasSuffix(lower, "fasta") || strings.HasSuffix(lower, "txt") || file[0] == '>' {
		return readFasta(path, file)
	}

	if strings.HasSuffix(lower, "gb") || strings.HasSuffix(lower, "gbk") || strings.HasSuffix(lower, "genbank") {
		return readGenbank(path, file)
	}

	return nil, fmt.Errorf("failed to parse %s: unrecognized file type", path)
}

// readFasta parses a multifasta file to records
func readFasta(path, contents string) (records []Record, err error) {
	// split by newlines
	lines := strings.Split(contents, "\n")

	// read in the names
	var headerIndices []int
	var names []string
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndices = append(headerIndices, i)
			names = append(names, strings.TrimSpace(line[1:]))
		}
	}

	// a bare sequence file without a header is a single anonymous record
	if len(headerIndices) == 0 {
		cleaned := Clean(contents)
		if err := Validate(cleaned); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %v", path, err)
		}
		return []Record{{Name: "seq", Seq: cleaned}}, nil
	}

	// accumulate the sequences from between the headers
	var seqs []string
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}
		seqLines := lines[headerIndex+1 : nextLine]
		seqs = append(seqs, Clean(strings.Join(seqLines, "")))
	}

	for i, name := range names {
		if err := Validate(seqs[i]); err != nil {
			return nil, fmt.Errorf("failed to parse %s in %s: %v", name, path, err)
		}
		records = append(records, Record{Name: name, Seq: seqs[i]})
	}

	// opened and parsed file but found nothing
	if len(records) < 1 {
		return nil, fmt.Errorf("failed to parse sequence(s) from %s", path)
	}

	return
}

// readGenbank parses a genbank file to a single record, using the LOCUS
// name and the ORIGIN block
func readGenbank(path, contents string) (records []Record, err error) {
	genbankSplit := strings.Split(contents, "ORIGIN")

	if len(genbankSplit) != 2 {
		return nil, fmt.Errorf("failed to parse %s: improperly formatted genbank file", path)
	}

	cleanedSeq := Clean(strings.Replace(genbankSplit[1], "//", "", -1))
	if err := Validate(cleanedSeq); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", path, err)
	}

	idRegex := regexp.MustCompile(`LOCUS[ \t]+([^ \t\n]+)`)
	idMatch := idRegex.FindStringSubmatch(genbankSplit[0])

	if len(idMatch) < 2 {
		return nil, fmt.Errorf("failed to parse locus from %s", path)
	}

	return []Record{{Name: idMatch[1], Seq: cleanedSeq}}, nil
}

// Write writes records to a multi-FASTA file at path
func Write(path string, records []Record) error {
	var output strings.Builder
	for _, r := range records {
		output.WriteString(fmt.Sprintf(">%s\n%s\n", r.Name, r.Seq))
	}

	if err := os.WriteFile(path, []byte(output.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %v", path, err)
	}

	return nil
}
