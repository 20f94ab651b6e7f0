// Common package contains the validators, error kinds and FASTA I/O shared by
// the dna, rna and visualization packages.
package common

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// LineWidth is the number of sequence characters per line written by FormatFasta.
const LineWidth = 80

// maxLineSize bounds a single FASTA line; unwrapped sequences can be long.
const maxLineSize = 1 << 30

var ErrMissingIdentifier = errors.New("FASTA header has no identifier")

var logger = log.New(io.Discard, "quickbio: ", 0)

// SetLogger routes parser diagnostics (ignored lines, duplicate identifiers)
// to l. A nil logger silences them again.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

// ParseFasta reads FASTA records from r.
// Identifiers are the first token after '>'; the rest of the header is dropped.
// Sequence lines are concatenated verbatim and blank lines are skipped.
// Lines before the first header are ignored and a repeated identifier
// overwrites the earlier sequence.
func ParseFasta(r io.Reader) (*Records, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	records := NewRecords()
	var currentID string
	var buffer strings.Builder
	lineNum := 0

	commit := func() {
		if currentID == "" {
			return
		}
		if _, dup := records.Get(currentID); dup {
			logger.Printf("duplicate identifier %q, keeping the later sequence", currentID)
		}
		records.Set(currentID, buffer.String())
	}

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ">") {
			commit()
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				return nil, fmt.Errorf("line %d: %w", lineNum, ErrMissingIdentifier)
			}
			currentID = fields[0]
			buffer.Reset()
			continue
		}

		if currentID == "" {
			logger.Printf("line %d: sequence data before first header ignored", lineNum)
			continue
		}
		buffer.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	commit()

	return records, nil
}

// ReadFasta parses the FASTA file at path. Gzipped files are detected by
// their magic bytes and decompressed transparently.
func ReadFasta(path string) (*Records, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader = f
	buf := make([]byte, 2)
	n, _ := io.ReadFull(f, buf)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	if n == 2 && buf[0] == 0x1F && buf[1] == 0x8B {
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		defer gr.Close()
		reader = gr
	}

	return ParseFasta(reader)
}

// FormatFasta writes every record in insertion order, wrapping sequences
// at LineWidth characters.
func FormatFasta(w io.Writer, records *Records) error {
	bw := bufio.NewWriter(w)
	for _, id := range records.IDs() {
		seq, _ := records.Get(id)
		if _, err := bw.WriteString(">" + id + "\n"); err != nil {
			return err
		}
		if _, err := bw.WriteString(wrapSequence(seq, LineWidth)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFasta writes records to path, truncating any existing file.
// A path ending in ".gz" is gzip-compressed.
func WriteFasta(records *Records, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	if !strings.HasSuffix(path, ".gz") {
		return FormatFasta(file, records)
	}

	gz := gzip.NewWriter(file)
	if err := FormatFasta(gz, records); err != nil {
		gz.Close()
		return fmt.Errorf("error writing compressed data: %w", err)
	}
	return gz.Close()
}

// wrapSequence splits seq into lines of at most width characters, each
// terminated by a newline. An empty sequence yields no lines.
func wrapSequence(seq string, width int) string {
	runes := []rune(seq)
	var out strings.Builder
	for i := 0; i < len(runes); i += width {
		end := i + width
		if end > len(runes) {
			end = len(runes)
		}
		out.WriteString(string(runes[i:end]) + "\n")
	}
	return out.String()
}
