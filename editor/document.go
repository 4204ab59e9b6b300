package editor

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"slices"
)

// Lines longer than this fail to load.
const MAX_LINE_LENGTH = 64 << 20

// Row is one line of the document without its line ending.
type Row struct {
	chars []byte
}

// Document is the ordered, read-only sequence of rows being viewed.
type Document struct {
	rows []Row
}

func NewDocument() *Document {
	return &Document{}
}

// AppendRow copies s into a new row at the end of the document.
func (d *Document) AppendRow(s []byte) {
	d.rows = append(d.rows, Row{chars: slices.Clone(s)})
}

func (d *Document) NumRows() int {
	if d == nil {
		return 0
	}
	return len(d.rows)
}

// Row returns the content of row i. The slice must not be modified.
func (d *Document) Row(i int) []byte {
	return d.rows[i].chars
}

// Open loads the file at path.
func Open(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, opError(ErrFileOpen, "open", err)
	}
	defer file.Close()

	doc, err := Load(file)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Load splits r into rows. "\n", "\r\n" and a lone "\r" all end a line, and a
// last line without a terminator still becomes a row.
func Load(r io.Reader) (*Document, error) {
	doc := NewDocument()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MAX_LINE_LENGTH)
	scanner.Split(scanLines)
	for scanner.Scan() {
		doc.AppendRow(scanner.Bytes())
	}
	if err := scanner.Err(); err != nil {
		return nil, opError(ErrFileOpen, "read", err)
	}
	return doc, nil
}

// scanLines is bufio.ScanLines extended with bare carriage returns.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// A CR at the end of the buffer may be the first half of CRLF.
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
