package gfa

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vlaran/pangaea/internal/xlog"
)

var log = xlog.Named("gfa")

// gzipMagic is the two-byte gzip frame header (RFC 1952 §2.3.1).
var gzipMagic = [2]byte{0x1f, 0x8b}

// Reader scans GFA1 records line by line, auto-decompressing gzip
// input. Zero value is not usable; construct with Open.
type Reader struct {
	path   string
	closer io.Closer
	sc     *bufio.Scanner
	line   int
}

// Open opens path, sniffing the first two bytes to decide whether to
// wrap the stream in a gzip.Reader.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	br := bufio.NewReader(f)
	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	var r io.Reader = br
	var closer io.Closer = f
	if len(magic) == 2 && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		gz, gerr := gzip.NewReader(br)
		if gerr != nil {
			f.Close()
			return nil, fmt.Errorf("%w: %v", ErrIOFailure, gerr)
		}
		r = gz
		closer = multiCloser{gz, f}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	return &Reader{path: path, closer: closer, sc: sc}, nil
}

type multiCloser struct {
	gz *gzip.Reader
	f  *os.File
}

func (m multiCloser) Close() error {
	if err := m.gz.Close(); err != nil {
		m.f.Close()
		return err
	}

	return m.f.Close()
}

// Close releases the underlying file (and gzip reader, if any).
func (r *Reader) Close() error { return r.closer.Close() }

// Next returns the next recognized record (Segment, Link, PathRecord,
// or WalkRecord) as an any, or io.EOF when the input is exhausted.
// Unrecognized record types are skipped with a warning, per spec.md §4.1
// "Unknown record type is skipped with a warning".
func (r *Reader) Next() (any, error) {
	for r.sc.Scan() {
		r.line++
		line := r.sc.Text()
		if line == "" {
			continue
		}

		switch line[0] {
		case 'S':
			return r.parseSegment(line)
		case 'L':
			return r.parseLink(line)
		case 'P':
			return r.parsePath(line)
		case 'W':
			return r.parseWalk(line)
		default:
			log.Warn().Str("file", r.path).Int("line", r.line).Str("kind", line[:1]).Msg("skipping unknown GFA record type")
			continue
		}
	}
	if err := r.sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	return nil, io.EOF
}

func (r *Reader) fail(err error) (any, error) {
	return nil, newParseError(r.path, r.line, err)
}

func (r *Reader) parseSegment(line string) (any, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 3 {
		return r.fail(fmt.Errorf("%w: S record requires name and sequence/length field", ErrMalformedGFA))
	}
	name, seqField := fields[1], fields[2]
	if name == "" {
		return r.fail(fmt.Errorf("%w: empty segment name", ErrMalformedGFA))
	}

	length, err := segmentLength(seqField)
	if err != nil {
		return r.fail(fmt.Errorf("%w: %v", ErrMalformedGFA, err))
	}

	return Segment{Name: name, Length: length}, nil
}

// segmentLength accepts either a literal sequence ("ACGT...") or a
// length marker ("*" with no usable length hint falls back to 0, "N"
// count fields are not modeled since sequence-level ops are out of
// scope).
func segmentLength(seqField string) (int, error) {
	if seqField == "*" {
		return 0, nil
	}

	return len(seqField), nil
}

func (r *Reader) parseLink(line string) (any, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 5 {
		return r.fail(fmt.Errorf("%w: L record requires from,fromOrient,to,toOrient,overlap", ErrMalformedGFA))
	}
	fo, ok := OrientationFromByte(orientByte(fields[2]))
	if !ok {
		return r.fail(fmt.Errorf("%w: unknown orientation byte %q", ErrMalformedGFA, fields[2]))
	}
	to, ok := OrientationFromByte(orientByte(fields[4]))
	if !ok {
		return r.fail(fmt.Errorf("%w: unknown orientation byte %q", ErrMalformedGFA, fields[4]))
	}

	return Link{From: fields[1], FromOrient: fo, To: fields[3], ToOrient: to}, nil
}

func orientByte(field string) byte {
	if field == "" {
		return 0
	}

	return field[0]
}

func (r *Reader) parsePath(line string) (any, error) {
	fields := strings.SplitN(line, "\t", 4)
	if len(fields) < 3 {
		return r.fail(fmt.Errorf("%w: P record requires name and segment list", ErrMalformedGFA))
	}

	return PathRecord{Name: fields[1], Body: fields[2]}, nil
}

func (r *Reader) parseWalk(line string) (any, error) {
	fields := strings.SplitN(line, "\t", 8)
	if len(fields) < 7 {
		return r.fail(fmt.Errorf("%w: W record requires sample,hap,seqid,start,end,walk", ErrMalformedGFA))
	}
	start, serr := strconv.Atoi(fields[4])
	end, eerr := strconv.Atoi(fields[5])
	hasRange := serr == nil && eerr == nil

	return WalkRecord{
		Sample:   fields[1],
		Hap:      fields[2],
		SeqID:    fields[3],
		Start:    start,
		End:      end,
		HasRange: hasRange,
		Body:     fields[6],
	}, nil
}
