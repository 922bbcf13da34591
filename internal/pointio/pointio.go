// Package pointio reads and writes planar point files.
//
// A point file holds one point per line as whitespace-separated "x y"
// coordinates; an optional third column is ignored. Blank lines and lines
// starting with '#' are skipped. Files ending in .zst or .lz4 are compressed
// transparently.
package pointio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hupe1980/kcluster/geom"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the stream codec of a point file.
type Compression int

const (
	None Compression = iota
	Zstd
	LZ4
)

func (c Compression) String() string {
	switch c {
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return "none"
	}
}

// CompressionFromPath derives the codec from the file extension.
func CompressionFromPath(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return None
	}
}

// ErrNoPoints is returned by Read when the input holds no points.
var ErrNoPoints = errors.New("pointio: no points")

// ParseError reports a malformed line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pointio: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	errColumns   = errors.New("expected 2 or 3 columns")
	errNonFinite = errors.New("coordinate is not finite")
)

// Read parses points from r.
func Read(r io.Reader) ([]geom.Point, error) {
	var points []geom.Point

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		p, err := parseLine(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	return points, nil
}

func parseLine(text string) (geom.Point, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 || len(fields) > 3 {
		return geom.Point{}, errColumns
	}

	// A third column is accepted for (x, y, z) exports but ignored: points
	// are planar and Z stays zero.
	var coords [2]float64
	for i, f := range fields[:2] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geom.Point{}, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return geom.Point{}, errNonFinite
		}
		coords[i] = v
	}
	return geom.Pt(coords[0], coords[1]), nil
}

// Write encodes points to w, one "x y" line each. Coordinates are written in
// the shortest form that parses back to the same value.
func Write(w io.Writer, points []geom.Point) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for _, p := range points {
		buf = strconv.AppendFloat(buf[:0], p.X, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.Y, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// NewReader wraps r with the decompressor for c.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("pointio: zstd reader: %w", err)
		}
		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// NewWriter wraps w with the compressor for c. Close flushes the codec but
// does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case Zstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("pointio: zstd writer: %w", err)
		}
		return enc, nil
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// ReadFile reads a point file, decompressing by extension.
func ReadFile(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := NewReader(f, CompressionFromPath(path))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	points, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return points, nil
}

// WriteFile writes a point file, compressing by extension.
func WriteFile(path string, points []geom.Point) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w, err := NewWriter(f, CompressionFromPath(path))
	if err != nil {
		return err
	}
	if err := Write(w, points); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
