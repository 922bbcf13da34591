package pointio

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/kcluster/geom"
	"github.com/hupe1980/kcluster/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	input := `# two blobs
0 0
0.5   1.25

-3e2 4
1 2 9
`
	points, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{
		geom.Pt(0, 0),
		geom.Pt(0.5, 1.25),
		geom.Pt(-300, 4),
		geom.Pt(1, 2),
	}, points)
	assert.Zero(t, points[3].Z, "third column is ignored")
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"OneColumn", "1 2\n3\n", 2},
		{"FourColumns", "1 2 3 4\n", 1},
		{"NotANumber", "# header\n1 x\n", 2},
		{"NaN", "9 0\n0 0\nNaN 0\n", 3},
		{"Inf", "1 +Inf\n", 1},
		{"NegativeInf", "0 0\n-inf 1 0\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.line, pe.Line)
		})
	}

	_, err := Read(strings.NewReader("# nothing\n\n"))
	assert.ErrorIs(t, err, ErrNoPoints)

	_, err = Read(strings.NewReader("0 0\n1 0\nnan 0\n100 0\n"))
	assert.ErrorIs(t, err, errNonFinite)
}

func TestWriteRead(t *testing.T) {
	points := testutil.NewRNG(1).UniformRangePoints(100, -1e3, 1e3)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, points))

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, points, got, "shortest float formatting is lossless")
}

func TestCompressionFromPath(t *testing.T) {
	assert.Equal(t, None, CompressionFromPath("points.txt"))
	assert.Equal(t, Zstd, CompressionFromPath("points.txt.zst"))
	assert.Equal(t, Zstd, CompressionFromPath("POINTS.ZSTD"))
	assert.Equal(t, LZ4, CompressionFromPath("points.lz4"))
	assert.Equal(t, "lz4", LZ4.String())
}

func TestFileCodecs(t *testing.T) {
	points := testutil.NewRNG(2).Blobs(500, []geom.Point{geom.Pt(0, 0), geom.Pt(5, 5)}, 0.5)
	dir := t.TempDir()

	for _, name := range []string{"points.txt", "points.txt.zst", "points.txt.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, WriteFile(path, points))

			got, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, points, got)
		})
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
