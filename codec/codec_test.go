package codec

import (
	"bytes"
	"io"
	"testing"

	"github.com/clusty-go/clusty/format"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("A\tB\t0.123\n"), 1000)

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionGzip,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			var buf bytes.Buffer

			w, err := NewWriter(&buf, ct)
			require.NoError(t, err)
			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := OpenReader(&buf, ct)
			require.NoError(t, err)
			defer r.Close()

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, payload, got)
		})
	}
}

func TestDetectByExtension(t *testing.T) {
	cases := map[string]format.CompressionType{
		"distances.txt":    format.CompressionNone,
		"distances.tsv.gz": format.CompressionGzip,
		"distances.zst":    format.CompressionZstd,
		"distances.s2":     format.CompressionS2,
		"distances.lz4":    format.CompressionLZ4,
	}
	for path, want := range cases {
		require.Equal(t, want, DetectByExtension(path), path)
	}
}
