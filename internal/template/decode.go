package template

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// codec identifies how a templateM asset's bytes are framed, per spec §6
// ("files larger than a configured threshold are further compressed with a
// streaming-LZ algorithm and carry a suffix indicating the codec").
type codec int

const (
	codecRaw codec = iota
	codecZstd
)

// readAsset loads the embedded bytes for template length m, trying the
// zstd-suffixed name first (for lengths whose real catalogue would exceed
// compressionThreshold) and falling back to the raw file actually shipped
// in this build.
func readAsset(m int) ([]byte, error) {
	if data, err := assetsFS.ReadFile(fmt.Sprintf("assets/template%d.raw.zst", m)); err == nil {
		return decompressZstd(data)
	}
	return assetsFS.ReadFile(fmt.Sprintf("assets/template%d.raw", m))
}

func decompressZstd(compressed []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("template: constructing zstd decoder: %w", err)
	}
	defer dec.Close()

	out, err := dec.DecodeAll(compressed, nil)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("template: zstd decode failed: %w", err)
	}
	return out, nil
}

// decode unpacks a templateM payload: each m-bit template right-padded to
// byteWidth(m) bytes, big-endian bit order (matching BitSequence),
// concatenated with no separators.
func decode(data []byte, m int) []Template {
	width := byteWidth(m)
	count := len(data) / width
	out := make([]Template, 0, count)

	for i := 0; i < count; i++ {
		chunk := data[i*width : (i+1)*width]
		var v uint32
		for _, b := range chunk {
			v = v<<8 | uint32(b)
		}
		v >>= uint(width*8 - m)
		out = append(out, Template{Value: v, Len: m})
	}
	return out
}

func byteWidth(m int) int { return (m + 7) / 8 }
