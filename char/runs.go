package char

import (
	"strings"

	"github.com/dshills/strand/codec"
)

// DecodeRuns converts a hybrid sequence to text. Maximal runs of
// consecutive raw bytes are decoded as one batch through the codec so
// multi-byte encoded units are never split; code-point runs are copied
// through unchanged. Element order is preserved.
func DecodeRuns(chars []Char, cd codec.Codec) string {
	var sb strings.Builder
	sb.Grow(len(chars))

	for i := 0; i < len(chars); {
		if chars[i].IsByte() {
			j := i
			for j < len(chars) && chars[j].IsByte() {
				j++
			}
			run := make([]byte, j-i)
			for k := i; k < j; k++ {
				run[k-i] = chars[k].Byte()
			}
			sb.WriteString(cd.Decode(run))
			i = j
			continue
		}
		for i < len(chars) && chars[i].IsRune() {
			sb.WriteRune(chars[i].Rune())
			i++
		}
	}

	return sb.String()
}

// EncodeRuns converts a hybrid sequence to raw bytes. Maximal runs of
// code points are encoded as one batch through the codec; byte runs are
// copied through unchanged. Element order is preserved.
func EncodeRuns(chars []Char, cd codec.Codec) []byte {
	out := make([]byte, 0, len(chars))

	for i := 0; i < len(chars); {
		if chars[i].IsByte() {
			for i < len(chars) && chars[i].IsByte() {
				out = append(out, chars[i].Byte())
				i++
			}
			continue
		}
		j := i
		var sb strings.Builder
		for j < len(chars) && chars[j].IsRune() {
			sb.WriteRune(chars[j].Rune())
			j++
		}
		out = append(out, cd.Encode(sb.String())...)
		i = j
	}

	return out
}
