package buffer

import (
	"io"

	"github.com/dshills/strand/char"
	"github.com/dshills/strand/codec"
)

// Sink receives buffer content in order, one run at a time. Text and
// raw bytes are dispatched separately so a sink can stream each in its
// natural representation.
type Sink interface {
	WriteText(s string) error
	WriteBytes(p []byte) error
}

// Output walks the chunks in order and dispatches each to the sink
// without building an intermediate flattened copy. Hybrid chunks are
// split into maximal byte and code-point runs; nested buffers recurse.
func (b *Buffer) Output(s Sink, cd codec.Codec) error {
	for _, c := range b.chunks {
		if err := outputChunk(s, c, cd); err != nil {
			return err
		}
	}
	return nil
}

func outputChunk(s Sink, c chunk, cd codec.Codec) error {
	switch c := c.(type) {
	case textChunk:
		return s.WriteText(c.data)
	case bytesChunk:
		return s.WriteBytes(c.data)
	case hybridChunk:
		return outputHybrid(s, c.data)
	case nestedChunk:
		return c.buf.Output(s, cd)
	default:
		panic(ErrUnsupportedChunk)
	}
}

func outputHybrid(s Sink, chars []char.Char) error {
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
			if err := s.WriteBytes(run); err != nil {
				return err
			}
			i = j
			continue
		}
		j := i
		var runes []rune
		for j < len(chars) && chars[j].IsRune() {
			runes = append(runes, chars[j].Rune())
			j++
		}
		if err := s.WriteText(string(runes)); err != nil {
			return err
		}
		i = j
	}
	return nil
}

// WriterSink adapts an io.Writer as a Sink. Text is encoded through the
// codec; raw bytes pass through unchanged.
type WriterSink struct {
	W     io.Writer
	Codec codec.Codec
}

func (ws WriterSink) WriteText(s string) error {
	_, err := ws.W.Write(ws.Codec.Encode(s))
	return err
}

func (ws WriterSink) WriteBytes(p []byte) error {
	_, err := ws.W.Write(p)
	return err
}
