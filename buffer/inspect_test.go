package buffer

import (
	"fmt"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/strand/char"
)

func TestInspectEmpty(t *testing.T) {
	out := New().Inspect()
	if !gjson.Valid(out) {
		t.Fatalf("Inspect() is not valid JSON: %s", out)
	}
	if got := gjson.Get(out, "length").Int(); got != 0 {
		t.Errorf("length = %d, want 0", got)
	}
	if got := gjson.Get(out, "chunks.#").Int(); got != 0 {
		t.Errorf("chunks.# = %d, want 0", got)
	}
}

func TestInspectStructure(t *testing.T) {
	inner := New()
	inner.AppendText("cd")
	inner.AppendText("ef")

	b := New()
	b.AppendText("ab")
	b.AppendBytes([]byte{0xFF})
	b.Set(0, char.FromByte(0x41)) // promotes the text chunk
	b.AppendBuffer(inner)

	out := b.Inspect()
	if !gjson.Valid(out) {
		t.Fatalf("Inspect() is not valid JSON: %s", out)
	}

	if got := gjson.Get(out, "chunks.#").Int(); got != 3 {
		t.Fatalf("chunks.# = %d, want 3", got)
	}

	wantKinds := []string{"hybrid", "bytes", "nested"}
	for i, want := range wantKinds {
		if got := gjson.Get(out, fmt.Sprintf("chunks.%d.kind", i)).String(); got != want {
			t.Errorf("chunks.%d.kind = %q, want %q", i, got, want)
		}
	}

	if !gjson.Get(out, "binary").Bool() {
		t.Error("binary = false, want true")
	}
	if !gjson.Get(out, "mutable").Bool() {
		t.Error("mutable = false, want true")
	}
	if got := gjson.Get(out, "chunks.2.buffer.shares").Int(); got != 2 {
		t.Errorf("nested shares = %d, want 2", got)
	}
	if got := gjson.Get(out, "chunks.2.buffer.chunks.#").Int(); got != 2 {
		t.Errorf("nested chunks.# = %d, want 2", got)
	}
}
