package buffer

import (
	"bytes"
	"testing"

	"github.com/dshills/strand/char"
	"github.com/dshills/strand/codec"
)

func TestShareIsCheap(t *testing.T) {
	a := FromText("shared")
	b := a.Share()

	if a != b {
		t.Error("Share() should return the same buffer")
	}
	if a.Shares() != 2 {
		t.Errorf("Shares() = %d, want 2", a.Shares())
	}
}

func TestExclusiveSingleOwnerIsSelf(t *testing.T) {
	a := FromText("solo")
	if a.Exclusive() != a {
		t.Error("Exclusive() on a single-owner buffer should return self")
	}
	if a.Shares() != 1 {
		t.Errorf("Shares() = %d, want 1", a.Shares())
	}
}

func TestExclusiveIsolation(t *testing.T) {
	a := New()
	a.AppendText("he")
	a.AppendBytes([]byte{0xEE})
	a.AppendText("lo")

	b := a.Share()
	b = b.Exclusive()

	if a == b {
		t.Fatal("Exclusive() on a shared buffer should return a clone")
	}
	if a.Shares() != 1 {
		t.Errorf("original Shares() = %d, want 1", a.Shares())
	}
	if b.Shares() != 1 {
		t.Errorf("clone Shares() = %d, want 1", b.Shares())
	}

	before := a.Bytes(codec.UTF8)

	// Mutate the clone in every chunk kind.
	b.Set(0, char.FromByte(0x41))
	b.Set(2, char.FromByte(0x42))
	b.Set(4, char.FromRune('X'))

	if got := a.Bytes(codec.UTF8); !bytes.Equal(got, before) {
		t.Errorf("original changed: %v, want %v", got, before)
	}

	c, err := a.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	if c.IsByte() || c.Rune() != 'h' {
		t.Errorf("original Get(0) = %v %q, want rune h", c.IsByte(), c.Rune())
	}
}

func TestExclusiveIsolationReverse(t *testing.T) {
	a := New()
	a.AppendBytes([]byte{1, 2})
	a.AppendText("xy")

	b := a.Share()

	// Mutating through the original side must not be visible in b
	// after b breaks the share.
	bx := b.Exclusive()
	a2 := a.Exclusive()
	a2.Set(0, char.FromByte(9))

	want := []byte{1, 2, 'x', 'y'}
	if got := bx.Bytes(codec.UTF8); !bytes.Equal(got, want) {
		t.Errorf("clone changed: %v, want %v", got, want)
	}
}

func TestExclusiveSharesNestedNotFlattens(t *testing.T) {
	inner := New()
	inner.AppendText("ab")
	inner.AppendText("cd")

	a := FromText("x")
	a.AppendBuffer(inner)

	b := a.Share().Exclusive()

	// The clone re-shares the nested buffer rather than deep-copying
	// its content.
	if inner.Shares() != 3 {
		t.Errorf("inner Shares() = %d, want 3 (inner, a, clone)", inner.Shares())
	}
	if got := b.Text(codec.UTF8); got != "xabcd" {
		t.Errorf("clone Text() = %q, want %q", got, "xabcd")
	}
}

func TestReleaseDropsNested(t *testing.T) {
	inner := New()
	inner.AppendText("ab")
	inner.AppendText("cd")

	a := FromText("x")
	a.AppendBuffer(inner)

	a.Release()

	if inner.Shares() != 1 {
		t.Errorf("inner Shares() = %d, want 1 after release", inner.Shares())
	}
	if !a.IsEmpty() {
		t.Error("released buffer should drop its chunks")
	}
}

func TestValueSemanticScenario(t *testing.T) {
	// Assignment shares; mutation copies; neither side observes the
	// other.
	a := FromText("hello")
	b := a.Share()

	mutable := b.Exclusive()
	mutable.Set(0, char.FromByte(0x41))

	if got := a.Text(codec.UTF8); got != "hello" {
		t.Errorf("a.Text() = %q, want %q", got, "hello")
	}
	if got := mutable.Text(codec.UTF8); got != "Aello" {
		t.Errorf("b.Text() = %q, want %q", got, "Aello")
	}
}
