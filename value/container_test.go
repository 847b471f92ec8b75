package value

import (
	"errors"
	"testing"

	"github.com/dshills/strand/buffer"
	"github.com/dshills/strand/char"
)

func TestItem(t *testing.T) {
	s := FromText("abc")

	tests := []struct {
		name string
		key  any
		want string
	}{
		{"int key", 1, "b"},
		{"int64 key", int64(2), "c"},
		{"numeric string key", "0", "a"},
		{"out of range reads empty", 10, ""},
		{"negative reads empty", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Item(tt.key)
			if err != nil {
				t.Fatalf("Item(%v): %v", tt.key, err)
			}
			if got.String() != tt.want {
				t.Errorf("Item(%v) = %q, want %q", tt.key, got.String(), tt.want)
			}
		})
	}
}

func TestItemInvalidKey(t *testing.T) {
	s := FromText("abc")
	for _, key := range []any{"12abc", "x", true, 1.5} {
		if _, err := s.Item(key); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Item(%v) error = %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestSetItem(t *testing.T) {
	s := FromText("abc")
	if err := s.SetItem(1, char.FromByte(0xFF)); err != nil {
		t.Fatalf("SetItem: %v", err)
	}

	c, err := s.CharAt(1)
	if err != nil {
		t.Fatalf("CharAt: %v", err)
	}
	if !c.IsBinary() {
		t.Error("CharAt(1).IsBinary() = false, want true")
	}

	// String-keyed write.
	if err := s.SetItem("0", char.FromRune('X')); err != nil {
		t.Fatalf("SetItem: %v", err)
	}
	c, _ = s.CharAt(0)
	if c.Rune() != 'X' {
		t.Errorf("CharAt(0).Rune() = %q, want %q", c.Rune(), 'X')
	}

	// Negative-index writes are discarded, not errors.
	if err := s.SetItem(-3, char.FromRune('Z')); err != nil {
		t.Fatalf("SetItem(-3): %v", err)
	}
	if got := s.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestSetItemValue(t *testing.T) {
	s := FromText("ab")
	if err := s.SetItemValue(0, 65, stubConverter{}); err != nil {
		t.Fatalf("SetItemValue: %v", err)
	}
	c, _ := s.CharAt(0)
	if !c.IsByte() || c.Byte() != 65 {
		t.Errorf("CharAt(0) = %v %d, want byte 65", c.IsByte(), c.Byte())
	}
}

func TestStructuralOpsUnsupported(t *testing.T) {
	s := FromText("abc")

	if err := s.InsertItem(1, FromText("x")); !errors.Is(err, buffer.ErrUnsupported) {
		t.Errorf("InsertItem error = %v, want ErrUnsupported", err)
	}
	if err := s.RemoveItem(1); !errors.Is(err, buffer.ErrUnsupported) {
		t.Errorf("RemoveItem error = %v, want ErrUnsupported", err)
	}
	if _, err := s.ItemAlias(1); !errors.Is(err, buffer.ErrUnsupported) {
		t.Errorf("ItemAlias error = %v, want ErrUnsupported", err)
	}
	if err := s.PushItem(FromText("x")); !errors.Is(err, buffer.ErrUnsupported) {
		t.Errorf("PushItem error = %v, want ErrUnsupported", err)
	}
}
