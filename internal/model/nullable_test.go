package model

import "testing"

func TestNullableStates(t *testing.T) {
	var absent Nullable[string]
	if absent.IsSet() || absent.IsNull() {
		t.Fatalf("zero value should be unset, got set=%v null=%v", absent.IsSet(), absent.IsNull())
	}
	if absent.Ptr() != nil {
		t.Fatalf("unset slot should have nil Ptr")
	}

	null := Null[string]()
	if !null.IsSet() || !null.IsNull() {
		t.Fatalf("Null should be set and null")
	}

	v := Value("groceries")
	if !v.IsSet() || v.IsNull() {
		t.Fatalf("Value should be set and not null")
	}
	got, ok := v.Get()
	if !ok || got != "groceries" {
		t.Fatalf("expected groceries, got %q (ok=%v)", got, ok)
	}

	// Value("") is still an explicit value, not a clear.
	empty := Value("")
	if empty.IsNull() || empty.Ptr() == nil {
		t.Fatalf("empty string value must not collapse into null")
	}
}

func TestFromPtr(t *testing.T) {
	if n := FromPtr[int64](nil); !n.IsNull() {
		t.Fatalf("nil pointer should map to Null")
	}
	id := int64(7)
	n := FromPtr(&id)
	if got, ok := n.Get(); !ok || got != 7 {
		t.Fatalf("expected 7, got %d (ok=%v)", got, ok)
	}
	id = 8
	if got, _ := n.Get(); got != 7 {
		t.Fatalf("FromPtr must copy the value, got %d", got)
	}
}
