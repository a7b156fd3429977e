package infer

import "testing"

func TestAllocator_Canonical(t *testing.T) {
	a := NewAllocator("Root")

	tests := []struct {
		hint string
		want string
	}{
		{"user", "User"},
		{"userID", "UserID"},
		{"created_at", "CreatedAt"},
		{"shipping-address", "ShippingAddress"},
		{"order.line items", "OrderLineItems"},
		{"2fa", "T2fa"},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.hint, func(t *testing.T) {
			if got := a.Canonical(tt.hint); got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.hint, got, tt.want)
			}
		})
	}
}

func TestAllocator_CounterIsMonotonic(t *testing.T) {
	a := NewAllocator("Root")

	want := []string{"Address", "Address1", "Address2", "Address3"}
	for i, w := range want {
		if got := a.Allocate("address"); got != w {
			t.Fatalf("allocation %d: got %q, want %q", i, got, w)
		}
	}
}

func TestAllocator_CounterNeverReused(t *testing.T) {
	a := NewAllocator("Root")
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := a.Allocate("item")
		if seen[name] {
			t.Fatalf("name %q handed out twice", name)
		}
		seen[name] = true
	}
}

func TestAllocator_DistinctBasesIndependent(t *testing.T) {
	a := NewAllocator("Root")

	if got := a.Allocate("user"); got != "User" {
		t.Errorf("got %q", got)
	}
	if got := a.Allocate("address"); got != "Address" {
		t.Errorf("got %q", got)
	}
	if got := a.Allocate("user"); got != "User1" {
		t.Errorf("got %q", got)
	}
}

func TestAllocator_EmptyHintUsesFallback(t *testing.T) {
	a := NewAllocator("Payload")
	if got := a.Allocate(""); got != "Payload" {
		t.Errorf("got %q, want Payload", got)
	}
	if got := a.Allocate("!!!"); got != "Payload1" {
		t.Errorf("got %q, want Payload1", got)
	}
}

func TestAllocator_SuffixCollisionSkipsTakenName(t *testing.T) {
	a := NewAllocator("Root")

	// "Address1" is taken as a bare base before "address" reaches its
	// second occurrence; the counter keeps advancing instead of
	// reusing the taken name.
	if got := a.Allocate("address1"); got != "Address1" {
		t.Fatalf("got %q", got)
	}
	if got := a.Allocate("address"); got != "Address" {
		t.Fatalf("got %q", got)
	}
	if got := a.Allocate("address"); got != "Address2" {
		t.Errorf("got %q, want Address2", got)
	}
}
