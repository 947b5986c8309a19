package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndCompare(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)
	hash, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatalf("hash must not equal the plain password")
	}
	if err := h.Compare(hash, "secret123"); err != nil {
		t.Fatalf("compare matching password: %v", err)
	}
	if err := h.Compare(hash, "wrong"); err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestNewHasher_OutOfRangeCostFallsBack(t *testing.T) {
	t.Parallel()

	if got := NewHasher(1).cost; got != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", got)
	}
}
