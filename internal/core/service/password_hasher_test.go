package service

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if digest == "s3cret-pass" || !strings.HasPrefix(digest, "$2") {
		t.Fatalf("digest does not look like bcrypt: %q", digest)
	}
	if !h.Verify("s3cret-pass", digest) {
		t.Fatalf("correct password did not verify")
	}
	if h.Verify("wrong-pass", digest) {
		t.Fatalf("wrong password verified")
	}
}

func TestBcryptHasher_SaltedDigestsDiffer(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password are identical; salt missing")
	}
}

func TestBcryptHasher_VerifiesOlderCost(t *testing.T) {
	low := NewBcryptHasher(bcrypt.MinCost)
	digest, err := low.Hash("migrate-me")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	// Raising the configured cost must not invalidate existing digests.
	high := NewBcryptHasher(bcrypt.MinCost + 2)
	if !high.Verify("migrate-me", digest) {
		t.Fatalf("digest hashed at lower cost no longer verifies")
	}
}

func TestNewBcryptHasher_ClampsInvalidCost(t *testing.T) {
	h := NewBcryptHasher(99)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", h.cost)
	}
}
