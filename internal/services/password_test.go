package services

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := hashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatalf("hash must not equal the plain password")
	}

	if !checkPassword(hash, "s3cret-pass") {
		t.Fatalf("expected matching password to verify")
	}
	if checkPassword(hash, "wrong-pass") {
		t.Fatalf("expected mismatched password to fail")
	}
}

func TestPasswordHashesAreSalted(t *testing.T) {
	first, err := hashPassword("same-password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	second, err := hashPassword("same-password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct salts to produce distinct hashes")
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	if checkPassword("not-a-bcrypt-hash", "anything") {
		t.Fatalf("expected malformed hash to verify as false")
	}
	if checkPassword("", "anything") {
		t.Fatalf("expected empty hash to verify as false")
	}
}
