package models

import "testing"

func TestOwnedBy(t *testing.T) {
	t.Parallel()

	owner := uint(7)
	owned := Diploma{UserID: &owner}
	if !owned.OwnedBy(7) {
		t.Fatal("expected diploma to be owned by user 7")
	}
	if owned.OwnedBy(8) {
		t.Fatal("diploma must not be owned by a different user")
	}

	guest := Diploma{}
	if guest.OwnedBy(7) {
		t.Fatal("guest diplomas belong to nobody")
	}
}
