package models

import "testing"

func TestCategoryNormalize(t *testing.T) {
	tests := []struct {
		in   Category
		want Category
	}{
		{CategoryDining, CategoryDining},
		{CategoryIncome, CategoryIncome},
		{Category("espresso-machines"), CategoryOther},
		{Category(""), CategoryOther},
		{CategoryOther, CategoryOther},
	}
	for _, tc := range tests {
		if got := tc.in.Normalize(); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStateClone_IsIndependent(t *testing.T) {
	original := &State{
		Version:       StateVersion,
		Accounts:      []Account{{ID: "a-1", Balance: 100}},
		Bills:         []Bill{{ID: "b-1", IsPaid: false}},
		Notifications: []Notification{{ID: "n-1", Read: false}},
	}

	clone := original.Clone()
	clone.Accounts[0].Balance = 1
	clone.Bills[0].IsPaid = true
	clone.Notifications = clone.Notifications[:0]

	if original.Accounts[0].Balance != 100 {
		t.Error("mutating the clone changed the original account")
	}
	if original.Bills[0].IsPaid {
		t.Error("mutating the clone changed the original bill")
	}
	if len(original.Notifications) != 1 {
		t.Error("truncating the clone changed the original notifications")
	}
}
