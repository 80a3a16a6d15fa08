package validation

import "testing"

func TestHabitName(t *testing.T) {
	cases := []struct {
		name    string
		wantErr bool
	}{
		{"Read", false},
		{"morning run", false},
		{"", true},
		{"   ", true},
		{"\t", true},
	}
	for _, tc := range cases {
		err := HabitName(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("HabitName(%q) = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestUID(t *testing.T) {
	cases := []struct {
		uid     string
		wantErr bool
	}{
		{"alice", false},
		{"alice-99", false},
		{"", true},
		{"  ", true},
		{"al ice", true},
		{"al\tice", true},
	}
	for _, tc := range cases {
		err := UID(tc.uid)
		if (err != nil) != tc.wantErr {
			t.Errorf("UID(%q) = %v, wantErr %v", tc.uid, err, tc.wantErr)
		}
	}
}

func TestPassword(t *testing.T) {
	if err := Password("hunter2"); err != nil {
		t.Errorf("Password(non-empty) = %v, want nil", err)
	}
	if err := Password(""); err == nil {
		t.Error("Password(empty) = nil, want error")
	}
}

func TestDate(t *testing.T) {
	cases := []struct {
		date    string
		wantErr bool
	}{
		{"2025-03-31", false},
		{"2025-01-01", false},
		{"31/03/2025", true},
		{"2025-3-31", true},
		{"2025-02-30", true},
		{"yesterday", true},
		{"", true},
	}
	for _, tc := range cases {
		err := Date(tc.date)
		if (err != nil) != tc.wantErr {
			t.Errorf("Date(%q) = %v, wantErr %v", tc.date, err, tc.wantErr)
		}
	}
}

func TestMonth(t *testing.T) {
	for _, m := range []int{0, 1, 6, 12} {
		if err := Month(m); err != nil {
			t.Errorf("Month(%d) = %v, want nil", m, err)
		}
	}
	for _, m := range []int{-1, 13, 99} {
		if err := Month(m); err == nil {
			t.Errorf("Month(%d) = nil, want error", m)
		}
	}
}
