package model

import "testing"

func TestIsUsable(t *testing.T) {
	cases := []struct {
		name   string
		role   string
		status string
		want   bool
	}{
		{"siswa approved", "SISWA", RegistrationApproved, true},
		{"siswa pending", "SISWA", RegistrationPending, false},
		{"siswa rejected", "SISWA", RegistrationRejected, false},
		{"admin tanpa approval", "ADMIN", RegistrationApproved, true},
		{"katering tanpa approval", "KATERING", RegistrationPending, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := UserModel{Role: tc.role, RegistrationStatus: tc.status}
			if got := u.IsUsable(); got != tc.want {
				t.Errorf("IsUsable() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNeedsApproval(t *testing.T) {
	for role, want := range map[string]bool{
		"SISWA":       true,
		"ADMIN":       false,
		"MASTERADMIN": false,
		"SEKOLAH":     false,
		"KATERING":    false,
		"DINKES":      false,
	} {
		u := UserModel{Role: role}
		if got := u.NeedsApproval(); got != want {
			t.Errorf("NeedsApproval(%s) = %v, want %v", role, got, want)
		}
	}
}
