package branding

import "testing"

func TestAppName(t *testing.T) {
	if AppName != "UR List" {
		t.Fatalf("AppName = %q, want %q", AppName, "UR List")
	}
}

func TestPageTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: AppName},
		{in: AppName, want: AppName},
		{in: "Error 404", want: "Error 404 | " + AppName},
	}
	for _, tt := range tests {
		if got := PageTitle(tt.in); got != tt.want {
			t.Fatalf("PageTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
