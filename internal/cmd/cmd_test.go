package cmd

import "testing"

// TestParseID validates command-line ID parsing
func TestParseID(t *testing.T) {
	testCases := []struct {
		arg     string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"1", 1, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tc := range testCases {
		got, err := parseID(tc.arg, "post")
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseID(%q) expected error", tc.arg)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseID(%q) failed: %v", tc.arg, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseID(%q) = %d, want %d", tc.arg, got, tc.want)
		}
	}
}

// TestCommandTree checks that the top-level commands are registered
func TestCommandTree(t *testing.T) {
	expected := map[string]bool{
		"auth":    false,
		"post":    false,
		"comment": false,
		"profile": false,
		"version": false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := expected[cmd.Name()]; ok {
			expected[cmd.Name()] = true
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}
