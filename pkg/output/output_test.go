package output

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/sathishrouthu/blog-cli/pkg/config"
)

func initTestConfig(t *testing.T) {
	t.Helper()
	if err := config.Init(filepath.Join(t.TempDir(), "config.toml")); err != nil {
		t.Fatalf("config.Init failed: %v", err)
	}
}

// TestGetOutputFormat maps config values onto formats
func TestGetOutputFormat(t *testing.T) {
	initTestConfig(t)

	testCases := []struct {
		value  string
		expect OutputFormat
	}{
		{"json", FormatJSON},
		{"table", FormatTable},
		{"text", FormatText},
		{"bogus", FormatText},
	}

	for _, tc := range testCases {
		config.SetString("output.format", tc.value)
		if got := GetOutputFormat(); got != tc.expect {
			t.Errorf("format %q: expected %s, got %s", tc.value, tc.expect, got)
		}
	}
}

// TestValidateOutputFormat
func TestValidateOutputFormat(t *testing.T) {
	for _, valid := range []string{"json", "table", "text"} {
		if !ValidateOutputFormat(valid) {
			t.Errorf("expected %q to be valid", valid)
		}
	}
	for _, invalid := range []string{"", "xml", "yaml"} {
		if ValidateOutputFormat(invalid) {
			t.Errorf("expected %q to be invalid", invalid)
		}
	}
}

// TestFormatAsJSON produces compact output
func TestFormatAsJSON(t *testing.T) {
	got, err := FormatAsJSON(map[string]int{"likes": 3})
	if err != nil {
		t.Fatalf("FormatAsJSON failed: %v", err)
	}
	if got != `{"likes":3}` {
		t.Errorf("unexpected JSON: %s", got)
	}
}

// TestFormatAsPrettyJSON indents output
func TestFormatAsPrettyJSON(t *testing.T) {
	got, err := FormatAsPrettyJSON(map[string]int{"likes": 3})
	if err != nil {
		t.Fatalf("FormatAsPrettyJSON failed: %v", err)
	}
	if !strings.Contains(got, "  \"likes\": 3") {
		t.Errorf("expected indented output, got %s", got)
	}
}
