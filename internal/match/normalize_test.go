package match

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Identifiers
		{"setDatasource", "setdatasource"},
		{"set_datasource", "setdatasource"},
		{"XMLParser", "xmlparser"},
		{"getHTTPResponse", "gethttpresponse"},
		{"$api", "api"},

		// Module specifiers
		{"lodash", "lodash"},
		{"lodash-es", "lodashes"},
		{"@acme/data-source", "datasource"},
		{"@acme", "acme"},
		{"./api.js", "api"},
		{"../../lib/api.mjs", "libapi"},
		{"react-dom/client", "reactdomclient"},

		// Edge cases
		{"", ""},
		{".js", "js"},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeName(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
