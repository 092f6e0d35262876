package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"ChildOne", []string{"ChildOne"}},
		{"Child one", []string{"Child", "one"}},
		{"2nd place", []string{"2", "nd", "place"}},
		{"Price (USD)", []string{"Price", "USD"}},
		{"Item2Name", []string{"Item2Name"}},
		{"٣ items", []string{"٣", "items"}},
		{"snake_case label", []string{"snake_case", "label"}},
		{"Größe / Gewicht", []string{"Größe", "Gewicht"}},
		{"  -- ", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestClassName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ChildOne", "ChildOne"},
		{"Child one", "ChildOne"},
		{"child one", "ChildOne"},
		{"Parent", "Parent"},
		{"2 wheels", "TwoWheels"},
		{"2024 total", "Two024Total"},
		{"Total 2024", "Total2024"},
		{"٣ items", "ThreeItems"},
		{"२०२४ total", "Two०२४Total"},
		{"７ days", "SevenDays"},
		{"e-mail address", "EMailAddress"},
		{"Price (USD)", "PriceUSD"},
		{"größe", "Größe"},
		{"???", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassName(tt.input))
		})
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ChildOne", "child_one"},
		{"ChildTwo", "child_two"},
		{"Parent", "parent"},
		{"HTTPServer", "http_server"},
		{"PriceUSD", "price_usd"},
		{"Item2Name", "item2_name"},
		{"Two024Total", "two024_total"},
		{"Total2024", "total2024"},
		{"Mapper", "mapper"},
		{"ID", "id"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SnakeCase(tt.input))
		})
	}
}

func TestNormalizeLabel(t *testing.T) {
	assert.Equal(t, "childone", NormalizeLabel("Child  One"))
	assert.Equal(t, "priceusd", NormalizeLabel("Price (USD)"))
	assert.Equal(t, "", NormalizeLabel(" - "))
}
