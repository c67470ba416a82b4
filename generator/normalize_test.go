package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  DateParts
	}{
		{
			name:  "plain date",
			input: "2024-03-05",
			want:  DateParts{Day: "05", Month: "03", Year: "2024"},
		},
		{
			name:  "timestamp keeps its own calendar date",
			input: "2024-03-05T23:30:00-06:00",
			want:  DateParts{Day: "05", Month: "03", Year: "2024"},
		},
		{
			name:  "empty input",
			input: "",
			want:  DateParts{},
		},
		{
			name:  "garbage input",
			input: "no es fecha",
			want:  DateParts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitDate(tt.input))
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2024-01-02", NormalizeDate("2024-01-02"))
	assert.Equal(t, "2024-01-02", NormalizeDate(" 2024-01-02 "))
	assert.Equal(t, "2024-01-02", NormalizeDate("2024-01-02T10:00:00Z"))
	assert.Equal(t, "2024-01-02", NormalizeDate("02/01/2024"))
	assert.Equal(t, "", NormalizeDate("2024-13-45"))
	assert.Equal(t, "", NormalizeDate(""))
}

func TestNormalizeInstant(t *testing.T) {
	assert.Equal(t, "2024-01-02T00:00:00Z", NormalizeInstant("2024-01-02"))
	assert.Equal(t, "2024-01-02T16:30:00Z", NormalizeInstant("2024-01-02T10:30:00-06:00"))
	assert.Equal(t, "", NormalizeInstant("nope"))
	assert.Equal(t, "", NormalizeInstant(""))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"diacritics stripped", "José Martínez Ñ.", "Jose_Martinez_N"},
		{"whitespace runs collapse", "a   b\t c", "a_b_c"},
		{"disallowed characters removed", "curso: básico/avanzado", "curso_basicoavanzado"},
		{"empty stays empty", "", ""},
		{"only punctuation yields empty", "¡!¿?", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.input))
		})
	}
}

func TestSanitizeFilenameTruncates(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "abcdefghij"
	}
	got := SanitizeFilename(long)
	assert.Len(t, got, 100)
}

func TestGridValue(t *testing.T) {
	assert.Equal(t, "ABCD1234EFGH567890", GridValue("abcd-1234 efgh.5678-90", 18))
	assert.Equal(t, "AB                ", GridValue("ab", 18))
	assert.Equal(t, "ABCDEFGHIJKLM", GridValue("abcdefghijklmnop", 13))
}

func TestFormatPeriod(t *testing.T) {
	assert.Equal(t, "2024-01-01 / 2024-01-05", FormatPeriod("2024-01-01", "2024-01-05"))
	assert.Equal(t, "2024-01-01", FormatPeriod("2024-01-01", ""))
	assert.Equal(t, "2024-01-05", FormatPeriod("", "2024-01-05"))
	assert.Equal(t, "", FormatPeriod("", ""))
}
