package safety

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"plain file name", "report.txt", nil},
		{"folder name", "node_modules", nil},
		{"dot file", ".gitignore", nil},
		{"spaces allowed", "My Documents", nil},
		{"unicode allowed", "résumé.pdf", nil},
		{"empty", "", ErrEmptyName},
		{"too long", strings.Repeat("a", 256), ErrNameTooLong},
		{"exactly 255 is fine", strings.Repeat("a", 255), nil},
		{"path separator", "a/b", ErrReservedChar},
		{"backslash", `a\b`, ErrReservedChar},
		{"colon", "c:", ErrReservedChar},
		{"wildcard star", "*.tmp", ErrReservedChar},
		{"wildcard question mark", "file?", ErrReservedChar},
		{"angle brackets", "<name>", ErrReservedChar},
		{"pipe", "a|b", ErrReservedChar},
		{"quote", `say "hi"`, ErrReservedChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateNameCountsCharactersNotBytes(t *testing.T) {
	// 255 multi-byte runes are 255 characters, not over the limit.
	name := strings.Repeat("é", 255)
	assert.NoError(t, ValidateName(name))
}
