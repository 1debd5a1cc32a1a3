package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeIdentity(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		want     string
	}{
		{
			name:     "replaces at sign and dots",
			identity: "trader@example.com",
			want:     "trader_example_com",
		},
		{
			name:     "truncates to worksheet name limit",
			identity: "averyverylongemailaddress@example.com",
			want:     "averyverylongemailaddress_examp",
		},
		{
			name:     "plain token passes through",
			identity: "trader_example_com",
			want:     "trader_example_com",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeIdentity(tt.identity)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), worksheetNameLimit)
		})
	}
}

func TestSanitizeIdentity_Idempotent(t *testing.T) {
	identities := []string{
		"trader@example.com",
		"averyverylongemailaddress@example.com",
		"a.b.c@d.e",
	}
	for _, identity := range identities {
		once := SanitizeIdentity(identity)
		assert.Equal(t, once, SanitizeIdentity(once), "sanitizing a sanitized identity must be a no-op")
	}
}
