package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSponsorType(t *testing.T) {
	tests := []struct {
		in      string
		want    SponsorType
		wantErr bool
	}{
		{"PLATINE", SponsorPlatine, false},
		{"GOLD", SponsorGold, false},
		{"silver", SponsorSilver, false},
		{" Bronze\n", SponsorBronze, false},
		{"PLATINUM", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSponsorType(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownSponsorType)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
