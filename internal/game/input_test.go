package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    int
		wantErr error
	}{
		{input: "10", want: 10},
		{input: " 25 ", want: 25},
		{input: "$50", want: 50},
		{input: "abc", wantErr: ErrInvalidBet},
		{input: "", wantErr: ErrInvalidBet},
		{input: "0", wantErr: ErrInvalidBet},
		{input: "-5", wantErr: ErrInvalidBet},
		{input: "2.5", wantErr: ErrInvalidBet},
		{input: "q", wantErr: ErrQuit},
		{input: "QUIT", wantErr: ErrQuit},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBet(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAction(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"h", "H", "hit", " Hit "} {
		a, err := ParseAction(in)
		require.NoError(t, err)
		assert.Equal(t, Hit, a, in)
	}
	for _, in := range []string{"s", "S", "stand"} {
		a, err := ParseAction(in)
		require.NoError(t, err)
		assert.Equal(t, Stand, a, in)
	}
	for _, in := range []string{"", "x", "double", "q"} {
		_, err := ParseAction(in)
		assert.ErrorIs(t, err, ErrInvalidAction, in)
	}
}

func TestBetPrompt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Enter your bet amount ($100 available): ", BetPrompt(100))
}
