package workorder_test

import (
	"testing"

	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumber(t *testing.T) {
	tests := []struct {
		seq  int64
		want string
	}{
		{1, "N-0001"},
		{42, "N-0042"},
		{9999, "N-9999"},
		{10000, "N-10000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			n, err := workorder.NewNumber(tt.seq)

			require.NoError(t, err)
			assert.Equal(t, tt.want, n.String())
			assert.Equal(t, tt.seq, n.Seq())
		})
	}

	t.Run("should reject non positive sequence", func(t *testing.T) {
		_, err := workorder.NewNumber(0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseNumber(t *testing.T) {
	n, err := workorder.ParseNumber("N-0007")
	require.NoError(t, err)
	assert.Equal(t, int64(7), n.Seq())

	for _, bad := range []string{"", "0007", "N-7", "N-00x7", "M-0007"} {
		_, err = workorder.ParseNumber(bad)
		require.Error(t, err, bad)
	}
}

func TestNumber_ZeroValue(t *testing.T) {
	var n workorder.Number
	require.ErrorIs(t, n.Validate(), workorder.ErrNumberIsNotConstructed)
}
