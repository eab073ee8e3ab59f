package ledger

import (
	"testing"

	"github.com/sheikh-saqib/branch-ledger/internal/xerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	valid := map[string]string{
		"100":              "100",
		" 150.5 ":          "150.5",
		"150,50":           "150.5",
		"-20":              "-20",
		"0":                "0",
		"0.000001":         "0.000001",
		"1e2":              "100",
		"2.5E-3":           "0.0025",
		"9999999999999.99": "9999999999999.99",
	}
	for in, want := range valid {
		got, err := ParseAmount(in)
		require.NoError(t, err, in)
		assert.True(t, got.Equal(dec(want)), "%q parsed as %s", in, got)
	}

	for _, in := range []string{
		"", "abc", "1.000,50", "12a", "1,2,3", "R$ 10",
		"1e-2000000000", "1e2000000000", "-1e-2000000000",
		"0.000000001", "10000000000000", "1e13",
	} {
		_, err := ParseAmount(in)
		assert.ErrorIs(t, err, xerrors.ErrInvalidAmountFormat, in)
	}
}
