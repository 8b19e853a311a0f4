//go:build unit

package money_test

import (
	"testing"

	"maison-storefront/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    money.Cents
		wantErr bool
	}{
		{name: "two fraction digits", input: "49.90", want: 4990},
		{name: "one fraction digit", input: "49.9", want: 4990},
		{name: "no fraction", input: "49", want: 4900},
		{name: "zero", input: "0.00", want: 0},
		{name: "bare fraction", input: ".50", want: 50},
		{name: "negative", input: "-12.34", want: -1234},
		{name: "surrounding whitespace", input: " 7.25 ", want: 725},
		{name: "empty", input: "", wantErr: true},
		{name: "three fraction digits", input: "1.005", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "signed fraction", input: "12.-5", wantErr: true},
		{name: "plus-signed fraction", input: "12.+5", wantErr: true},
		{name: "sign inside whole part", input: "1-2.00", wantErr: true},
		{name: "leading plus", input: "+5.00", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := money.ParseDecimal(c.input)
			if c.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestFromFloat(t *testing.T) {
	assert.Equal(t, money.Cents(1000), money.FromFloat(10.0))
	assert.Equal(t, money.Cents(1999), money.FromFloat(19.99))
	// float noise rounds to the nearest cent
	assert.Equal(t, money.Cents(1000), money.FromFloat(9.999999999))
}

func TestMulRate(t *testing.T) {
	assert.Equal(t, money.Cents(800), money.Cents(10000).MulRate(0.08))
	assert.Equal(t, money.Cents(720), money.Cents(9000).MulRate(0.08))
	assert.Equal(t, money.Cents(0), money.Cents(0).MulRate(0.08))
	// rounds half away from zero
	assert.Equal(t, money.Cents(13), money.Cents(125).MulRate(0.1))
}

func TestString(t *testing.T) {
	assert.Equal(t, "216.00", money.Cents(21600).String())
	assert.Equal(t, "0.05", money.Cents(5).String())
	assert.Equal(t, "0.00", money.Cents(0).String())
	assert.Equal(t, "-12.34", money.Cents(-1234).String())
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []money.Cents{0, 1, 99, 100, 4990, 21600} {
		parsed, err := money.ParseDecimal(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
}
