//go:build unit

package matching_test

import (
	"strings"
	"testing"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() matching.DetailsInput {
	return matching.DetailsInput{
		ProductName:          "Saffron",
		Quantity:             "100",
		Unit:                 "kg",
		DestinationCountries: "Iraq, UAE",
		Price:                "1200",
		Currency:             "USD",
	}
}

func TestNewDetails(t *testing.T) {
	strp := func(s string) *string { return &s }

	tests := []struct {
		name   string
		mutate func(*matching.DetailsInput)
		errIs  error
	}{
		{name: "valid input"},
		{name: "empty product name", mutate: func(in *matching.DetailsInput) { in.ProductName = "  " }, errIs: matching.ErrEmptyProductName},
		{name: "product name at max length", mutate: func(in *matching.DetailsInput) { in.ProductName = strings.Repeat("ز", matching.MaxProductNameLength) }},
		{name: "product name too long", mutate: func(in *matching.DetailsInput) { in.ProductName = strings.Repeat("a", matching.MaxProductNameLength+1) }, errIs: matching.ErrProductNameTooLong},
		{name: "empty quantity", mutate: func(in *matching.DetailsInput) { in.Quantity = "" }, errIs: matching.ErrEmptyQuantity},
		{name: "empty unit", mutate: func(in *matching.DetailsInput) { in.Unit = "" }, errIs: matching.ErrEmptyUnit},
		{name: "empty price", mutate: func(in *matching.DetailsInput) { in.Price = "" }, errIs: matching.ErrEmptyPrice},
		{name: "quantity too long", mutate: func(in *matching.DetailsInput) { in.Quantity = strings.Repeat("9", matching.MaxShortFieldLength+1) }, errIs: matching.ErrFieldTooLong},
		{name: "currency with digits", mutate: func(in *matching.DetailsInput) { in.Currency = "US1" }, errIs: matching.ErrInvalidCurrency},
		{name: "currency too short", mutate: func(in *matching.DetailsInput) { in.Currency = "US" }, errIs: matching.ErrInvalidCurrency},
		{name: "no countries", mutate: func(in *matching.DetailsInput) { in.DestinationCountries = " , ," }, errIs: matching.ErrNoCountries},
		{name: "description too long", mutate: func(in *matching.DetailsInput) { in.Description = strp(strings.Repeat("a", matching.MaxDescriptionLength+1)) }, errIs: matching.ErrFieldTooLong},
		{name: "payment terms too long", mutate: func(in *matching.DetailsInput) { in.PaymentTerms = strp(strings.Repeat("a", matching.MaxPaymentTermsLength+1)) }, errIs: matching.ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			if tt.mutate != nil {
				tt.mutate(&in)
			}
			_, err := matching.NewDetails(in)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewDetailsNormalizes(t *testing.T) {
	blank := "   "
	terms := "  30% upfront "
	in := validInput()
	in.ProductName = "  Saffron  "
	in.Currency = " eur "
	in.Description = &blank
	in.PaymentTerms = &terms

	d, err := matching.NewDetails(in)
	require.NoError(t, err)

	assert.Equal(t, "Saffron", d.ProductName())
	assert.Equal(t, "EUR", d.Currency())
	assert.Nil(t, d.Description())
	require.NotNil(t, d.PaymentTerms())
	assert.Equal(t, "30% upfront", *d.PaymentTerms())
}

func TestDetailsInputRoundTrip(t *testing.T) {
	d, err := matching.NewDetails(validInput())
	require.NoError(t, err)

	again, err := matching.NewDetails(d.Input())
	require.NoError(t, err)

	if diff := cmp.Diff(d.Countries().Values(), again.Countries().Values()); diff != "" {
		t.Errorf("countries mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, d.Input(), again.Input())
}

func TestParseCountries(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "comma separated", raw: "Iraq, UAE", want: []string{"Iraq", "UAE"}},
		{name: "lower case names are titled", raw: "iraq,oman", want: []string{"Iraq", "Oman"}},
		{name: "multi word names survive commas", raw: "saudi arabia, united arab emirates", want: []string{"Saudi Arabia", "United Arab Emirates"}},
		{name: "whitespace separated without commas", raw: "Iraq  Oman Qatar", want: []string{"Iraq", "Oman", "Qatar"}},
		{name: "duplicates dropped case-insensitively", raw: "Iraq, iraq, IRAQ, Oman", want: []string{"Iraq", "Oman"}},
		{name: "short codes kept upper case", raw: "UAE, USA", want: []string{"UAE", "USA"}},
		{name: "empty items skipped", raw: ", Iraq,, ", want: []string{"Iraq"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matching.ParseCountries(tt.raw)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got.Values()); diff != "" {
				t.Errorf("countries mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("empty text", func(t *testing.T) {
		_, err := matching.ParseCountries("   ")
		assert.ErrorIs(t, err, matching.ErrNoCountries)
	})

	t.Run("name too long", func(t *testing.T) {
		_, err := matching.ParseCountries(strings.Repeat("a", 101))
		assert.ErrorIs(t, err, matching.ErrFieldTooLong)
	})

	t.Run("contains ignores case and padding", func(t *testing.T) {
		c, err := matching.ParseCountries("Iraq, UAE")
		require.NoError(t, err)
		assert.True(t, c.Contains(" uae "))
		assert.False(t, c.Contains("Oman"))
		assert.Equal(t, "Iraq, UAE", c.String())
	})
}
