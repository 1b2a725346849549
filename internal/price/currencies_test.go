package price

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCurrencySet_NormalizesAndSorts(t *testing.T) {
	s := NewCurrencySet([]string{" usd", "EUR", "gbp ", "", "EUR"})

	require.Equal(t, []string{"EUR", "GBP", "USD"}, s.Codes())
	require.True(t, s.Contains("usd"))
	require.True(t, s.Contains(" Gbp "))
	require.False(t, s.Contains("JPY"))
}

func TestNewCurrencySet_DefaultsWhenEmpty(t *testing.T) {
	s := NewCurrencySet(nil)

	require.Len(t, s.Codes(), len(DefaultCurrencies))
	require.True(t, s.Contains("EUR"))
	require.False(t, s.Contains("BTC"))
}

func TestCurrencySet_CodesReturnsCopy(t *testing.T) {
	s := NewCurrencySet([]string{"EUR", "USD"})

	codes := s.Codes()
	codes[0] = "XXX"

	require.Equal(t, []string{"EUR", "USD"}, s.Codes())
}
