package money

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		m, err := New(1299, 100)
		require.NoError(t, err)
		assert.Equal(t, "12.99", m.String())
	})

	t.Run("zero denominator", func(t *testing.T) {
		_, err := New(1, 0)
		assert.Error(t, err)
	})
}

func TestParse(t *testing.T) {
	t.Run("exact decimal", func(t *testing.T) {
		m, err := Parse("499.99")
		require.NoError(t, err)
		assert.True(t, m.Equals(FromCents(49999)))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := Parse("12,99")
		assert.Error(t, err)
	})
}

func TestArithmetic(t *testing.T) {
	a := MustParse("12.99")
	b := MustParse("0.01")

	assert.Equal(t, "13.00", a.Add(b).String())
	assert.Equal(t, "12.98", a.Subtract(b).String())
	assert.Equal(t, "38.97", a.MultiplyInt(3).String())
	assert.Equal(t, "10.00", MustParse("100").Percent(10).String())
	assert.Equal(t, "6.50", MustParse("13").MultiplyByRat(big.NewRat(1, 2)).String())

	t.Run("zero value is usable", func(t *testing.T) {
		var z Money
		assert.True(t, z.IsZero())
		assert.Equal(t, "5.99", z.Add(MustParse("5.99")).String())
	})

	t.Run("sums stay exact", func(t *testing.T) {
		total := Zero()
		for i := 0; i < 10; i++ {
			total = total.Add(MustParse("0.1"))
		}
		assert.True(t, total.Equals(MustParse("1")))
	})
}

func TestComparisons(t *testing.T) {
	lo, hi := MustParse("25"), MustParse("50")

	assert.True(t, lo.LessThan(hi))
	assert.True(t, hi.GreaterThan(lo))
	assert.False(t, lo.Equals(hi))
	assert.Equal(t, -1, lo.Cmp(hi))
	assert.True(t, MustParse("-1").IsNegative())
	assert.True(t, lo.IsPositive())
}

func TestCents(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"12.99", 1299},
		{"1.299", 130},
		{"1.295", 130},
		{"1.294", 129},
		{"-1.295", -130},
		{"0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParse(tt.in).Cents())
		})
	}
}

func TestRoundCents(t *testing.T) {
	assert.True(t, MustParse("6.495").RoundCents().Equals(FromCents(650)))
	assert.True(t, MustParse("1.234").RoundCents().Equals(FromCents(123)))
	assert.True(t, MustParse("-1.235").RoundCents().Equals(FromCents(-124)))
}

func TestJSON(t *testing.T) {
	type line struct {
		Price Money `json:"price"`
	}

	t.Run("encodes as number", func(t *testing.T) {
		data, err := json.Marshal(line{Price: MustParse("12.9")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"price": 12.90}`, string(data))
	})

	t.Run("decodes numbers and strings", func(t *testing.T) {
		var a, b line
		require.NoError(t, json.Unmarshal([]byte(`{"price": 24.99}`), &a))
		require.NoError(t, json.Unmarshal([]byte(`{"price": "24.99"}`), &b))
		assert.True(t, a.Price.Equals(b.Price))
		assert.Equal(t, int64(2499), a.Price.Cents())
	})

	t.Run("rejects non-numeric", func(t *testing.T) {
		var l line
		assert.Error(t, json.Unmarshal([]byte(`{"price": "abc"}`), &l))
	})
}
