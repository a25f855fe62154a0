package cash_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/warp/limit-calculator/cash"
	"github.com/warp/limit-calculator/generic"
)

func newCash(t *testing.T, limit string, opts ...cash.Option) *cash.Calculator {
	t.Helper()
	clock := generic.NewManualClock(generic.NewDate(2024, time.March, 15))
	calc, err := cash.New(decimal.RequireFromString(limit), append([]cash.Option{cash.WithClock(clock)}, opts...)...)
	require.NoError(t, err)
	return calc
}

func spend(t *testing.T, calc *cash.Calculator, amount int64, date string) {
	t.Helper()
	rec, err := generic.NewRecord(calc.Clock(), amount, "spend", date)
	require.NoError(t, err)
	require.NoError(t, calc.AddRecord(context.Background(), rec))
}

func TestTodayCashRemained_SampleScenario(t *testing.T) {
	calc := newCash(t, "1000")
	spend(t, calc, 145, "")
	spend(t, calc, 300, "")
	spend(t, calc, 3000, "08.11.2019")

	week, err := calc.WeekStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(445), calc.TodayStats())
	assert.Equal(t, int64(445), week)

	msg, err := calc.TodayCashRemained(cash.RUB)
	require.NoError(t, err)
	assert.Equal(t, "today you can still spend 555.0 руб", msg)
}

func TestTodayCashRemained_Conversion(t *testing.T) {
	calc := newCash(t, "1000")
	spend(t, calc, 445, "")

	tests := []struct {
		code cash.Currency
		want string
	}{
		{cash.RUB, "today you can still spend 555.0 руб"},
		{cash.USD, "today you can still spend 6.31 USD"},  // 555 / 87.98 = 6.308...
		{cash.EUR, "today you can still spend 5.76 Euro"}, // 555 / 96.29 = 5.763...
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			msg, err := calc.TodayCashRemained(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg)
		})
	}
}

func TestTodayCashRemained_ExactlyZero(t *testing.T) {
	calc := newCash(t, "1000")
	spend(t, calc, 1000, "")

	for _, code := range []cash.Currency{cash.RUB, cash.USD, cash.EUR} {
		msg, err := calc.TodayCashRemained(code)
		require.NoError(t, err)
		assert.Equal(t, "no money left, hang in there", msg)
	}
}

func TestTodayCashRemained_RoundsToZero(t *testing.T) {
	// 0.4 rouble is 0.0045 dollars, which rounds to 0.00
	calc := newCash(t, "1000.4")
	spend(t, calc, 1000, "")

	msg, err := calc.TodayCashRemained(cash.USD)
	require.NoError(t, err)
	assert.Equal(t, "no money left, hang in there", msg)

	msg, err = calc.TodayCashRemained(cash.RUB)
	require.NoError(t, err)
	assert.Equal(t, "today you can still spend 0.4 руб", msg)
}

func TestTodayCashRemained_Debt(t *testing.T) {
	calc := newCash(t, "100")
	spend(t, calc, 150, "")

	msg, err := calc.TodayCashRemained(cash.RUB)
	require.NoError(t, err)
	assert.Equal(t, "no money left, hang in there: you owe 50.0 руб", msg)

	msg, err = calc.TodayCashRemained(cash.USD)
	require.NoError(t, err)
	assert.Equal(t, "no money left, hang in there: you owe 0.57 USD", msg) // 50 / 87.98 = 0.568...
}

func TestTodayCashRemained_UnknownCurrency(t *testing.T) {
	calc := newCash(t, "100")

	for _, code := range []cash.Currency{"gbp", "", "RUB", "usd "} {
		_, err := calc.TodayCashRemained(code)
		require.Error(t, err, string(code))
		assert.True(t, errors.Is(err, generic.ErrValidation))

		var verr *generic.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "unknown currency", verr.Reason)
	}
}

func TestTodayCashRemained_Russian(t *testing.T) {
	calc := newCash(t, "1000", cash.WithLanguage(language.Russian))
	spend(t, calc, 445, "")

	msg, err := calc.TodayCashRemained(cash.RUB)
	require.NoError(t, err)
	assert.Equal(t, "На сегодня осталось 555.0 руб", msg)

	spend(t, calc, 555, "")
	msg, err = calc.TodayCashRemained(cash.RUB)
	require.NoError(t, err)
	assert.Equal(t, "Денег нет, держись", msg)

	spend(t, calc, 10, "")
	msg, err = calc.TodayCashRemained(cash.EUR)
	require.NoError(t, err)
	assert.Equal(t, "Денег нет, держись: твой долг - 0.1 Euro", msg) // 10 / 96.29 = 0.1038...
}

func TestRemainedIn(t *testing.T) {
	calc := newCash(t, "1000")
	spend(t, calc, 445, "")

	amount, rate, err := calc.RemainedIn(cash.USD)
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("6.31")), amount.String())
	assert.Equal(t, "USD", rate.Label)
	assert.Equal(t, cash.USD, rate.Code)
}

func TestNew_NegativeLimit(t *testing.T) {
	_, err := cash.New(decimal.NewFromInt(-1))
	assert.True(t, errors.Is(err, generic.ErrValidation))
}

func TestFormatAmount(t *testing.T) {
	tests := map[string]string{
		"555":    "555.0",
		"555.00": "555.0",
		"6.30":   "6.3",
		"6.31":   "6.31",
		"0":      "0.0",
		"0.04":   "0.04",
	}
	for in, want := range tests {
		assert.Equal(t, want, cash.FormatAmount(decimal.RequireFromString(in)), in)
	}
}
