package calories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/warp/limit-calculator/calories"
	"github.com/warp/limit-calculator/generic"
)

func newCalories(t *testing.T, limit int64, opts ...calories.Option) *calories.Calculator {
	t.Helper()
	clock := generic.NewManualClock(generic.NewDate(2024, time.March, 15))
	calc, err := calories.New(decimal.NewFromInt(limit), append([]calories.Option{calories.WithClock(clock)}, opts...)...)
	require.NoError(t, err)
	return calc
}

func eat(t *testing.T, calc *calories.Calculator, kcal int64) {
	t.Helper()
	rec, err := generic.NewRecord(calc.Clock(), kcal, "meal", "")
	require.NoError(t, err)
	require.NoError(t, calc.AddRecord(context.Background(), rec))
}

func TestCaloriesRemained_UnderLimit(t *testing.T) {
	calc := newCalories(t, 2000)
	eat(t, calc, 1200)
	eat(t, calc, 300)

	assert.Equal(t,
		"you can eat something else today, but with a total of no more than 500 kcal",
		calc.CaloriesRemained())
}

func TestCaloriesRemained_ExactlyAtLimit(t *testing.T) {
	calc := newCalories(t, 2000)
	eat(t, calc, 2000)

	assert.Equal(t,
		"you can eat something else today, but with a total of no more than 0 kcal",
		calc.CaloriesRemained())
}

func TestCaloriesRemained_OverLimit(t *testing.T) {
	calc := newCalories(t, 2000)
	eat(t, calc, 2500)

	assert.Equal(t, "stop eating!", calc.CaloriesRemained())
}

func TestCaloriesRemained_Russian(t *testing.T) {
	calc := newCalories(t, 2000, calories.WithLanguage(language.Russian))
	eat(t, calc, 1500)
	assert.Equal(t,
		"Сегодня можно съесть что-нибудь ещё, но с общей калорийностью не более 500 кКал",
		calc.CaloriesRemained())

	eat(t, calc, 600)
	assert.Equal(t, "Хватит есть!", calc.CaloriesRemained())
}

func TestCaloriesRemained_OldRecordsDoNotCount(t *testing.T) {
	calc := newCalories(t, 2000)
	rec, err := generic.NewRecord(calc.Clock(), 5000, "feast", "14.03.2024")
	require.NoError(t, err)
	require.NoError(t, calc.AddRecord(context.Background(), rec))

	assert.Contains(t, calc.CaloriesRemained(), "2000 kcal")

	week, err := calc.WeekStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5000), week)
}

func TestNew_NegativeLimit(t *testing.T) {
	_, err := calories.New(decimal.NewFromInt(-2000))
	assert.True(t, errors.Is(err, generic.ErrValidation))
}
