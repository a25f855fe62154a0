package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/warp/limit-calculator/cash"
	"github.com/warp/limit-calculator/generic"
)

func TestRun(t *testing.T) {
	// The 2019 record only matters if today is 08.11.2019.
	if generic.NewDate(2019, 11, 8).Equal((generic.SystemClock{}).Today()) {
		t.Skip("running on the sample's old date")
	}

	msg, err := run(context.Background(), language.English, cash.RUB)
	require.NoError(t, err)
	assert.Equal(t, "today you can still spend 555.0 руб", msg)

	msg, err = run(context.Background(), language.Russian, cash.RUB)
	require.NoError(t, err)
	assert.Equal(t, "На сегодня осталось 555.0 руб", msg)
}

func TestRun_UnknownCurrency(t *testing.T) {
	_, err := run(context.Background(), language.English, "gbp")
	assert.ErrorIs(t, err, generic.ErrValidation)
}

func TestRun_UnsupportedLanguage(t *testing.T) {
	_, err := run(context.Background(), language.French, cash.RUB)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}
