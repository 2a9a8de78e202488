package portability_test

import (
	"bytes"
	"testing"
	"time"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/exhorizon/internal/adapter/portability"
	"github.com/srgjo27/exhorizon/internal/core/domain"
)

// utf16be is how UTF-8 fonts put text into an uncompressed content stream.
func utf16be(s string) []byte {
	var out []byte
	for _, u := range utf16.Encode([]rune(s)) {
		out = append(out, byte(u>>8), byte(u))
	}
	return out
}

func TestPDFItinerary_Export(t *testing.T) {
	it := portability.NewPDFItinerary(time.UTC, domain.LocaleZH)

	data, err := it.Export(samplePlans())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Equal(t, "pdf", it.Extension())
	assert.Equal(t, "Itinerary", it.Kind())
}

func TestPDFItinerary_KeepsChineseText(t *testing.T) {
	it := portability.NewPDFItinerary(time.UTC, domain.LocaleZH, portability.WithCompression(false))

	data, err := it.Export(samplePlans())
	require.NoError(t, err)

	assert.True(t, bytes.Contains(data, utf16be("周杰伦 嘉年华")), "concert name")
	assert.True(t, bytes.Contains(data, utf16be("内场 A区")), "seat")
	assert.True(t, bytes.Contains(data, utf16be("¥500")), "price")
	assert.False(t, bytes.Contains(data, []byte("... ..")), "no cp1252 placeholders")
}

func TestPDFItinerary_WeekdayFollowsLocale(t *testing.T) {
	zh, err := portability.NewPDFItinerary(time.UTC, domain.LocaleZH, portability.WithCompression(false)).Export(samplePlans())
	require.NoError(t, err)
	assert.True(t, bytes.Contains(zh, utf16be("2025-05-01 周四")))

	en, err := portability.NewPDFItinerary(time.UTC, domain.LocaleEN, portability.WithCompression(false)).Export(samplePlans())
	require.NoError(t, err)
	assert.True(t, bytes.Contains(en, utf16be("2025-05-01 Thu")))
	assert.False(t, bytes.Contains(en, utf16be("2025-05-01 周四")))
}

func TestPDFItinerary_EmptyRefused(t *testing.T) {
	data, err := portability.NewPDFItinerary(nil, domain.LocaleEN).Export([]domain.ConcertPlan{})

	assert.ErrorIs(t, err, domain.ErrExportEmptyCollection)
	assert.Nil(t, data)
}
