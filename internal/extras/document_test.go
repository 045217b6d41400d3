package extras_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gastrogrid/internal/extras"
)

func TestDecodeJobExtras_DefaultsOnAbsentOrMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t"},
		{"not json", "{not json"},
		{"wrong shape", `["a","b"]`},
	}

	want := extras.NewJobExtras()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := extras.DecodeJobExtras(tc.raw)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodeJobExtras_MissingKeysKeepDefaults(t *testing.T) {
	got := extras.DecodeJobExtras(`{}`)
	assert.True(t, got.TrainingMode, "training mode defaults on")
	assert.Empty(t, got.Checklist)
	assert.Equal(t, extras.NewJobExtras(), got)

	got = extras.DecodeJobExtras(`{"trainingMode":false}`)
	assert.False(t, got.TrainingMode)
}

func TestJobExtras_RoundTrip(t *testing.T) {
	deadline := time.Date(2026, 3, 14, 11, 30, 0, 0, time.UTC)
	doc := extras.NewJobExtras()
	doc.TrainingMode = false
	doc.OrderNumber = "9779-04"
	doc.Station = "Torhaus E2"
	doc.Deadline = &deadline
	doc.Persons = 120
	extras.AddStep(&doc.Checklist, "Ware holen")
	extras.AddStep(&doc.Checklist, "Bleche belegen")
	doc.Checklist[0].IsDone = true
	doc.PinnedProductIDs = []string{"P-0001", "P-0001", "P-0002"}
	doc.PinnedLexikonCodes = []string{"MEP"}
	doc.LineItems = append(doc.LineItems, extras.NewLineItem("Spätzle", "12", "GN 1/1", "6,5 cm hoch"))

	raw, err := extras.EncodeJobExtras(doc)
	require.NoError(t, err)

	got := extras.DecodeJobExtras(raw)
	assert.Equal(t, doc, got)
}

func TestJobExtras_UnknownFieldsDroppedOnRoundTrip(t *testing.T) {
	// Fields from a newer schema are not preserved across load/save.
	got := extras.DecodeJobExtras(`{"trainingMode":false,"futureField":"x"}`)
	raw, err := extras.EncodeJobExtras(got)
	require.NoError(t, err)
	assert.NotContains(t, raw, "futureField")
}

func TestEventExtras_RoundTripAndDefaults(t *testing.T) {
	assert.Equal(t, extras.NewEventExtras(), extras.DecodeEventExtras(""))
	assert.Equal(t, extras.NewEventExtras(), extras.DecodeEventExtras("{oops"))

	doc := extras.NewEventExtras()
	extras.AddStep(&doc.Checklist, "Anlieferung prüfen")
	doc.PinnedLexikonCodes = []string{"HACCP"}

	raw, err := extras.EncodeEventExtras(doc)
	require.NoError(t, err)
	assert.Equal(t, doc, extras.DecodeEventExtras(raw))
}
