package rooster

import (
	"testing"

	"preekrooster/feature/rooster/liturgy"

	"github.com/stretchr/testify/assert"
)

func testDraft() Draft {
	return Draft{
		Voorganger: "Ds. Jansen",
		Collecten:  [3]string{"Kerk", "Diaconie", "Onderhoud"},
	}
}

func TestBuildBody(t *testing.T) {
	body := BuildBody(testDraft())

	assert.Contains(t, body, "<strong>Voorganger:</strong> Ds. Jansen")
	assert.Contains(t, body, "<strong>Collectedoelen:</strong>")
	assert.Contains(t, body, "1. Kerk")
	assert.Contains(t, body, "2. Diaconie")
	assert.Contains(t, body, "3. Onderhoud")
	assert.Contains(t, body, LivestreamURL)
	assert.NotContains(t, body, "iturgie")
}

func TestAppendLiturgyLine(t *testing.T) {
	base := BuildBody(testDraft())
	url := "https://example.org/liturgie.pdf"

	available := AppendLiturgyLine(base, liturgy.Available, url)
	assert.Contains(t, available, url)
	assert.Contains(t, available, "Druk hier voor de liturgie")

	missing := AppendLiturgyLine(base, liturgy.NotYetAvailable, url)
	assert.Contains(t, missing, "Liturgie nog niet beschikbaar")
	assert.NotContains(t, missing, url)

	// Probe failures never claim availability.
	failed := AppendLiturgyLine(base, liturgy.ProbeFailed, url)
	assert.Contains(t, failed, "Liturgie nog niet beschikbaar")
	assert.NotContains(t, failed, url)
}
