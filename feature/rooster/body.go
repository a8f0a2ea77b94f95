package rooster

import (
	"fmt"
	"strings"

	"preekrooster/feature/rooster/liturgy"
)

// LivestreamURL is the fixed livestream link appended to every event body.
const LivestreamURL = "https://www.youtube.com/@pkndubbeldam/live"

// BuildBody renders the HTML event description from the draft's body
// fields. The result is identical for the create and update paths.
func BuildBody(d Draft) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<strong>Voorganger:</strong> %s<br /><br />\n", d.Voorganger)
	b.WriteString("<strong>Collectedoelen:</strong><br />\n")
	for i, doel := range d.Collecten {
		fmt.Fprintf(&b, "%d. %s<br />\n", i+1, doel)
	}
	b.WriteString("<br />\n")
	fmt.Fprintf(&b, "<strong><a href=%q>Bekijk livestream</a></strong>", LivestreamURL)

	return b.String()
}

// AppendLiturgyLine appends the liturgy link (when available) or the "not
// yet available" notice. Probe failures never advertise a liturgy.
func AppendLiturgyLine(body string, a liturgy.Availability, url string) string {
	if a == liturgy.Available {
		return body + fmt.Sprintf("\n<br />\n<br />\n<strong><a href=%q>Druk hier voor de liturgie</a></strong>", url)
	}
	return body + "\n<br />\n<br />\n<strong>Liturgie nog niet beschikbaar</strong>"
}
