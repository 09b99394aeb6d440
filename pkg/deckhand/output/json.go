// Package output serializes deck reports and extracted grids for consumption
// by other tools.
package output

import (
	"encoding/json"

	"github.com/slidewright/deckhand/pkg/deckhand/models"
)

// ToJSON serializes a deck report to JSON. When pretty is true the output is
// indented for human reading.
func ToJSON(report *models.DeckReport, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
