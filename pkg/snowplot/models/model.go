package models

import (
	"fmt"
	"image/color"
)

// ModelVariant identifies one configuration of the snow-algae model.
// Each variant writes its own CSV file per dataset.
type ModelVariant struct {
	// ID is the suffix used in the output file name (e.g. "xmd").
	ID string
	// Label is the legend entry.
	Label string
	// Color is the line colour.
	Color color.RGBA
}

var modelVariants = []ModelVariant{
	{ID: "mal", Label: "mal (Snow melt, no limitation)", Color: color.RGBA{A: 0xff}},
	{ID: "xm", Label: "XM (Snow melt)", Color: color.RGBA{R: 0xff, G: 0x45, A: 0xff}},
	{ID: "xmd", Label: "XMD (Snow melt + Daylight length)", Color: color.RGBA{G: 0xff, A: 0xff}},
	{ID: "xmdf", Label: "XMDF (Snow melt + Daylight length + Snowfall)", Color: color.RGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff}},
}

// ModelVariants returns the known model variants in legend order.
func ModelVariants() []ModelVariant {
	out := make([]ModelVariant, len(modelVariants))
	copy(out, modelVariants)
	return out
}

// ParseModelVariant resolves a variant by ID.
func ParseModelVariant(id string) (ModelVariant, error) {
	for _, m := range modelVariants {
		if m.ID == id {
			return m, nil
		}
	}
	return ModelVariant{}, fmt.Errorf("unknown model variant: %s", id)
}
