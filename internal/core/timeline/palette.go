package timeline

// DefaultPalette is the qualitative palette markers cycle through.
var DefaultPalette = []string{
	"#636EFA",
	"#EF553B",
	"#00CC96",
	"#AB63FA",
	"#FFA15A",
	"#19D3F3",
	"#FF6692",
	"#B6E880",
	"#FF97FF",
	"#FECB52",
}

// PaletteColor returns the color for the label at sorted index i.
func PaletteColor(palette []string, i int) string {
	return palette[i%len(palette)]
}
