package terrain

import (
	"github.com/VoidMesh/terrainpainter/internal/raster"
)

// ClassTable maps exact quantization colors to classes 1..len(table) by
// position. Colors not in the table are class 0.
type ClassTable []raster.Color

// ClassOf returns the 1-based class of c, or 0.
func (t ClassTable) ClassOf(c raster.Color) int {
	for i, entry := range t {
		if entry == c {
			return i + 1
		}
	}
	return 0
}

// Family is one terrain hue and the names of its shades, coldest first.
type Family struct {
	Base  string   `toml:"base" json:"base"`
	Names []string `toml:"names" json:"names"`
}

// Palette holds the tints blended into every family.
type Palette struct {
	ColdTint string   `toml:"cold_tint" json:"cold_tint"`
	HotTint  string   `toml:"hot_tint" json:"hot_tint"`
	Families []Family `toml:"families" json:"families"`
}

// DefaultHeightClasses is the grey ramp used by the default height color map.
var DefaultHeightClasses = ClassTable{
	raster.MustParseColor("#000000"), // deep water
	raster.MustParseColor("#1C1C1C"), // water
	raster.MustParseColor("#393939"), // sand
	raster.MustParseColor("#555555"), // scrub
	raster.MustParseColor("#717171"), // grassland
	raster.MustParseColor("#8E8E8E"), // forest
	raster.MustParseColor("#AAAAAA"), // steppe
	raster.MustParseColor("#C6C6C6"), // cliffs
	raster.MustParseColor("#E3E3E3"), // mountain
	raster.MustParseColor("#FFFFFF"), // peaks
}

// DefaultTemperatureClasses runs from arctic to hot.
var DefaultTemperatureClasses = ClassTable{
	raster.MustParseColor("#00CDF9"),
	raster.MustParseColor("#1AB3A2"),
	raster.MustParseColor("#33984B"),
	raster.MustParseColor("#7C5E3E"),
	raster.MustParseColor("#C42430"),
}

// DefaultPalette returns one family per default height class.
func DefaultPalette() Palette {
	return Palette{
		ColdTint: "#ffffff",
		HotTint:  "#edab50",
		Families: []Family{
			{Base: "#124E89", Names: []string{"Glacial Depths", "Frozen Abyss", "Midnight Deep", "Warm Waters", "Scalding Depths"}},
			{Base: "#0099DB", Names: []string{"Glacial Sea", "Ice-Cool Ocean", "Deepwater", "Tropical Ocean", "Boiling Sea"}},
			{Base: "#EAD4AA", Names: []string{"Frostbitten Shore", "Frost Coast", "Sandy Tides", "Coral Shores", "Scorched Beaches"}},
			{Base: "#B86F50", Names: []string{"Windswept Barrens", "Dustbowl Flats", "Thirsty Wilderness", "Sunscorched Wilds", "Embered Desert"}},
			{Base: "#63C74D", Names: []string{"Frozen Steppe", "Cool Meadow", "Verdant Plains", "Tropical Grassland", "Scorched Savannah"}},
			{Base: "#3E8948", Names: []string{"Frostwood Grove", "Evergreen Forest", "Lushwood", "Jungle Grove", "Tropical Rainforest"}},
			{Base: "#193C3E", Names: []string{"Frozen Steppe", "Bitter Grasslands", "Rolling Hills", "Wild Steppe", "Dry Plains"}},
			{Base: "#5A6988", Names: []string{"Snowy Cliffside", "Frostcliff", "Highstone Cliffs", "Warmrock Cliffside", "Scorched Peaks"}},
			{Base: "#8B9BB4", Names: []string{"Snowy Mountain", "Frozen Ridge", "Misty Mountain", "Rugged Mountain", "Volcanic Mountain"}},
			{Base: "#C0CBDC", Names: []string{"Icepeak Summit", "Frostspire", "Cloudspire", "Emberspire", "Lavapeak Summit"}},
		},
	}
}
