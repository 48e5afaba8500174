package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Style keys available in the builder.
const (
	StyleClassic      = "classic"
	StyleModern       = "modern"
	StyleFormal       = "formal"
	StyleDecorative   = "decorative"
	StyleMinimalist   = "minimalist"
	DefaultStyle      = StyleClassic
	DefaultColor      = "white"
	DefaultEmblem     = "graduation_cap"
	EmblemTypeGeneric = "generic"
	EmblemTypeState   = "state"
)

// StyleDefinition describes a selectable diploma style and the number of
// emblem slots its artwork declares.
type StyleDefinition struct {
	Key         string
	Name        string
	Description string
	EmblemSlots int
	BorderStyle string
}

// ColorDefinition maps a paper color key to its display name and hex value.
type ColorDefinition struct {
	Key  string
	Name string
	Hex  string
}

// EmblemDefinition describes a generic academic emblem.
type EmblemDefinition struct {
	Key  string
	Name string
}

var styleRegistry = map[string]StyleDefinition{
	StyleClassic: {
		Key:         StyleClassic,
		Name:        "Classic Traditional",
		Description: "Traditional diploma with elegant borders and classic typography.",
		EmblemSlots: 1,
		BorderStyle: "15px solid #8B4513",
	},
	StyleModern: {
		Key:         StyleModern,
		Name:        "Modern Elegant",
		Description: "Contemporary design with clean lines and modern styling.",
		EmblemSlots: 2,
		BorderStyle: "3px solid #007cba",
	},
	StyleFormal: {
		Key:         StyleFormal,
		Name:        "Formal Certificate",
		Description: "Professional certificate style with formal presentation.",
		EmblemSlots: 1,
		BorderStyle: "8px double #333",
	},
	StyleDecorative: {
		Key:         StyleDecorative,
		Name:        "Decorative Border",
		Description: "Ornate design with decorative elements and rich details.",
		EmblemSlots: 2,
		BorderStyle: "20px solid #DAA520",
	},
	StyleMinimalist: {
		Key:         StyleMinimalist,
		Name:        "Minimalist Clean",
		Description: "Simple, clean design focusing on content and readability.",
		EmblemSlots: 1,
		BorderStyle: "1px solid #ccc",
	},
}

var styleOrder = []string{StyleClassic, StyleModern, StyleFormal, StyleDecorative, StyleMinimalist}

var colorRegistry = map[string]ColorDefinition{
	"white":      {Key: "white", Name: "Classic White", Hex: "#ffffff"},
	"ivory":      {Key: "ivory", Name: "Ivory Cream", Hex: "#f5f5dc"},
	"light_blue": {Key: "light_blue", Name: "Light Blue", Hex: "#e6f3ff"},
	"light_gray": {Key: "light_gray", Name: "Light Gray", Hex: "#f0f0f0"},
}

var colorOrder = []string{"white", "ivory", "light_blue", "light_gray"}

var emblemRegistry = map[string]EmblemDefinition{
	"graduation_cap": {Key: "graduation_cap", Name: "Graduation Cap"},
	"diploma_seal":   {Key: "diploma_seal", Name: "Diploma Seal"},
	"academic_torch": {Key: "academic_torch", Name: "Academic Torch"},
	"laurel_wreath":  {Key: "laurel_wreath", Name: "Laurel Wreath"},
	"school_crest":   {Key: "school_crest", Name: "School Crest"},
}

var emblemOrder = []string{"graduation_cap", "diploma_seal", "academic_torch", "laurel_wreath", "school_crest"}

// StyleByKey returns a definition for the provided key, falling back to the
// classic style when the key is unrecognized.
func StyleByKey(key string) StyleDefinition {
	if def, ok := styleRegistry[key]; ok {
		return def
	}
	return styleRegistry[DefaultStyle]
}

// ColorByKey returns a definition for the provided key, falling back to white.
func ColorByKey(key string) ColorDefinition {
	if def, ok := colorRegistry[key]; ok {
		return def
	}
	return colorRegistry[DefaultColor]
}

// EmblemSlots reports how many emblem slots the style's artwork declares.
func EmblemSlots(styleKey string) int {
	return StyleByKey(styleKey).EmblemSlots
}

// ValidStyle reports whether the key names a registered diploma style.
func ValidStyle(key string) bool {
	_, ok := styleRegistry[key]
	return ok
}

// ValidColor reports whether the key names a registered paper color.
func ValidColor(key string) bool {
	_, ok := colorRegistry[key]
	return ok
}

// ValidGenericEmblem reports whether the key names a registered generic emblem.
func ValidGenericEmblem(key string) bool {
	_, ok := emblemRegistry[key]
	return ok
}

// ValidEmblemType reports whether the value is a recognized emblem type.
func ValidEmblemType(value string) bool {
	return value == EmblemTypeGeneric || value == EmblemTypeState
}

// Styles returns all style definitions in presentation order.
func Styles() []StyleDefinition {
	out := make([]StyleDefinition, 0, len(styleOrder))
	for _, key := range styleOrder {
		out = append(out, styleRegistry[key])
	}
	return out
}

// Colors returns all paper color definitions in presentation order.
func Colors() []ColorDefinition {
	out := make([]ColorDefinition, 0, len(colorOrder))
	for _, key := range colorOrder {
		out = append(out, colorRegistry[key])
	}
	return out
}

// GenericEmblems returns all generic emblem definitions in presentation order.
func GenericEmblems() []EmblemDefinition {
	out := make([]EmblemDefinition, 0, len(emblemOrder))
	for _, key := range emblemOrder {
		out = append(out, emblemRegistry[key])
	}
	return out
}

// EmblemURL builds the asset URL for an emblem selection. Unrecognized
// selections resolve to the default graduation cap asset.
func EmblemURL(baseURL, emblemType, value string) string {
	base := strings.TrimRight(baseURL, "/")
	switch {
	case emblemType == EmblemTypeGeneric && ValidGenericEmblem(value):
		return fmt.Sprintf("%s/emblems/generic/%s.png", base, value)
	case emblemType == EmblemTypeState && value != "":
		return fmt.Sprintf("%s/emblems/states/%s.png", base, value)
	}
	return fmt.Sprintf("%s/emblems/generic/%s.png", base, DefaultEmblem)
}

// StateEmblem describes the outcome of a state emblem asset lookup.
type StateEmblem struct {
	StateName string `json:"state_name"`
	StateCode string `json:"state_code"`
	EmblemURL string `json:"emblem_url"`
	Exists    bool   `json:"emblem_exists"`
}

// StateEmblemLookup resolves the emblem asset for a state code, trying the SVG
// asset before the raster fallback. When neither exists on disk the SVG URL is
// still returned with Exists set to false.
func StateEmblemLookup(assetRoot, baseURL, code string) (StateEmblem, error) {
	name, ok := stateRegistry[code]
	if !ok {
		return StateEmblem{}, fmt.Errorf("state not found: %s", code)
	}

	base := strings.TrimRight(baseURL, "/")
	result := StateEmblem{StateName: name, StateCode: code}

	svgPath := filepath.Join(assetRoot, "emblems", "states", code+".svg")
	rasterPath := filepath.Join(assetRoot, "emblems", "states", code+".jpg")

	switch {
	case fileExists(svgPath):
		result.EmblemURL = fmt.Sprintf("%s/emblems/states/%s.svg", base, code)
		result.Exists = true
	case fileExists(rasterPath):
		result.EmblemURL = fmt.Sprintf("%s/emblems/states/%s.jpg", base, code)
		result.Exists = true
	default:
		result.EmblemURL = fmt.Sprintf("%s/emblems/states/%s.svg", base, code)
	}

	return result, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
