// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"image/color"
	"os"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/tfctl/sbsdiff/internal/config"
	"github.com/tfctl/sbsdiff/internal/differ"
)

// textPalette holds the terminal styles for a colored table.
type textPalette struct {
	title color.Color
	rows  map[differ.Kind]color.Color
	words map[differ.SegmentOp]lipgloss.Style
}

// htmlTheme holds the CSS colors of the HTML theme block. The defaults are a
// light palette.
type htmlTheme struct {
	EqualBg      string
	DeleteBg     string
	InsertBg     string
	UpdateBg     string
	WordDelBg    string
	WordDelColor string
	WordInsBg    string
	WordInsColor string
}

// getTextColors returns configured terminal colors. Each color is selected
// based on terminal background so output stays readable on light and dark
// themes.
func getTextColors(key string) textPalette {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	// Use the explicit color if found in the config and leave it up to the user
	// to choose appropriate colors for their theme. If not found, pick a
	// reasonable default based on terminal background.
	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	delWord := resolveColor(key+".wordDel", "#7a0000", "#ff5f5f")
	insWord := resolveColor(key+".wordIns", "#006600", "#5fff87")

	return textPalette{
		title: resolveColor(key+".title", "#b08800", "#f6be00"),
		rows: map[differ.Kind]color.Color{
			differ.Delete: resolveColor(key+".delete", "#b30000", "#ff8787"),
			differ.Insert: resolveColor(key+".insert", "#006400", "#87d787"),
			differ.Update: resolveColor(key+".update", "#8a6d00", "#ffd75f"),
		},
		words: map[differ.SegmentOp]lipgloss.Style{
			differ.WordDelete: lipgloss.NewStyle().Bold(true).Foreground(delWord),
			differ.WordInsert: lipgloss.NewStyle().Bold(true).Foreground(insWord),
		},
	}
}

// getHTMLTheme reads the HTML theme from the config keys under key.
func getHTMLTheme(key string) htmlTheme {
	get := func(name, def string) string {
		v, _ := config.GetString(key+"."+name, def)
		if v == "" {
			return def
		}
		return v
	}

	return htmlTheme{
		EqualBg:      get("equalBg", "#ffffff"),
		DeleteBg:     get("deleteBg", "#ffecec"),
		InsertBg:     get("insertBg", "#eaffea"),
		UpdateBg:     get("updateBg", "#fff9cc"),
		WordDelBg:    get("wordDelBg", "#ffcdcd"),
		WordDelColor: get("wordDelColor", "#7a0000"),
		WordInsBg:    get("wordInsBg", "#cdfcdc"),
		WordInsColor: get("wordInsColor", "#006600"),
	}
}
