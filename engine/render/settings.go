package render

import (
	"strconv"
	"strings"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/core/font"
	"github.com/npillmayer/boxflow/engine/dom/style"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/boxflow/engine/frame/inline"
	"github.com/npillmayer/schuko"
)

// DefaultPageSize is used if neither the host nor the configuration
// determine the size of the page.
var DefaultPageSize = dimen.Point{X: 800 * dimen.PX, Y: 600 * dimen.PX}

// Settings control a rendering run.
type Settings struct {
	PageSize        dimen.Point
	DefaultFontSize dimen.Dimen
	MaxInlineDepth  int
	Fonts           boxtree.FontProvider
}

// DefaultSettings returns settings with a default page size and fonts from
// the global font registry.
func DefaultSettings() Settings {
	return Settings{
		PageSize:        DefaultPageSize,
		DefaultFontSize: style.DefaultFontSize,
		MaxInlineDepth:  inline.DefaultMaxNestingDepth,
		Fonts:           boxtree.RegistryFonts{},
	}
}

// SettingsFrom reads settings from a configuration. conf may be nil, in
// which case default settings are returned.
func SettingsFrom(conf schuko.Configuration) (Settings, error) {
	s := DefaultSettings()
	if conf == nil {
		return s, nil
	}
	var err error
	if s.PageSize.X, err = length(conf, "page-width", s.PageSize.X); err != nil {
		return s, err
	}
	if s.PageSize.Y, err = length(conf, "page-height", s.PageSize.Y); err != nil {
		return s, err
	}
	if s.DefaultFontSize, err = length(conf, "default-font-size", s.DefaultFontSize); err != nil {
		return s, err
	}
	if v := conf.GetString("max-inline-depth"); v != "" {
		depth, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || depth <= 0 {
			return s, core.Error(core.EINVALID, "configuration max-inline-depth is not a positive number: %q", v)
		}
		s.MaxInlineDepth = depth
	}
	if strings.EqualFold(strings.TrimSpace(conf.GetString("system-fonts")), "false") {
		s.Fonts = boxtree.RegistryFonts{Registry: font.NewRegistry(false)}
	}
	return s, nil
}

// length reads a positive length from a configuration key. Numbers without
// a unit are CSS pixels.
func length(conf schuko.Configuration, key string, dflt dimen.Dimen) (dimen.Dimen, error) {
	v := strings.TrimSpace(conf.GetString(key))
	if v == "" {
		return dflt, nil
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		v += "px"
	}
	d, isPercent, err := dimen.ParseDimen(v)
	if err != nil || isPercent || d <= 0 {
		return dflt, core.Error(core.EINVALID, "configuration %s is not a positive length: %q", key, v)
	}
	return d, nil
}
