package style

import (
	"strings"

	"github.com/npillmayer/schuko"
)

type confKey struct {
	name  string
	str   func(*Overrides, string)
	integ func(*Overrides, int)
}

// keys lists every style parameter readable from a configuration.
var keys = []confKey{
	{name: "mainColor", str: func(o *Overrides, v string) { o.MainColor = Some(v) }},
	{name: "headerBg", str: func(o *Overrides, v string) { o.HeaderBg = Some(v) }},
	{name: "textColor", str: func(o *Overrides, v string) { o.TextColor = Some(v) }},
	{name: "borderColor", str: func(o *Overrides, v string) { o.BorderColor = Some(v) }},
	{name: "bulletColor", str: func(o *Overrides, v string) { o.BulletColor = Some(v) }},
	{name: "alternateRowColor", str: func(o *Overrides, v string) { o.AlternateRowColor = Some(v) }},
	{name: "brandName", str: func(o *Overrides, v string) { o.BrandName = Some(v) }},
	{name: "tableBorderWidth", integ: func(o *Overrides, v int) { o.TableBorderWidth = Some(v) }},
	{name: "headerBorderWidth", integ: func(o *Overrides, v int) { o.HeaderBorderWidth = Some(v) }},
	{name: "outerBorderWidth", integ: func(o *Overrides, v int) { o.OuterBorderWidth = Some(v) }},
	{name: "titleUnderlineHeight", integ: func(o *Overrides, v int) { o.TitleUnderlineHeight = Some(v) }},
	{name: "titleFontSize", integ: func(o *Overrides, v int) { o.TitleFontSize = Some(v) }},
	{name: "headerFontSize", integ: func(o *Overrides, v int) { o.HeaderFontSize = Some(v) }},
	{name: "cellFontSize", integ: func(o *Overrides, v int) { o.CellFontSize = Some(v) }},
	{name: "detailFontSize", integ: func(o *Overrides, v int) { o.DetailFontSize = Some(v) }},
	{name: "bulletFontSize", integ: func(o *Overrides, v int) { o.BulletFontSize = Some(v) }},
}

// Keys returns the names of all style parameters, in a stable order.
func Keys() []string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.name
	}
	return names
}

// IsKey reports whether name denotes a style parameter.
func IsKey(name string) bool {
	for _, k := range keys {
		if k.name == name {
			return true
		}
	}
	return false
}

// IsNumeric reports whether name denotes an integer style parameter.
func IsNumeric(name string) bool {
	for _, k := range keys {
		if k.name == name {
			return k.integ != nil
		}
	}
	return false
}

// FromConfiguration collects overrides from a schuko configuration.
// Keys are looked up as "<prefix>.<name>", e.g. "chart.mainColor"; an empty
// prefix uses the bare names.
func FromConfiguration(conf schuko.Configuration, prefix string) Overrides {
	var o Overrides
	if conf == nil {
		return o
	}
	prefix = strings.TrimSuffix(prefix, ".")
	for _, k := range keys {
		key := k.name
		if prefix != "" {
			key = prefix + "." + k.name
		}
		if !conf.IsSet(key) {
			continue
		}
		if k.str != nil {
			k.str(&o, conf.GetString(key))
		} else {
			k.integ(&o, conf.GetInt(key))
		}
		tracer().Debugf("style override %s from configuration", k.name)
	}
	return o
}
