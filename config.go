package inkml

import (
	"strings"

	"github.com/npillmayer/schuko"
)

// Configuration keys read by ConfigFrom.
const (
	KeyStrict       = "inkml.strict"
	KeySparseExport = "inkml.sparse-export"
	KeyTieBreak     = "inkml.tiebreak"
)

// TieBreak selects how views starting at the same time are ordered.
type TieBreak int8

const (
	TieBreakSerial  TieBreak = iota // earlier created view sorts first
	TieBreakReverse                 // later created view sorts first
)

// Config holds the settings of a document.
type Config struct {
	Strict       bool     // check sample values against channel bounds
	SparseExport bool     // omit channel defaults equal to zero on export
	TieBreak     TieBreak // ordering of views with identical start time
}

// DefaultConfig returns the settings used if no configuration is present.
func DefaultConfig() Config {
	return Config{SparseExport: true}
}

// ConfigFrom derives a Config from an application configuration.
// Keys not set in conf keep their defaults. conf may be nil.
func ConfigFrom(conf schuko.Configuration) Config {
	c := DefaultConfig()
	if conf == nil {
		return c
	}
	if conf.IsSet(KeyStrict) {
		c.Strict = conf.GetBool(KeyStrict)
	}
	if conf.IsSet(KeySparseExport) {
		c.SparseExport = conf.GetBool(KeySparseExport)
	}
	if conf.IsSet(KeyTieBreak) {
		switch strings.ToLower(conf.GetString(KeyTieBreak)) {
		case "reverse":
			c.TieBreak = TieBreakReverse
		case "serial", "":
			c.TieBreak = TieBreakSerial
		default:
			tracer().Infof("unknown tie-break policy %q, using serial", conf.GetString(KeyTieBreak))
		}
	}
	tracer().Debugf("configuration: %+v", c)
	return c
}
