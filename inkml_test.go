package inkml_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/inkml"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestErrorsMatchSentinels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkml")
	defer teardown()
	//
	var err error = &inkml.ParseError{Channel: "X", Text: "x1"}
	if !errors.Is(err, inkml.ErrParse) {
		t.Errorf("expected ParseError to match ErrParse, doesn't")
	}
	err = fmt.Errorf("loading: %w", inkml.Compliance("trace", "missing id"))
	if !errors.Is(err, inkml.ErrCompliance) {
		t.Errorf("expected wrapped ComplianceError to match ErrCompliance, doesn't")
	}
	var cerr *inkml.ComplianceError
	if !errors.As(err, &cerr) || cerr.Element != "trace" {
		t.Errorf("expected to extract ComplianceError for <trace>, got %v", cerr)
	}
	err = &inkml.UnsupportedReferenceError{Ref: "v1"}
	if !errors.Is(err, inkml.ErrUnsupportedReference) {
		t.Errorf("expected UnsupportedReferenceError to match sentinel, doesn't")
	}
	err = &inkml.TreeManipulationError{Op: "add", Msg: "cycle"}
	if !errors.Is(err, inkml.ErrTreeManipulation) || errors.Is(err, inkml.ErrParse) {
		t.Errorf("expected TreeManipulationError to match only its own sentinel")
	}
}

func TestConfigDefaults(t *testing.T) {
	c := inkml.ConfigFrom(nil)
	if c.Strict || !c.SparseExport || c.TieBreak != inkml.TieBreakSerial {
		t.Errorf("unexpected default configuration %+v", c)
	}
}

func TestConfigFromSchuko(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkml")
	defer teardown()
	//
	conf := testconfig.Conf{
		inkml.KeyStrict:       "true",
		inkml.KeySparseExport: false,
		inkml.KeyTieBreak:     "Reverse",
	}
	c := inkml.ConfigFrom(conf)
	if !c.Strict {
		t.Errorf("expected strict mode to be set")
	}
	if c.SparseExport {
		t.Errorf("expected sparse export to be switched off")
	}
	if c.TieBreak != inkml.TieBreakReverse {
		t.Errorf("expected reverse tie-break, have %d", c.TieBreak)
	}
}
