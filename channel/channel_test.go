package channel

import (
	"errors"
	"testing"

	"github.com/npillmayer/inkml"
	"github.com/npillmayer/inkml/markup"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkml.channel")
	defer teardown()
	//
	inputs := map[Kind][]string{
		Integer: {"0", "17", "-42", "2147483647", "-2147483648"},
		Decimal: {"0", "1.5", "-0.125", "1234567.875"},
		Double:  {"0", "1e-07", "3.141592653589793", "-2.5e+10"},
		Boolean: {"T", "F"},
	}
	for kind, texts := range inputs {
		for _, s := range texts {
			v, err := kind.Parse(s)
			require.NoError(t, err, "%s: parse %q", kind, s)
			out := kind.Format(v)
			assert.Equal(t, s, out, "%s: format(parse(%q))", kind, s)
			w, err := kind.Parse(out)
			require.NoError(t, err)
			assert.Equal(t, v, w, "%s: parse(format(v)) for %q", kind, s)
			assert.Equal(t, v, kind.FromCanonical(kind.ToCanonical(v)),
				"%s: canonical round trip of %q", kind, s)
		}
	}
}

func TestIntegerRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkml.channel")
	defer teardown()
	//
	for _, s := range []string{"2147483648", "-2147483649", "9007199254740993"} {
		_, err := Integer.Parse(s)
		assert.True(t, errors.Is(err, inkml.ErrParse), "expected %q to be out of range", s)
	}
	assert.Equal(t, Int(2147483647), Integer.FromCanonical(1e12))
	assert.Equal(t, Int(-2147483648), Integer.FromCanonical(-1e12))
}

func TestCanonicalRendering(t *testing.T) {
	v, err := Integer.Parse(" +007 ")
	require.NoError(t, err)
	assert.Equal(t, "7", Integer.Format(v))
	v, err = Boolean.Parse("true")
	require.NoError(t, err)
	assert.Equal(t, "T", Boolean.Format(v))
	v, err = Decimal.Parse("2.50")
	require.NoError(t, err)
	assert.Equal(t, "2.5", Decimal.Format(v))
}

func TestIntegerTruncates(t *testing.T) {
	assert.Equal(t, Int(3), Integer.FromCanonical(3.9))
	assert.Equal(t, Int(-3), Integer.FromCanonical(-3.9))
	assert.Equal(t, Bool(true), Boolean.FromCanonical(0.2))
	assert.Equal(t, "3", Integer.Format(Float(3.7)))
}

func TestIntegerParseError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkml.channel")
	defer teardown()
	//
	c := New("X", Integer)
	_, err := c.Parse("1.5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, inkml.ErrParse))
	var perr *inkml.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "X", perr.Channel)
	assert.Error(t, c.SetMax("ten"))
}

func TestIntegerUnsetBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkml.channel")
	defer teardown()
	//
	el := markup.MustParse(`<channel name="X" type="integer" min="" max="10"/>`)
	c, err := FromMarkup(el)
	require.NoError(t, err)
	assert.False(t, c.MinSet(), "empty min must leave the bound unset")
	assert.True(t, c.MaxSet())
	hi, ok := c.Max().Get()
	require.True(t, ok)
	assert.Equal(t, Int(10), hi)
	assert.Equal(t, Int(0), c.Default())
	assert.NoError(t, c.Check(Int(-1000)), "unset min is no constraint")
	assert.Error(t, c.Check(Int(11)))
}

func TestDefaultReset(t *testing.T) {
	c := New("F", Integer)
	require.NoError(t, c.SetDefault("12"))
	assert.Equal(t, Int(12), c.Default())
	require.NoError(t, c.SetDefault(""))
	assert.Equal(t, Int(0), c.Default())
	require.NoError(t, c.SetMin("0"))
	assert.True(t, c.MinSet(), "zero is a bound, not unset")
	require.NoError(t, c.SetMin(""))
	assert.False(t, c.MinSet())
}

func TestValidateBounds(t *testing.T) {
	_, err := FromMarkup(markup.MustParse(`<channel name="X" type="integer" min="5" max="1"/>`))
	assert.True(t, errors.Is(err, inkml.ErrCompliance))
	_, err = FromMarkup(markup.MustParse(`<channel type="integer"/>`))
	assert.True(t, errors.Is(err, inkml.ErrCompliance))
	_, err = FromMarkup(markup.MustParse(`<channel name="X" type="complex"/>`))
	assert.True(t, errors.Is(err, inkml.ErrCompliance))
}

func TestSparseExport(t *testing.T) {
	c := New("X", Integer)
	el := c.ExportTo(nil, true)
	assert.Nil(t, el.SelectAttr("default"), "zero default must be omitted")
	el = c.ExportTo(nil, false)
	assert.Equal(t, "0", el.SelectAttrValue("default", ""))
	require.NoError(t, c.SetDefault("5"))
	require.NoError(t, c.SetMax("10"))
	el = c.ExportTo(nil, true)
	assert.Equal(t, "5", el.SelectAttrValue("default", ""))
	assert.Equal(t, "10", el.SelectAttrValue("max", ""))
	assert.Nil(t, el.SelectAttr("min"))
	//
	b := New("B", Boolean)
	assert.Nil(t, b.ExportTo(nil, true).SelectAttr("default"))
}
