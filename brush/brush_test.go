package brush

import (
	"errors"
	"image/color"
	"testing"

	"github.com/npillmayer/inkml"
	"github.com/npillmayer/inkml/markup"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrushCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkml.brush")
	defer teardown()
	//
	base := New("base").Set(KeyColor, "#FF0000").Set(KeyWidth, "2")
	b := New("thin")
	b.Parent = base
	b.Set(KeyWidth, "0.5")
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, b.Color())
	half := 0.5
	assert.Equal(t, dimen.DU(half*float64(dimen.PT)), b.Width())
	assert.Equal(t, 2*dimen.PT, base.Width())
	assert.Same(t, base, b.Cascade(KeyColor))
	assert.Nil(t, b.Cascade(KeyTip))
	assert.Equal(t, "ellipse", b.Tip())
	t.Logf("brush = %s", b)
}

func TestBrushDefaults(t *testing.T) {
	b := New("")
	assert.Equal(t, color.Black, b.Color())
	assert.Equal(t, dimen.PT, b.Width())
	assert.Equal(t, percent.FromInt(0), b.Transparency())
	b.Set(KeyTransparency, "255")
	assert.Equal(t, percent.FromInt(100), b.Transparency())
	b.Set(KeyWidth, "thick")
	assert.Equal(t, dimen.PT, b.Width(), "malformed width falls back to default")
}

func TestColorProperty(t *testing.T) {
	assert.Nil(t, Property("default").Color())
	assert.Equal(t, color.RGBA{0x12, 0x34, 0x56, 0xff}, Property("#123456").Color())
	assert.Equal(t, color.Black, Property("#xyzxyz").Color())
	assert.Equal(t, "#123456", ColorString(color.RGBA{0x12, 0x34, 0x56, 0xff}))
}

const definitionsXML = `<definitions>
  <brush xml:id="b0">
    <brushProperty name="color" value="#0000FF"/>
  </brush>
  <context xml:id="ctx1">
    <brush xml:id="b1" brushRef="#b0">
      <brushProperty name="width" value="3"/>
    </brush>
  </context>
  <context xml:id="ctx2" brushRef="#b0"/>
  <context xml:id="ctx3"/>
</definitions>`

func TestRegistryRead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkml.brush")
	defer teardown()
	//
	reg := NewRegistry()
	for _, el := range markup.MustParse(definitionsXML).Children() {
		require.NoError(t, reg.Read(el))
	}
	ctx1, err := reg.Context("#ctx1")
	require.NoError(t, err)
	require.True(t, ctx1.HasBrush())
	assert.Equal(t, "b1", ctx1.Brush().ID)
	assert.Equal(t, color.RGBA{0, 0, 0xff, 0xff}, ctx1.Brush().Color())
	assert.Equal(t, 3*dimen.PT, ctx1.Brush().Width())
	ctx2, _ := reg.Context("ctx2")
	assert.Equal(t, "b0", ctx2.Brush().ID)
	ctx3, _ := reg.Context("ctx3")
	assert.False(t, ctx3.HasBrush())
	assert.Nil(t, ctx3.Brush())
	_, err = reg.Context("nope")
	assert.True(t, errors.Is(err, inkml.ErrNotFound))
	assert.Equal(t, DefaultContextID, reg.Current.ID)
	//
	err = reg.Read(markup.MustParse(`<context xml:id="bad" brushRef="#missing"/>`))
	assert.True(t, errors.Is(err, inkml.ErrNotFound))
}

func TestContextExport(t *testing.T) {
	reg := NewRegistry()
	for _, el := range markup.MustParse(definitionsXML).Children() {
		require.NoError(t, reg.Read(el))
	}
	ctx1, _ := reg.Context("ctx1")
	el := ctx1.ExportTo(nil)
	t.Logf("exported: %s", markup.ToString(el))
	assert.Equal(t, "ctx1", el.SelectAttrValue("xml:id", ""))
	assert.Equal(t, "#b1", el.SelectAttrValue("brushRef", ""))
	//
	anon := NewContext("c", New("").Set(KeyTip, "rectangle"))
	el = anon.ExportTo(nil)
	bel := el.SelectElement("brush")
	require.NotNil(t, bel)
	b, err := FromMarkup(markup.Wrap(bel), nil)
	require.NoError(t, err)
	assert.Equal(t, "rectangle", b.Tip())
}
