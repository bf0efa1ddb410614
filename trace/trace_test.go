package trace

import (
	"errors"
	"testing"

	"github.com/npillmayer/inkml"
	"github.com/npillmayer/inkml/channel"
	"github.com/npillmayer/inkml/markup"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const groupXML = `<traceGroup id="g1">
  <trace id="t1">10 0, 20 0, 30 0</trace>
  <traceGroup id="g2">
    <trace id="t2">0 10, 0 20</trace>
  </traceGroup>
</traceGroup>`

func TestStoreGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkml.trace")
	defer teardown()
	//
	s := NewStore()
	tr := New("t1", nil, [][]float64{{1, 2}})
	require.NoError(t, s.Put(tr))
	got, err := s.Get("#t1")
	require.NoError(t, err)
	assert.Same(t, tr, got)
	_, err = s.Get("t7")
	assert.True(t, errors.Is(err, inkml.ErrNotFound))
	err = s.Put(New("t1", nil, nil))
	assert.True(t, errors.Is(err, inkml.ErrCompliance), "duplicate id must be rejected")
}

func TestStoreAnonymousTrace(t *testing.T) {
	s := NewStore()
	tr := New("", nil, nil)
	require.NoError(t, s.Put(tr))
	assert.NotEmpty(t, tr.ID)
	assert.True(t, s.Has(tr.ID))
}

func TestReadGroup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkml.trace")
	defer teardown()
	//
	s := NewStore()
	g, err := s.ReadGroup(markup.MustParse(groupXML), nil)
	require.NoError(t, err)
	assert.Equal(t, KindGroup, g.Kind())
	assert.Equal(t, 5, g.PointCount())
	assert.Equal(t, []string{"t1", "t2", "g2", "g1"}, s.IDs())
	leaves := g.Leaves()
	require.Len(t, leaves, 2)
	assert.Equal(t, "t2", leaves[1].ID)
	pts := g.Points()
	require.Len(t, pts, 5)
	assert.Equal(t, 30.0, pts[2].X)
	assert.Equal(t, 20.0, pts[4].Y)
	assert.False(t, pts[0].Timed)
}

func TestStoreDeleteDetachesFromGroups(t *testing.T) {
	s := NewStore()
	g, err := s.ReadGroup(markup.MustParse(groupXML), nil)
	require.NoError(t, err)
	before := g.Members()
	assert.True(t, s.Delete("#t1"))
	require.Len(t, before, 2, "members handed out earlier must stay untouched")
	assert.Equal(t, "t1", before[0].ID)
	assert.Equal(t, "g2", before[1].ID)
	assert.False(t, s.Has("t1"))
	assert.False(t, s.Delete("t1"))
	assert.Len(t, g.Members(), 1)
	assert.Equal(t, 2, g.PointCount())
	assert.Equal(t, []string{"t2", "g2", "g1"}, s.IDs())
}

func TestReadTraceWithFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkml.trace")
	defer teardown()
	//
	x := channel.New("X", channel.Integer)
	y := channel.New("Y", channel.Integer)
	tm := channel.New("T", channel.Decimal)
	require.NoError(t, x.SetMax("100"))
	f := channel.NewFormat("f", x, y, tm)
	s := NewStore()
	s.AddFormat(f)
	tr, err := s.ReadTrace(markup.MustParse(`<trace id="a" contextRef="#ctx">1 2 0.5, 3 4 1.5</trace>`), f)
	require.NoError(t, err)
	assert.Equal(t, "ctx", tr.ContextRef)
	v, ok := tr.Value(1, "t")
	require.True(t, ok)
	assert.Equal(t, 1.5, v)
	pts := tr.Points()
	assert.True(t, pts[0].Timed)
	//
	s.Strict = true
	_, err = s.ReadTrace(markup.MustParse(`<trace id="b">101 2 0</trace>`), f)
	assert.True(t, errors.Is(err, inkml.ErrCompliance))
	s.Strict = false
	_, err = s.ReadTrace(markup.MustParse(`<trace id="c">101 2 0</trace>`), f)
	assert.NoError(t, err)
	//
	got, err := s.Format("#f")
	require.NoError(t, err)
	assert.Same(t, f, got)
	_, err = s.Format("nope")
	assert.True(t, errors.Is(err, inkml.ErrNotFound))
}

func TestMarkView(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.MarkView("#v1"))
	v, err := s.Get("v1")
	require.NoError(t, err)
	assert.True(t, v.IsView())
	assert.False(t, v.IsLeaf())
	assert.Nil(t, v.Points())
}

func TestTraceExport(t *testing.T) {
	s := NewStore()
	g, err := s.ReadGroup(markup.MustParse(groupXML), nil)
	require.NoError(t, err)
	el := g.ExportTo(nil)
	t.Logf("exported: %s", markup.ToString(el))
	r := NewStore()
	h, err := r.ReadGroup(markup.Wrap(el), nil)
	require.NoError(t, err)
	assert.Equal(t, g.PointCount(), h.PointCount())
	assert.Equal(t, s.IDs(), r.IDs())
	t1, _ := r.Get("t1")
	assert.Equal(t, []float64{20, 0}, t1.Sample(1))
}
