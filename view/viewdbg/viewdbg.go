/*
Package viewdbg implements helpers to debug trees of trace views.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package viewdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/inkml/view"
	tp "github.com/xlab/treeprint"
)

// Print returns a textual representation of the tree below v, one view
// per line.
func Print(v *view.View) string {
	p := tp.New()
	branches := make(map[*view.View]tp.Tree)
	v.Walk(func(w, parent *view.View, position int) error {
		b, ok := branches[parent]
		if !ok || w == v {
			b = p
		}
		if w.IsLeaf() {
			b.AddNode(label(w))
		} else {
			branches[w] = b.AddBranch(label(w))
		}
		return nil
	})
	return p.String()
}

func label(v *view.View) string {
	s := fmt.Sprintf("#%d %s", v.Serial(), v.Kind())
	if !v.IsLeaf() {
		s += fmt.Sprintf(" (%d)", v.Size())
	}
	if v.ID != "" {
		s += " " + v.ID
	}
	if t := v.Trace(); t != nil {
		s += " -> " + t.ID
	}
	if str := v.String(); str != "" {
		s += fmt.Sprintf(" %q", str)
	}
	return s
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a tree of trace views. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the tree and a Writer.
func ToGraphViz(v *view.View, w io.Writer) error {
	tmpl, err := template.New("views").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("viewnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(viewNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("viewedge").Parse(viewEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if err = nodes(v, w, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a view and a testing.T, it will
// create a Graphiviz image of the tree under v and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(v *view.View, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "views.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing view digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(v, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	V    *view.View
	Name string
}

func nameOf(v *view.View) string {
	return fmt.Sprintf("view%05d", v.Serial())
}

func nodes(v *view.View, w io.Writer, gparams *graphParamsType) error {
	if err := gparams.NodeTmpl.Execute(w, &node{v, nameOf(v)}); err != nil {
		return err
	}
	for _, ch := range v.Children() {
		if err := nodes(ch, w, gparams); err != nil {
			return err
		}
		e := edge{node{v, nameOf(v)}, node{ch, nameOf(ch)}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

type edge struct {
	N1, N2 node
}

func shortText(v *view.View) string {
	s := label(v)
	if len(s) > 24 {
		s = s[:24] + "..."
	}
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	return fmt.Sprintf("%q", s)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "TB"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const viewNodeTmpl = `{{ if .V.IsLeaf }}
{{ .Name }}	[ label={{ shortstring .V }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ shortstring .V }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const viewEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
