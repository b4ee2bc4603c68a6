// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"io"
	"strings"
	"text/template"

	"github.com/tfctl/sbsdiff/internal/differ"
)

// htmlEscaper replaces only the three characters that can break element
// content. Quotes are left alone.
var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

var htmlTemplate = template.Must(template.New("diff").Funcs(template.FuncMap{
	"escape": Escape,
	"markup": sideMarkup,
	"lineNo": lineNo,
}).Parse(`<style id="diff-editor-theme">
.diff-editor .equal {
  background: {{.Theme.EqualBg}};
}
.diff-editor .delete {
  background: {{.Theme.DeleteBg}};
  color: #b30000;
}
.diff-editor .insert {
  background: {{.Theme.InsertBg}};
  color: #006400;
}
.diff-editor .update {
  background: {{.Theme.UpdateBg}};
  color: #8a6d00;
}
.word-del {
  background: {{.Theme.WordDelBg}};
  color: {{.Theme.WordDelColor}};
  font-weight: 600;
}
.word-ins {
  background: {{.Theme.WordInsBg}};
  color: {{.Theme.WordInsColor}};
  font-weight: 600;
}
.diff-editor .row:hover {
  filter: brightness(0.98);
}
</style>
<div class="diff-editor">
{{- if .Titles}}
  <div class="row header">
    <div class="side left">{{escape .LeftTitle}}</div>
    <div class="side right">{{escape .RightTitle}}</div>
  </div>
{{- end}}
{{- range .Rows}}
  <div class="row">
    <div class="side left {{.Left.Type}}">{{if $.Numbers}}<span class="line-no">{{lineNo .Left}}</span>{{end}}<span class="text">{{markup .Left}}</span></div>
    <div class="side right {{.Right.Type}}">{{if $.Numbers}}<span class="line-no">{{lineNo .Right}}</span>{{end}}<span class="text">{{markup .Right}}</span></div>
  </div>
{{- end}}
{{- if .Footer}}
  <div class="summary">{{escape .Footer}}</div>
{{- end}}
</div>
`))

type htmlPage struct {
	Theme      htmlTheme
	Titles     bool
	Numbers    bool
	LeftTitle  string
	RightTitle string
	Rows       []differ.Row
	Footer     string
}

func writeHTML(w io.Writer, rows []differ.Row, opts Options) error {
	page := htmlPage{
		Theme:      getHTMLTheme("colors"),
		Titles:     opts.Titles,
		Numbers:    opts.Numbers,
		LeftTitle:  opts.LeftTitle,
		RightTitle: opts.RightTitle,
		Rows:       rows,
	}
	if opts.Summary {
		page.Footer = Footer(rows)
	}
	return htmlTemplate.Execute(w, page)
}

// Escape replaces &, < and > with their entities.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

// Markup renders segments as escaped HTML, wrapping changed tokens in
// word-del and word-ins spans.
func Markup(segments []differ.Segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		switch seg.Op {
		case differ.WordDelete:
			sb.WriteString(`<span class="word-del">` + Escape(seg.Text) + `</span>`)
		case differ.WordInsert:
			sb.WriteString(`<span class="word-ins">` + Escape(seg.Text) + `</span>`)
		default:
			sb.WriteString(Escape(seg.Text))
		}
	}
	return sb.String()
}

func sideMarkup(s differ.Side) string {
	if !s.Present() {
		return ""
	}
	if s.Segments != nil {
		return Markup(s.Segments)
	}
	return Escape(s.Text)
}
