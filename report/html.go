package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/goccy/go-json"
)

// htmlDoc is the minimal self-contained document spec.md §6 asks for:
// each chart rendered as its JSON descriptor inside a tagged <script>
// block, readable by a human and parseable by whatever plotting script
// a caller bundles alongside this output. The actual interactive
// plotting/hexbin/heatmap JS is an external collaborator (spec.md §1
// "Out of scope") this module does not ship.
const htmlDoc = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>pangaea report: {{.Graph}}</title>
</head>
<body>
<h1>pangaea report</h1>
<p>graph: {{.Graph}}</p>
<p>run: {{.RunID}}</p>
{{range .Charts}}
<section data-chart-kind="{{.Kind}}" data-chart-id="{{.ID}}">
<h2>{{.Name}}</h2>
<script type="application/json">{{.JSON}}</script>
</section>
{{end}}
</body>
</html>
`

var tmpl = template.Must(template.New("report").Parse(htmlDoc))

type htmlChart struct {
	ID, Name string
	Kind     ChartKind
	JSON     template.JS
}

type htmlData struct {
	Graph  string
	RunID  string
	Charts []htmlChart
}

// RenderHTML writes b as a single self-contained HTML document to w.
func RenderHTML(w io.Writer, b *Bundle) error {
	data := htmlData{Graph: b.Graph, RunID: b.RunID}
	for _, c := range b.Charts {
		raw, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedBundle, err)
		}
		data.Charts = append(data.Charts, htmlChart{ID: c.ID, Name: c.Name, Kind: c.Kind, JSON: template.JS(raw)})
	}

	return tmpl.Execute(w, data)
}
