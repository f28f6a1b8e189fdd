package render

import (
	"encoding/json"
	"html/template"
	"io"
)

// pageTemplate is a standalone page drawing the document with vis-network.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Heading}}</title>
<script src="https://unpkg.com/vis-network@9.1.9/standalone/umd/vis-network.min.js"></script>
<style>
html, body { margin: 0; height: 100%; font-family: sans-serif; }
h1 { margin: 0; padding: 8px; font-size: 16px; text-align: center; }
#network { width: 100%; height: calc(100% - 40px); }
</style>
</head>
<body>
<h1>{{.Heading}}</h1>
<div id="network"></div>
<script>
const doc = {{.Data}};
new vis.Network(
  document.getElementById("network"),
  { nodes: new vis.DataSet(doc.nodes), edges: new vis.DataSet(doc.edges) },
  { edges: { smooth: { type: "curvedCW", roundness: 0.2 } }, physics: { stabilization: true } }
);
</script>
</body>
</html>
`))

// WriteHTML writes doc as a standalone HTML page.
func WriteHTML(w io.Writer, doc Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	return pageTemplate.Execute(w, struct {
		Heading string
		Data    template.JS
	}{
		Heading: doc.Heading,
		Data:    template.JS(data),
	})
}
