// Package server exposes the layout pipeline over HTTP.
//
// # Endpoints
//
//	GET  /healthz                 liveness and build version
//	POST /v1/layout               lay out a document, return one artifact
//
// The layout endpoint reads a JSON document body by default. A Content-Type
// containing "toml" (or ?input=toml) switches the decoder. Query parameters:
//
//   - width: proposed root width; falls back to the document's width
//   - format: json (default), svg, png, dot, graph or text
//   - measurer: cell (default) or face
//
// Every request compiles its own tree, so concurrent requests never share
// layout state. Errors are JSON objects carrying the stable codes from the
// errors package.
package server
