// SPDX-License-Identifier: MIT
// Package: lfrbench/export
//
// gml.go — GML writer and round-trip reader for the fixed schema.
//
// Writer contract:
//   - Nodes are emitted in ascending id order, edges in ascending
//     (source, then target) discovery order over Neighbors; undirected
//     edges are deduplicated by canonical (min,max) key. Output is
//     byte-stable for equal inputs.
//   - Floats are rendered with strconv 'g' formatting (shortest exact).
//
// Reader contract:
//   - Accepts exactly the writer's structure with whitespace slack.
//   - Unknown keys are ignored; structural violations return ErrBadFormat.

package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lfrbench/core"
	"github.com/katalvlaran/lfrbench/lfr"
)

// ErrNotGenerated indicates the generator has not completed a run, so
// there is no community assignment to serialize.
var ErrNotGenerated = errors.New("export: generator has not produced a graph")

// ErrBadFormat indicates input that does not follow the fixed schema.
// Usage: errors.Is(err, ErrBadFormat) to reject the file.
var ErrBadFormat = errors.New("export: malformed input")

// gmlComment is part of the fixed header; changing it breaks downstream
// consumers that key on it.
const gmlComment = "LFR Benchmark Network"

// EdgeType labels for the type attribute.
const (
	EdgeTypeIntra = "intra"
	EdgeTypeInter = "inter"
)

// GMLNode is one parsed node block.
type GMLNode struct {
	ID        int
	Label     string
	Community int
	Degree    int
}

// GMLEdge is one parsed edge block.
type GMLEdge struct {
	Source int
	Target int
	Type   string
}

// GMLDocument is a parsed GML file: the graph header plus all blocks.
type GMLDocument struct {
	Directed  bool
	Comment   string
	AvgDegree float64
	Mu        float64
	Nodes     []GMLNode
	Edges     []GMLEdge
}

// WriteGML serializes g with the community assignment and labels of gen.
// Complexity: O(N + E).
func WriteGML(w io.Writer, g core.Graph, gen *lfr.Generator) error {
	if !gen.Generated() {
		return fmt.Errorf("WriteGML: %w", ErrNotGenerated)
	}
	membership := gen.Membership()
	bw := bufio.NewWriter(w)

	directedFlag := 0
	if g.Directed() {
		directedFlag = 1
	}
	fmt.Fprintln(bw, "graph [")
	fmt.Fprintf(bw, "  directed %d\n", directedFlag)
	fmt.Fprintf(bw, "  comment %q\n", gmlComment)
	fmt.Fprintf(bw, "  avgDegree %s\n", formatFloat(gen.AvgDegree()))
	fmt.Fprintf(bw, "  mu %s\n", formatFloat(gen.Params().Mu))
	fmt.Fprintln(bw)

	for _, u := range g.Nodes() {
		fmt.Fprintln(bw, "  node [")
		fmt.Fprintf(bw, "    id %d\n", u)
		fmt.Fprintf(bw, "    label %q\n", gen.Label(u))
		fmt.Fprintf(bw, "    community %d\n", membership[u])
		fmt.Fprintf(bw, "    degree %d\n", g.Degree(u))
		fmt.Fprintln(bw, "  ]")
	}
	fmt.Fprintln(bw)

	for _, e := range uniqueEdges(g) {
		edgeType := EdgeTypeInter
		if membership[e[0]] == membership[e[1]] {
			edgeType = EdgeTypeIntra
		}
		fmt.Fprintln(bw, "  edge [")
		fmt.Fprintf(bw, "    source %d\n", e[0])
		fmt.Fprintf(bw, "    target %d\n", e[1])
		fmt.Fprintf(bw, "    type %q\n", edgeType)
		fmt.Fprintln(bw, "  ]")
	}

	fmt.Fprintln(bw, "]")
	return bw.Flush()
}

// WriteGMLGraph serializes a bare topology with no community metadata:
// node blocks carry id, label and degree, edge blocks source and target.
// Used for graphs that did not come out of the benchmark pipeline.
func WriteGMLGraph(w io.Writer, g core.Graph) error {
	bw := bufio.NewWriter(w)

	directedFlag := 0
	if g.Directed() {
		directedFlag = 1
	}
	fmt.Fprintln(bw, "graph [")
	fmt.Fprintf(bw, "  directed %d\n", directedFlag)
	fmt.Fprintln(bw)

	for _, u := range g.Nodes() {
		fmt.Fprintln(bw, "  node [")
		fmt.Fprintf(bw, "    id %d\n", u)
		fmt.Fprintf(bw, "    label %q\n", strconv.Itoa(u))
		fmt.Fprintf(bw, "    degree %d\n", g.Degree(u))
		fmt.Fprintln(bw, "  ]")
	}
	fmt.Fprintln(bw)

	for _, e := range uniqueEdges(g) {
		fmt.Fprintln(bw, "  edge [")
		fmt.Fprintf(bw, "    source %d\n", e[0])
		fmt.Fprintf(bw, "    target %d\n", e[1])
		fmt.Fprintln(bw, "  ]")
	}

	fmt.Fprintln(bw, "]")
	return bw.Flush()
}

// ReadGML parses a document previously written by WriteGML.
func ReadGML(r io.Reader) (*GMLDocument, error) {
	doc := &GMLDocument{}
	scanner := bufio.NewScanner(r)

	// Block context: "" (header), "node" or "edge".
	block := ""
	var node GMLNode
	var edge GMLEdge
	sawGraph := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		key := fields[0]

		switch {
		case key == "graph":
			sawGraph = true
		case line == "node [":
			block, node = "node", GMLNode{}
		case line == "edge [":
			block, edge = "edge", GMLEdge{}
		case line == "]":
			switch block {
			case "node":
				doc.Nodes = append(doc.Nodes, node)
			case "edge":
				doc.Edges = append(doc.Edges, edge)
			}
			block = ""
		default:
			if len(fields) != 2 {
				return nil, fmt.Errorf("ReadGML: line %q: %w", line, ErrBadFormat)
			}
			if err := doc.setField(block, key, strings.TrimSpace(fields[1]), &node, &edge); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ReadGML: %w", err)
	}
	if !sawGraph {
		return nil, fmt.Errorf("ReadGML: missing graph block: %w", ErrBadFormat)
	}
	return doc, nil
}

// setField routes one "key value" pair into the current block.
func (doc *GMLDocument) setField(block, key, value string, node *GMLNode, edge *GMLEdge) error {
	var err error
	switch block {
	case "":
		switch key {
		case "directed":
			doc.Directed = value == "1"
		case "comment":
			doc.Comment = unquote(value)
		case "avgDegree":
			doc.AvgDegree, err = strconv.ParseFloat(value, 64)
		case "mu":
			doc.Mu, err = strconv.ParseFloat(value, 64)
		}
	case "node":
		switch key {
		case "id":
			node.ID, err = strconv.Atoi(value)
		case "label":
			node.Label = unquote(value)
		case "community":
			node.Community, err = strconv.Atoi(value)
		case "degree":
			node.Degree, err = strconv.Atoi(value)
		}
	case "edge":
		switch key {
		case "source":
			edge.Source, err = strconv.Atoi(value)
		case "target":
			edge.Target, err = strconv.Atoi(value)
		case "type":
			edge.Type = unquote(value)
		}
	}
	if err != nil {
		return fmt.Errorf("ReadGML: %s %s=%q: %w", block, key, value, ErrBadFormat)
	}
	return nil
}

// uniqueEdges enumerates each edge once: ordered pairs for directed
// graphs, canonical (min,max) pairs for undirected, in ascending
// (source, target) order.
func uniqueEdges(g core.Graph) [][2]int {
	var out [][2]int
	directed := g.Directed()
	seen := make(map[[2]int]struct{})
	for _, u := range g.Nodes() {
		for _, v := range g.Neighbors(u) {
			key := [2]int{u, v}
			if !directed && v < u {
				key = [2]int{v, u}
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, [2]int{u, v})
		}
	}
	return out
}

// unquote strips one layer of double quotes if present.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// formatFloat renders floats in shortest-exact form ("10", "0.2").
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
