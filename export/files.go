// SPDX-License-Identifier: MIT
// Package: lfrbench/export
//
// files.go — filesystem convenience wrappers around the stream writers.

package export

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lfrbench/core"
	"github.com/katalvlaran/lfrbench/lfr"
)

// WriteGMLFile writes the graph in GML form to path, creating or truncating it.
func WriteGMLFile(path string, g core.Graph, gen *lfr.Generator) error {
	return writeFile(path, func(f *os.File) error { return WriteGML(f, g, gen) })
}

// WriteGMLGraphFile writes a bare topology (no community metadata) to path.
func WriteGMLGraphFile(path string, g core.Graph) error {
	return writeFile(path, func(f *os.File) error { return WriteGMLGraph(f, g) })
}

// WriteCSVFiles writes the node and edge tables to nodesPath and edgesPath.
func WriteCSVFiles(nodesPath, edgesPath string, g core.Graph, gen *lfr.Generator) error {
	if err := writeFile(nodesPath, func(f *os.File) error { return WriteNodesCSV(f, g, gen) }); err != nil {
		return err
	}
	return writeFile(edgesPath, func(f *os.File) error { return WriteEdgesCSV(f, g, gen) })
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err = write(f); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}
