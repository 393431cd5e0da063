// Package tree builds a nested folder structure from a flat list of
// directory paths.
package tree

import (
	"encoding/json"
	"strings"
)

// Folder is one node of a directory tree, keyed by child folder name.
type Folder struct {
	Children map[string]*Folder
}

// MarshalJSON serializes a folder as its children map, so the tree renders
// as nested objects keyed by folder name.
func (f *Folder) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Children)
}

func newFolder() *Folder {
	return &Folder{Children: make(map[string]*Folder)}
}

// FromPaths builds a tree from relative slash-separated directory paths.
// An empty path contributes nothing, so the repository root itself does not
// show up as a child.
func FromPaths(paths []string) *Folder {
	root := newFolder()
	for _, p := range paths {
		if p == "" || p == "." {
			continue
		}
		current := root
		for _, component := range strings.Split(p, "/") {
			child, ok := current.Children[component]
			if !ok {
				child = newFolder()
				current.Children[component] = child
			}
			current = child
		}
	}
	return root
}
