package models

import (
	"testing"

	"github.com/qmuntal/gltf"
)

func TestRootNodes(t *testing.T) {
	doc := &gltf.Document{
		Nodes: []*gltf.Node{
			{Children: []int{1, 2}},
			{},
			{Children: []int{3}},
			{},
		},
	}
	roots := rootNodes(doc)
	if len(roots) != 1 || roots[0] != 0 {
		t.Errorf("rootNodes() = %v, want [0]", roots)
	}
}
