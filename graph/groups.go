// Package graph exports the group structure of a position for diagnostics.
package graph

import (
	"fmt"
	"sort"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"

	"github.com/baduk/game"
)

const graphName = "groups"

// Groups builds an undirected graph with one node per group of stones and an
// edge between every pair of touching groups of opposite colours. Nodes are
// named after the group's lowest vertex and labelled with stones and liberties.
func Groups(b *game.Board) (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := g.SetDir(false); err != nil {
		return nil, errors.WithStack(err)
	}

	names := make(map[int]string) // representative -> node name
	var reps []int
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			v := b.VertexOf(x, y)
			rep := b.GroupOf(v)
			if rep < 0 {
				continue
			}
			if _, ok := names[rep]; ok {
				continue
			}
			names[rep] = b.MoveToText(v)
			reps = append(reps, rep)
		}
	}

	for _, rep := range reps {
		if err := g.AddNode(graphName, names[rep], nodeAttrs(b, rep)); err != nil {
			return nil, errors.Wrapf(err, "node %s", names[rep])
		}
	}

	type pair struct{ a, b string }
	seen := make(map[pair]struct{})
	var edges []pair
	for _, rep := range reps {
		color := b.At(rep)
		for _, v := range b.Stones(rep) {
			x, y := b.CoordinatesOf(v)
			for _, n := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
				nv := b.VertexOf(n[0], n[1])
				if b.At(nv) != color.Opponent() {
					continue
				}
				p := pair{names[rep], names[b.GroupOf(nv)]}
				if p.a > p.b {
					p.a, p.b = p.b, p.a
				}
				if _, ok := seen[p]; ok {
					continue
				}
				seen[p] = struct{}{}
				edges = append(edges, p)
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].a != edges[j].a {
			return edges[i].a < edges[j].a
		}
		return edges[i].b < edges[j].b
	})
	for _, e := range edges {
		if err := g.AddEdge(e.a, e.b, false, nil); err != nil {
			return nil, errors.Wrapf(err, "edge %s -- %s", e.a, e.b)
		}
	}
	return g, nil
}

// DOT renders Groups as Graphviz source.
func DOT(b *game.Board) (string, error) {
	g, err := Groups(b)
	if err != nil {
		return "", err
	}
	return g.String(), nil
}

func nodeAttrs(b *game.Board, rep int) map[string]string {
	fill, font := "black", "white"
	if b.At(rep) == game.White {
		fill, font = "white", "black"
	}
	return map[string]string{
		"label":     fmt.Sprintf("%q", fmt.Sprintf("%d stones, %d libs", b.GroupSize(rep), b.Liberties(rep))),
		"style":     "filled",
		"fillcolor": fill,
		"fontcolor": font,
	}
}
