package game

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Validate recomputes groups, liberties, neighbour counters, the empty list
// and the hash from the raw colours and reports every mismatch with the
// incrementally maintained state. It is meant for tests and debug runs.
func (b *Board) Validate() error {
	var errs error
	report := func(format string, args ...interface{}) {
		errs = multierror.Append(errs, errors.Wrapf(ErrInconsistent, format, args...))
	}

	noGroup := len(b.state)
	visited := make([]bool, len(b.state))
	var hash uint64
	var empties int

	for v, c := range b.state {
		switch c {
		case Invalid:
			if b.nbr[v] != 0 {
				report("border vertex %d has neighbour counts %#x", v, b.nbr[v])
			}
			continue
		case Empty:
			empties++
			if b.parent[v] != noGroup {
				report("empty %s belongs to group %d", b.MoveToText(v), b.parent[v])
			}
			if idx := b.emptyIdx[v]; idx >= len(b.empty) || b.empty[idx] != v {
				report("empty %s missing from the empty list", b.MoveToText(v))
			}
		default:
			hash ^= zobristStones[c][v]
		}

		var want uint16
		for _, d := range b.dirs {
			if n := b.state[v+d]; n == Invalid {
				want += nbrUnit(Black) | nbrUnit(White)
			} else {
				want += nbrUnit(n)
			}
		}
		if b.nbr[v] != want {
			report("%s has neighbour counts %#x, want %#x", b.MoveToText(v), b.nbr[v], want)
		}

		if c.IsStone() && !visited[v] {
			b.validateGroup(v, visited, report)
		}
	}

	if empties != len(b.empty) {
		report("empty list holds %d vertices, board has %d", len(b.empty), empties)
	}
	if hash != b.hash {
		report("hash is %#x, recomputed %#x", b.hash, hash)
	}
	return errs
}

// validateGroup flood fills the group at start and checks its bookkeeping.
func (b *Board) validateGroup(start int, visited []bool, report func(string, ...interface{})) {
	color := b.state[start]
	rep := b.parent[start]
	group := []int{start}
	libs := make(map[int]struct{})
	visited[start] = true
	for i := 0; i < len(group); i++ {
		v := group[i]
		if b.parent[v] != rep {
			report("%s has parent %d, group %d", b.MoveToText(v), b.parent[v], rep)
		}
		for _, d := range b.dirs {
			ai := v + d
			switch b.state[ai] {
			case Empty:
				libs[ai] = struct{}{}
			case color:
				if !visited[ai] {
					visited[ai] = true
					group = append(group, ai)
				}
			}
		}
	}

	if rep < 0 || rep >= len(b.state) || b.parent[rep] != rep {
		report("group at %s has representative %d outside itself", b.MoveToText(start), rep)
		return
	}
	if b.stones[rep] != len(group) {
		report("group at %s counts %d stones, has %d", b.MoveToText(rep), b.stones[rep], len(group))
	}
	if b.libs[rep] != len(libs) {
		report("group at %s counts %d liberties, has %d", b.MoveToText(rep), b.libs[rep], len(libs))
	}

	ring := 0
	pos := rep
	for {
		ring++
		if b.state[pos] != color || b.parent[pos] != rep {
			report("ring of group %s passes through %s", b.MoveToText(rep), b.MoveToText(pos))
			return
		}
		pos = b.next[pos]
		if pos == rep || ring > len(group) {
			break
		}
	}
	if ring != len(group) {
		report("ring of group %s holds %d stones, group has %d", b.MoveToText(rep), ring, len(group))
	}
}
