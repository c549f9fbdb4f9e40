package searcher

import (
	"hearts/game"
	"math"
	"math/rand/v2"
)

const rootID = 0

// node is an entry of the search arena. The parent is a back-reference by
// index; children are owned through their indices.
type node struct {
	parent   int       // -1 for the root
	card     game.Card // Card that led from the parent to this node
	seat     int       // Seat that played card
	children []int
	rewards  float64
	visits   int
}

// tree owns every node built during one decision and is discarded afterwards.
type tree struct {
	nodes       []node
	exploration float64
}

func newTree(exploration float64) *tree {
	return &tree{
		nodes:       []node{{parent: -1, seat: -1}},
		exploration: exploration,
	}
}

func (t *tree) add(parent int, card game.Card, seat int) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{parent: parent, card: card, seat: seat})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

// expandAll adds one child per move. Used for the root, whose moves are the
// deciding player's real legal cards and do not depend on the determinization.
func (t *tree) expandAll(id int, moves game.Hand, seat int) {
	for _, card := range moves {
		t.add(id, card, seat)
	}
}

// selectOrExpand advances one level from node id under state. An untried legal
// action is expanded into a new child (expanded=true); otherwise the UCT-best
// child compatible with state is selected. A terminal state returns id itself.
func (t *tree) selectOrExpand(id int, state game.State, rng *rand.Rand) (child int, next game.State, expanded bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 { // Terminal node
		return id, state, false
	}

	untried, compatible := t.partition(id, moves)
	if len(untried) > 0 { // Expandable node
		card := untried[rng.IntN(len(untried))]
		child := t.add(id, card, state.Player())
		return child, state.Play(card), true
	}

	// Fully expanded for this determinization
	child = t.pickChild(id, compatible)
	return child, state.Play(t.nodes[child].card), false
}

// partition splits moves into those without a child yet and the existing
// children whose card is legal under the current determinization.
func (t *tree) partition(id int, moves game.Hand) (untried game.Hand, compatible []int) {
	for _, card := range moves {
		found := false
		for _, c := range t.nodes[id].children {
			if t.nodes[c].card == card {
				compatible = append(compatible, c)
				found = true
				break
			}
		}
		if !found {
			untried = append(untried, card)
		}
	}
	return untried, compatible
}

// pickChild returns the candidate with the highest UCT score. Unvisited
// candidates win immediately; ties keep the first candidate.
func (t *tree) pickChild(id int, candidates []int) int {
	if len(candidates) == 0 {
		panic("node has no candidate children")
	}
	for _, c := range candidates {
		if t.nodes[c].visits == 0 {
			return c
		}
	}

	policy := newUCT(t.exploration, float64(t.nodes[id].visits))
	best := -1
	bestScore := math.Inf(-1)
	for _, c := range candidates {
		child := &t.nodes[c]
		score := policy.evaluate(child.rewards, float64(child.visits))
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}

// backup adds reward and a visit to every node from id up to the root.
func (t *tree) backup(id int, reward float64) {
	for id >= 0 {
		n := &t.nodes[id]
		n.rewards += reward
		n.visits++
		id = n.parent
	}
}

// bestMove returns the root child card with the most visits, first seen on ties.
func (t *tree) bestMove() (game.Card, bool) {
	root := t.nodes[rootID]
	if len(root.children) == 0 {
		return game.Card{}, false
	}

	best := root.children[0]
	for _, c := range root.children[1:] {
		if t.nodes[c].visits > t.nodes[best].visits {
			best = c
		}
	}
	return t.nodes[best].card, true
}
