package searcher

import (
	"sync"

	"gamearena/game"
)

// node is a tree node shared by the goroutines of one MCTS. rewards are
// from the perspective of player, who chose the action leading here.
type node[S any, A comparable] struct {
	sync.RWMutex
	parent     *node[S, A]
	player     game.Player
	unexplored []A
	explored   []A
	children   []*node[S, A]
	rewards    float64
	visits     float64
}

func newNode[S any, A comparable](parent *node[S, A], player game.Player, actions []A) *node[S, A] {
	return &node[S, A]{
		parent:     parent,
		player:     player,
		unexplored: actions,
		explored:   make([]A, 0, len(actions)),
		children:   make([]*node[S, A], 0, len(actions)),
	}
}

// selectOrExpand moves one step down the tree from n, whose state is state.
// It expands the next unexplored action if there is one, otherwise selects
// the child with the highest UCT score. selected is false once the walk has
// reached a new or a terminal node. The returned child carries a virtual
// loss until its backup.
func (n *node[S, A]) selectOrExpand(g game.Game[S, A], state S) (child *node[S, A], childState S, selected bool) {
	n.Lock()
	defer n.Unlock()

	if len(n.unexplored) == 0 && len(n.children) == 0 { // Terminal node
		return n, state, false
	}

	if len(n.unexplored) > 0 { // Expandable node
		action := n.unexplored[0]
		n.unexplored = n.unexplored[1:]
		mover := g.ToMove(state)
		state = g.Result(state, action)
		child = newNode(n, mover, g.Actions(state))
		n.explored = append(n.explored, action)
		n.children = append(n.children, child)
		child.applyLoss()
		return child, state, false
	}

	// Fully expanded node
	i := n.pickChild()
	child = n.children[i]
	child.applyLoss()
	return child, g.Result(state, n.explored[i]), true
}

// pickChild returns the child with the highest UCT score, the earliest on ties.
// Virtual losses count as visits so that N is at least 1.
func (n *node[S, A]) pickChild() int {
	stats := make([][2]float64, len(n.children))
	total := 0.0
	for i, child := range n.children {
		stats[i][0], stats[i][1] = child.stats()
		total += stats[i][1]
	}

	policy := newUCT(CSquared, total)
	best := 0
	bestScore := policy.evaluate(stats[0][0], stats[0][1])
	for i := 1; i < len(stats); i++ {
		if score := policy.evaluate(stats[i][0], stats[i][1]); score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

func (n *node[S, A]) stats() (rewards, visits float64) {
	n.RLock()
	defer n.RUnlock()
	return n.rewards, n.visits
}

func (n *node[S, A]) applyLoss() {
	n.Lock()
	defer n.Unlock()

	n.rewards += Loss
	n.visits++
}

// backup replaces n's virtual loss by the reward of a finished rollout and
// returns the parent. The root carries no loss and keeps no rewards.
func (n *node[S, A]) backup(reward func(player game.Player) float64) *node[S, A] {
	n.Lock()
	defer n.Unlock()

	if n.parent != nil { // Non-root node
		n.rewards -= Loss
		n.rewards += reward(n.player)
	} else {
		n.visits++
	}
	return n.parent
}

// bestChild returns the index of the most visited child, the earliest on ties.
func (n *node[S, A]) bestChild() int {
	n.RLock()
	defer n.RUnlock()

	if len(n.children) == 0 {
		panic("node has no children")
	}
	best := 0
	_, bestVisits := n.children[0].stats()
	for i := 1; i < len(n.children); i++ {
		if _, visits := n.children[i].stats(); visits > bestVisits {
			best, bestVisits = i, visits
		}
	}
	return best
}
