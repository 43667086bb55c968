package searcher

import (
	"time"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

type MCTS struct {
	mark     game.Mark
	episodes int
	duration time.Duration
	rng      *rand.Rand
	policy   map[int]int
	metrics  metrics.Collector
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

// WithDuration bounds each search by wall-clock time. When episodes are set
// too, whichever limit is reached first stops the search.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

// WithoutEpisodes clears the default episode budget, leaving only the duration.
func WithoutEpisodes() Option {
	return func(m *MCTS) {
		m.episodes = 0
	}
}

// NewMCTS returns a searcher that plays mark. By default it runs
// meta.Episodes episodes per move.
func NewMCTS(mark game.Mark, options ...Option) *MCTS {
	if mark != game.X && mark != game.O {
		panic("searcher must play X or O")
	}
	m := &MCTS{ // Default values
		mark:     mark,
		episodes: meta.Episodes,
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

func (m *MCTS) Mark() game.Mark {
	return m.mark
}

// FindMove returns the cell to play on board. The board must not be terminal.
func (m *MCTS) FindMove(board game.Board) (int, metrics.SearchMetric) {
	if board.IsTerminal() {
		panic("cannot find a move: board is terminal")
	}
	m.metrics.Start()

	if move, ok := blockingMove(board, m.mark.Opponent(), m.rng); ok {
		m.policy = nil
		m.metrics.SetBlocked()
		return move, m.metrics.Complete()
	}

	// The tree is rebuilt for every decision and dropped once the move is known
	root := newNode(nil, board)
	m.search(root)
	m.metrics.SetNodes(root.size())
	m.policy = policyOf(root)

	child := root.mostVisited()
	move := moveTo(root, child)
	metric := m.metrics.Complete()

	log.Debug().
		Str("mark", m.mark.String()).
		Int("move", move).
		Int("visits", child.visits).
		Interface("policy", m.policy).
		Msg("search complete")

	return move, metric
}

// Policy returns the root children's visit counts by cell for the last
// search, or nil if the last move was decided without searching.
func (m *MCTS) Policy() map[int]int {
	return m.policy
}

func policyOf(root *node) map[int]int {
	policy := make(map[int]int, len(root.children))
	for _, child := range root.children {
		policy[moveTo(root, child)] = child.visits
	}
	return policy
}

// moveTo returns the cell that differs between parent's and child's boards.
func moveTo(parent, child *node) int {
	before, after := parent.board.Cells(), child.board.Cells()
	return utils.FirstDiff(after[:], before[:])
}

func (m *MCTS) search(root *node) {
	start := time.Now()
	for i := 0; ; i++ {
		if m.episodes > 0 && i >= m.episodes {
			break
		}
		// The first episode always runs so the root gets expanded
		if i > 0 && m.duration > 0 && time.Since(start) >= m.duration {
			break
		}
		m.simulate(root)
		m.metrics.AddEpisode()
	}
}

func (m *MCTS) simulate(root *node) {
	leaf := selectLeaf(root)
	if !leaf.board.IsTerminal() {
		leaf.expand(m.mark)
	}
	backup(leaf, m.evaluate(leaf))
}

// evaluate scores a leaf from the searcher's perspective without a rollout:
// only an existing win counts.
func (m *MCTS) evaluate(leaf *node) float64 {
	if leaf.board.Winner() == m.mark {
		return Win
	}
	return Loss
}

func selectLeaf(root *node) *node {
	n := root
	for len(n.children) > 0 {
		n = n.selectChild()
	}
	return n
}

func backup(leaf *node, reward float64) {
	for n := leaf; n != nil; n = n.parent {
		n.update(reward)
	}
}
