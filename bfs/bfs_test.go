package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smpls/bfs"
	"github.com/katalvlaran/smpls/core"
)

// diamond builds 0→1, 0→2, 1→3, 2→3, 3→4 with labels "a".."e".
func diamond(t *testing.T) (*core.Graph[int, string], []core.StateID) {
	t.Helper()
	g := core.New[int, string]()
	ids := make([]core.StateID, 5)
	for i := range ids {
		ids[i] = g.AddState(i)
	}
	for _, e := range []struct {
		from, to int
		label    string
	}{{0, 1, "a"}, {0, 2, "b"}, {1, 3, "c"}, {2, 3, "d"}, {3, 4, "e"}} {
		_, err := g.AddEdge(ids[e.from], e.label, ids[e.to])
		require.NoError(t, err)
	}
	require.NoError(t, g.AddInitial(ids[0]))

	return g, ids
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[int, string](nil, nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g, _ := diamond(t)
	_, err = bfs.BFS(g, []core.StateID{99})
	assert.ErrorIs(t, err, bfs.ErrStartStateNotFound)

	_, err = bfs.BFS(g, g.Initial(), bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DepthsAndOrder(t *testing.T) {
	g, ids := diamond(t)
	res, err := bfs.BFS(g, []core.StateID{ids[0]})
	require.NoError(t, err)

	assert.Equal(t, []core.StateID{ids[0], ids[1], ids[2], ids[3], ids[4]}, res.Order)
	assert.Equal(t, 2, res.Depth[ids[3]])
	assert.Equal(t, ids[1], res.Parent[ids[3]])

	path, err := res.PathTo(ids[4])
	require.NoError(t, err)
	assert.Len(t, path, 3)

	path, err = res.PathTo(ids[0])
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestBFS_MultiSourceAndFilter(t *testing.T) {
	g, ids := diamond(t)
	res, err := bfs.BFS(g, []core.StateID{ids[2], ids[1], ids[2]},
		bfs.WithFilterEdge(func(_, to core.StateID) bool { return to != ids[4] }))
	require.NoError(t, err)

	assert.Equal(t, []core.StateID{ids[2], ids[1], ids[3]}, res.Order)
	assert.Equal(t, ids[2], res.Parent[ids[3]])
	_, err = res.PathTo(ids[4])
	assert.ErrorIs(t, err, bfs.ErrUnreached)
}

func TestBFS_MaxDepth(t *testing.T) {
	g, ids := diamond(t)
	res, err := bfs.BFS(g, g.Initial(), bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
	assert.NotContains(t, res.Depth, ids[3])
}

func TestBFS_HookAndCancel(t *testing.T) {
	g, ids := diamond(t)
	stop := errors.New("stop")
	_, err := bfs.BFS(g, g.Initial(), bfs.WithOnVisit(func(id core.StateID, _ int) error {
		if id == ids[2] {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, g.Initial(), bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShortestWord(t *testing.T) {
	g, ids := diamond(t)
	word, err := bfs.ShortestWord(g, ids[4])
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "e"}, word)

	lonely := g.AddState(9)
	_, err = bfs.ShortestWord(g, lonely)
	assert.ErrorIs(t, err, bfs.ErrUnreached)
}
