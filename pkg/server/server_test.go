package server

import (
	"bytes"
	"context"
	"testing"

	"github.com/bastiangx/wordgrid/pkg/config"
	"github.com/bastiangx/wordgrid/pkg/dictionary"
	"github.com/bastiangx/wordgrid/pkg/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

// run feeds reqs to a fresh server and returns a decoder positioned after the ready frame.
func run(t *testing.T, limits config.ServerConfig, reqs ...any) *msgpack.Decoder {
	t.Helper()
	lang, err := language.Get("en")
	require.NoError(t, err)

	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range reqs {
		require.NoError(t, enc.Encode(r))
	}

	srv := NewServer(lang, dictionary.NewTrie("ATE", "CAT", "TEA"), limits, WithIO(&in, &out))
	require.NoError(t, srv.Start(context.Background()))

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	assert.Equal(t, "ready", ready.Status)
	return dec
}

func defaultLimits() config.ServerConfig { return config.DefaultConfig().Server }

func TestHealthAndLanguages(t *testing.T) {
	dec := run(t, defaultLimits(),
		Request{ID: "h1", Action: ActionHealth},
		Request{ID: "l1", Action: ActionLanguages},
	)

	var health StatusResponse
	require.NoError(t, dec.Decode(&health))
	assert.Equal(t, StatusResponse{ID: "h1", Status: "ok"}, health)

	var langs LanguagesResponse
	require.NoError(t, dec.Decode(&langs))
	assert.Equal(t, "l1", langs.ID)
	assert.Contains(t, langs.Languages, "en")
	assert.Contains(t, langs.Languages, "it")
}

func TestSolve(t *testing.T) {
	dec := run(t, defaultLimits(),
		Request{ID: "s1", Action: ActionSolve, Board: []string{"A T", "E C"}, Limit: 2},
		Request{ID: "s2", Action: ActionSolve, Board: []string{"A T", "E C"}, Sort: "score", Reverse: true},
	)

	var resp SolveResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "s1", resp.ID)
	require.Equal(t, 2, resp.Count)
	require.Len(t, resp.Words, 2)
	assert.Equal(t, WordResult{Word: "CAT", Score: 6, Path: [][2]int{{1, 1}, {0, 0}, {0, 1}}}, resp.Words[0])
	assert.Equal(t, "TEA", resp.Words[1].Word)
	assert.GreaterOrEqual(t, resp.TimeTaken, int64(0))

	var rev SolveResponse
	require.NoError(t, dec.Decode(&rev))
	require.Equal(t, 3, rev.Count)
	assert.Equal(t, "ATE", rev.Words[0].Word)
	assert.Equal(t, "CAT", rev.Words[2].Word)
}

func TestRequestErrors(t *testing.T) {
	limits := defaultLimits()
	limits.MaxBoardCells = 3

	dec := run(t, limits,
		Request{ID: "e1", Action: "complete"},
		Request{ID: "e2", Action: ActionSolve, Board: []string{"A T"}, Sort: "alpha"},
		Request{ID: "e3", Action: ActionSolve, Board: []string{"A T", "E C"}},
		Request{ID: "e4", Action: ActionSolve},
		Request{ID: "e5", Action: ActionSolve, Board: []string{"A 1"}},
		Request{ID: "e6", Action: ActionSolve, Board: []string{"", "  "}},
		Request{ID: "e7", Action: ActionSolve, Board: []string{"A", "", "E"}},
		"not a request",
		Request{ID: "h", Action: ActionHealth},
	)

	for _, id := range []string{"e1", "e2", "e3", "e4", "e5", "e6", "e7", ""} {
		var e ErrorResponse
		require.NoError(t, dec.Decode(&e))
		assert.Equal(t, id, e.ID)
		assert.Equal(t, 400, e.Code, "request %q", id)
		assert.NotEmpty(t, e.Error)
	}

	var health StatusResponse
	require.NoError(t, dec.Decode(&health))
	assert.Equal(t, "ok", health.Status, "server keeps serving after bad requests")
}

func TestSolveRejectsBlankRow(t *testing.T) {
	dec := run(t, defaultLimits(),
		Request{ID: "gap", Action: ActionSolve, Board: []string{"A T", "", "E C"}},
		Request{ID: "full", Action: ActionSolve, Board: []string{"A T", "E C"}},
	)

	var e ErrorResponse
	require.NoError(t, dec.Decode(&e))
	assert.Equal(t, "gap", e.ID)
	assert.Equal(t, 400, e.Code)
	assert.Contains(t, e.Error, "row 1 is empty")

	var solved SolveResponse
	require.NoError(t, dec.Decode(&solved))
	assert.Equal(t, "full", solved.ID)
	assert.Equal(t, 3, solved.Count)
}

func TestClampLimit(t *testing.T) {
	s := &Server{limits: config.ServerConfig{MaxLimit: 10}}
	assert.Equal(t, 10, s.clampLimit(0))
	assert.Equal(t, 10, s.clampLimit(-3))
	assert.Equal(t, 4, s.clampLimit(4))
	assert.Equal(t, 10, s.clampLimit(99))

	s.limits.MaxLimit = 0
	assert.Equal(t, config.DefaultConfig().Server.MaxLimit, s.clampLimit(0))
}

func TestStartStopsOnCancelledContext(t *testing.T) {
	lang, err := language.Get("en")
	require.NoError(t, err)

	var in, out bytes.Buffer
	require.NoError(t, msgpack.NewEncoder(&in).Encode(Request{ID: "h", Action: ActionHealth}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	srv := NewServer(lang, dictionary.NewTrie("CAT"), defaultLimits(), WithIO(&in, &out))
	assert.ErrorIs(t, srv.Start(ctx), context.Canceled)
	assert.Positive(t, in.Len(), "no request is read once cancelled")
}
