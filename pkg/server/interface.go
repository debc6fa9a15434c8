/*
Package server implements msgpack IPC for the word-grid solver.

The server reads a stream of msgpack maps from stdin and answers each one with a
single msgpack map on stdout. Requests are processed synchronously, in order,
with timing info included in solve responses. Logs go to stderr.

# IPC

Every request carries an id and an action:

	{"id": "req_001", "a": "solve", "b": ["A T", "E C"], "s": "score", "r": false, "l": 10}
	{"id": "req_002", "a": "health"}
	{"id": "req_003", "a": "languages"}

"b" holds the board, one row per element, using the same tokens as board files
("Mtw", "e", "Odl"). A solve answers with the ranked words and their paths:

	{"id": "req_001", "w": [{"w": "CAT", "s": 6, "p": [[1,1],[0,0],[0,1]]}], "c": 1, "t": 145}

"t" is the solve time in microseconds. "l" is clamped to the configured
max_limit; 0 means max_limit. Boards with more cells than max_board_cells are
rejected.

Failures come back as

	{"id": "req_001", "e": "unknown sort mode", "c": 400}

Right after start the server writes {"id": "", "status": "ready"}.
*/
package server

// Actions understood by the server.
const (
	ActionSolve     = "solve"
	ActionHealth    = "health"
	ActionLanguages = "languages"
)

// Request is a single IPC request.
type Request struct {
	ID      string   `msgpack:"id"`
	Action  string   `msgpack:"a"`
	Board   []string `msgpack:"b,omitempty"`
	Sort    string   `msgpack:"s,omitempty"`
	Reverse bool     `msgpack:"r,omitempty"`
	Limit   int      `msgpack:"l,omitempty"`
}

// WordResult is one ranked word with its path as [row, col] pairs.
type WordResult struct {
	Word  string   `msgpack:"w"`
	Score int      `msgpack:"s"`
	Path  [][2]int `msgpack:"p"`
}

// SolveResponse answers a solve request.
type SolveResponse struct {
	ID        string       `msgpack:"id"`
	Words     []WordResult `msgpack:"w"`
	Count     int          `msgpack:"c"`
	TimeTaken int64        `msgpack:"t"`
}

// StatusResponse answers health checks and signals readiness.
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// LanguagesResponse lists the available language codes.
type LanguagesResponse struct {
	ID        string   `msgpack:"id"`
	Languages []string `msgpack:"l"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
