package graph

import "context"

// MemoryClient is an in-memory Client used to unit test storage logic without
// a running database. It records every executed statement and replays canned
// read results in FIFO order. Like the rest of the application it assumes a
// single goroutine.
type MemoryClient struct {
	reads       []Statement
	writes      []Statement
	readResults [][]Record
	err         error
}

// Statement captures one executed cypher string with its parameters.
type Statement struct {
	Cypher string
	Params map[string]any
}

// NewMemoryClient returns an empty in-memory client.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{}
}

// FailWith makes every subsequent Read and Write return err.
func (m *MemoryClient) FailWith(err error) {
	m.err = err
}

// QueueReadResult appends the records returned by the next Read call.
func (m *MemoryClient) QueueReadResult(records []Record) {
	m.readResults = append(m.readResults, records)
}

func (m *MemoryClient) Read(_ context.Context, cypher string, params map[string]any) ([]Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.reads = append(m.reads, Statement{Cypher: cypher, Params: params})
	if len(m.readResults) == 0 {
		return nil, nil
	}
	head := m.readResults[0]
	m.readResults = m.readResults[1:]
	return head, nil
}

func (m *MemoryClient) Write(_ context.Context, cypher string, params map[string]any) error {
	if m.err != nil {
		return m.err
	}
	m.writes = append(m.writes, Statement{Cypher: cypher, Params: params})
	return nil
}

func (m *MemoryClient) Close(context.Context) error { return nil }

// Reads returns the recorded read statements.
func (m *MemoryClient) Reads() []Statement {
	return append([]Statement(nil), m.reads...)
}

// Writes returns the recorded write statements.
func (m *MemoryClient) Writes() []Statement {
	return append([]Statement(nil), m.writes...)
}
