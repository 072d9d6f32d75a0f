// Package graph wraps the Neo4j driver behind the minimal contract the
// storage layer needs: parameterized reads and writes over Bolt.
package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Client executes cypher statements against a graph database.
type Client interface {
	Read(ctx context.Context, cypher string, params map[string]any) ([]Record, error)
	Write(ctx context.Context, cypher string, params map[string]any) error
	Close(ctx context.Context) error
}

// Record groups key-value pairs returned by a read query.
type Record map[string]any

// Options configures the Bolt connection.
type Options struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// ErrMissingURI indicates the graph URI is not provided.
var ErrMissingURI = errors.New("graph URI is required")

// NewClient connects to the graph database and verifies connectivity before
// returning.
func NewClient(ctx context.Context, opts Options) (Client, error) {
	if opts.URI == "" {
		return nil, ErrMissingURI
	}

	auth := neo4j.NoAuth()
	if opts.Username != "" {
		auth = neo4j.BasicAuth(opts.Username, opts.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(opts.URI, auth, func(c *neo4j.Config) {
		if opts.MaxConnections > 0 {
			c.MaxConnectionPoolSize = opts.MaxConnections
		}
	})
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("verify graph connectivity: %w", err)
	}

	return &boltClient{driver: driver, database: opts.Database}, nil
}

type boltClient struct {
	driver   neo4j.DriverWithContext
	database string
}

func (c *boltClient) Read(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.database,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	res, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}

	var records []Record
	for res.Next(ctx) {
		rec := res.Record()
		record := make(Record, len(rec.Keys))
		for _, key := range rec.Keys {
			value, _ := rec.Get(key)
			record[key] = value
		}
		records = append(records, record)
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *boltClient) Write(ctx context.Context, cypher string, params map[string]any) error {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.database,
		AccessMode:   neo4j.AccessModeWrite,
	})
	defer session.Close(ctx)

	res, err := session.Run(ctx, cypher, params)
	if err != nil {
		return err
	}
	_, err = res.Consume(ctx)
	return err
}

func (c *boltClient) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}
