package connector

import (
	"context"
	"errors"
	"testing"
	"time"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConsistency(t *testing.T) {
	tests := []struct {
		name     string
		expected gocql.Consistency
	}{
		{"", gocql.LocalQuorum},
		{"ANY", gocql.Any},
		{"one", gocql.One},
		{"TWO", gocql.Two},
		{"THREE", gocql.Three},
		{"quorum", gocql.Quorum},
		{"ALL", gocql.All},
		{" local_quorum ", gocql.LocalQuorum},
		{"EACH_QUORUM", gocql.EachQuorum},
		{"LOCAL_ONE", gocql.LocalOne},
	}

	for _, tt := range tests {
		level, err := ParseConsistency(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.expected, level, tt.name)
	}

	_, err := ParseConsistency("SOMETIMES")
	assert.Error(t, err)
}

func TestConnectRejectsEmptyHostList(t *testing.T) {
	_, err := Connect(context.Background(), Config{})
	assert.Error(t, err)
}

type stubConnection struct{}

func (stubConnection) Session() *gocql.Session      { return nil }
func (stubConnection) Executor() *Executor          { return nil }
func (stubConnection) Health(context.Context) error { return nil }
func (stubConnection) Close() error                 { return nil }

func TestRetryConnectSucceedsAfterFailures(t *testing.T) {
	attempts := 0
	opts := RetryOptions{MaxRetries: 5, BaseDelay: time.Millisecond}

	conn, err := retryConnect(context.Background(), opts, func(context.Context) (Connection, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("gocql: no hosts available")
		}
		return stubConnection{}, nil
	})
	require.NoError(t, err)
	assert.NotNil(t, conn)
	assert.Equal(t, 3, attempts)
}

func TestRetryConnectReturnsLastError(t *testing.T) {
	boom := errors.New("still down")
	opts := RetryOptions{MaxRetries: 2, BaseDelay: time.Millisecond}

	_, err := retryConnect(context.Background(), opts, func(context.Context) (Connection, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestRetryConnectHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := RetryOptions{MaxRetries: 10, BaseDelay: time.Hour}

	_, err := retryConnect(ctx, opts, func(context.Context) (Connection, error) {
		return nil, errors.New("down")
	})
	assert.ErrorIs(t, err, context.Canceled)
}
