package connector

import (
	"context"
	"fmt"
	"strings"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
)

// Connection is an established cluster connection plus the executor
// that fronts it for the query layer.
type Connection interface {
	Session() *gocql.Session
	Executor() *Executor
	Health(ctx context.Context) error
	Close() error
}

type cassandraConnection struct {
	session *gocql.Session
	cluster *gocql.ClusterConfig
	exec    *Executor
}

// Connect establishes a session against the configured cluster.
func Connect(ctx context.Context, cfg Config) (Connection, error) {
	if len(cfg.Hosts) == 0 {
		return nil, fmt.Errorf("connector: no hosts configured")
	}

	cluster := gocql.NewCluster(cfg.Hosts...)
	if cfg.Port > 0 {
		cluster.Port = cfg.Port
	}
	cluster.Keyspace = cfg.Keyspace
	if cfg.ProtoVersion > 0 {
		cluster.ProtoVersion = cfg.ProtoVersion
	}
	if cfg.ConnectTimeout > 0 {
		cluster.ConnectTimeout = cfg.ConnectTimeout
	}
	if cfg.RequestTimeout > 0 {
		cluster.Timeout = cfg.RequestTimeout
	}
	if cfg.Pool.NumConns > 0 {
		cluster.NumConns = cfg.Pool.NumConns
	}
	if cfg.Pool.ReconnectInterval > 0 {
		cluster.ReconnectInterval = cfg.Pool.ReconnectInterval
	}
	if cfg.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		}
	}

	level, err := ParseConsistency(cfg.Consistency)
	if err != nil {
		return nil, err
	}
	cluster.Consistency = level

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("connector: creating session: %w", err)
	}

	cacheSize := cfg.PreparedCacheSize
	if cacheSize <= 0 {
		cacheSize = defaultPreparedCacheSize
	}
	proto := cluster.ProtoVersion
	if proto == 0 {
		// driver default when negotiation is left on
		proto = 4
	}

	conn := &cassandraConnection{
		session: session,
		cluster: cluster,
		exec:    NewExecutor(session, proto, level, cfg.PageSize, cacheSize),
	}
	if err := conn.Health(ctx); err != nil {
		session.Close()
		return nil, err
	}
	return conn, nil
}

// ConnectWithRetry is Connect with exponential backoff between
// attempts.
func ConnectWithRetry(ctx context.Context, cfg Config, opts RetryOptions) (Connection, error) {
	return retryConnect(ctx, opts, func(ctx context.Context) (Connection, error) {
		return Connect(ctx, cfg)
	})
}

func (c *cassandraConnection) Session() *gocql.Session { return c.session }

func (c *cassandraConnection) Executor() *Executor { return c.exec }

func (c *cassandraConnection) Health(ctx context.Context) error {
	var version string
	err := c.session.Query("SELECT release_version FROM system.local").
		WithContext(ctx).Scan(&version)
	if err != nil {
		return fmt.Errorf("connector: health check: %w", err)
	}
	return nil
}

func (c *cassandraConnection) Close() error {
	c.session.Close()
	return nil
}

// ParseConsistency maps a level name onto the driver constant. An
// empty name falls back to LOCAL_QUORUM.
func ParseConsistency(name string) (gocql.Consistency, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "":
		return gocql.LocalQuorum, nil
	case "ANY":
		return gocql.Any, nil
	case "ONE":
		return gocql.One, nil
	case "TWO":
		return gocql.Two, nil
	case "THREE":
		return gocql.Three, nil
	case "QUORUM":
		return gocql.Quorum, nil
	case "ALL":
		return gocql.All, nil
	case "LOCAL_QUORUM":
		return gocql.LocalQuorum, nil
	case "EACH_QUORUM":
		return gocql.EachQuorum, nil
	case "LOCAL_ONE":
		return gocql.LocalOne, nil
	default:
		return 0, fmt.Errorf("connector: unknown consistency level %q", name)
	}
}
