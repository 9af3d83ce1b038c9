package connector

import "time"

// Config describes a Cassandra/Scylla cluster connection.
type Config struct {
	Hosts       []string `json:"hosts" yaml:"hosts"`
	Port        int      `json:"port" yaml:"port"`
	Keyspace    string   `json:"keyspace" yaml:"keyspace"`
	Username    string   `json:"username" yaml:"username"`
	Password    string   `json:"password" yaml:"password"`
	Consistency string   `json:"consistency" yaml:"consistency"`

	// ProtoVersion pins the native protocol version; zero lets the
	// driver negotiate.
	ProtoVersion int `json:"proto_version" yaml:"proto_version"`

	ConnectTimeout time.Duration `json:"connect_timeout" yaml:"connect_timeout"`
	RequestTimeout time.Duration `json:"request_timeout" yaml:"request_timeout"`

	PageSize          int `json:"page_size" yaml:"page_size"`
	PreparedCacheSize int `json:"prepared_cache_size" yaml:"prepared_cache_size"`

	Pool PoolConfig `json:"pool" yaml:"pool"`
}

type PoolConfig struct {
	NumConns          int           `json:"num_conns" yaml:"num_conns"`
	ReconnectInterval time.Duration `json:"reconnect_interval" yaml:"reconnect_interval"`
}

const defaultPreparedCacheSize = 512
