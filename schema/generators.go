package schema

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// IDGenerator produces client-side identifiers for INSERT values.
type IDGenerator interface {
	Generate() (any, error)
	Type() string
}

// UUIDGenerator generates random (v4) uuid values.
type UUIDGenerator struct{}

func (g UUIDGenerator) Generate() (any, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID: %w", err)
	}
	return id, nil
}

func (g UUIDGenerator) Type() string {
	return "uuid"
}

// TimeUUIDGenerator generates v1 uuids suitable for timeuuid columns.
type TimeUUIDGenerator struct{}

func (g TimeUUIDGenerator) Generate() (any, error) {
	return gocql.TimeUUID(), nil
}

func (g TimeUUIDGenerator) Type() string {
	return "timeuuid"
}

// ULIDGenerator generates lexicographically sortable ids, stored in
// text columns.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *ULIDGenerator) Generate() (any, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(time.Now()), g.entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ULID: %w", err)
	}
	return id.String(), nil
}

func (g *ULIDGenerator) Type() string {
	return "ulid"
}
