package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestU64IsStable(t *testing.T) {
	assert.Equal(t, U64("SELECT * FROM ks.t"), U64("SELECT * FROM ks.t"))
	assert.NotEqual(t, U64("SELECT * FROM ks.a"), U64("SELECT * FROM ks.b"))
}

func TestMix64DependsOnBothInputs(t *testing.T) {
	text := U64("UPDATE ks.t SET name = ? WHERE id = ?")

	assert.Equal(t, Mix64(text, 4), Mix64(text, 4))
	assert.NotEqual(t, Mix64(text, 3), Mix64(text, 4))
	assert.NotEqual(t, Mix64(text, 4), Mix64(4, text))
}

func TestU64ToBytesBigEndian(t *testing.T) {
	b := U64ToBytes(0x0102030405060708)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, b)
}
