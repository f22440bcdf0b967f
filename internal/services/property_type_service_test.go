package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRoomNumbers(t *testing.T) {
	assert.Equal(t, []string{"A1", "A2", "A3"}, GenerateRoomNumbers("A", 3))
}

func TestGenerateRoomNumbersUppercasesPrefix(t *testing.T) {
	assert.Equal(t, []string{"P1", "P2"}, GenerateRoomNumbers("p", 2))
}

func TestGenerateRoomNumbersSingleRoom(t *testing.T) {
	assert.Equal(t, []string{"VILLA1"}, GenerateRoomNumbers("villa", 1))
}

func TestGenerateRoomNumbersZeroCount(t *testing.T) {
	assert.Empty(t, GenerateRoomNumbers("A", 0))
}

func TestNormalizeRoomPrefix(t *testing.T) {
	assert.Equal(t, "A", NormalizeRoomPrefix(" a "))
	assert.Equal(t, "DLX", NormalizeRoomPrefix("dlx"))
	assert.Equal(t, "B2", NormalizeRoomPrefix("b2"))
}
