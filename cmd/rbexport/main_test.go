package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/rb70/internal/store"
	"github.com/fortuna/rb70/internal/table"
)

func TestNumericCandidates(t *testing.T) {
	tb, err := table.Read(strings.NewReader("Player,rAtt,apy,team\nA,120,,Ravens\nB,80,1500000,\n"), table.Schema{})
	require.NoError(t, err)

	cols := numericCandidates(tb)
	assert.Equal(t, []string{"rAtt", "apy"}, cols)

	tb.CoerceNumeric(cols...)
	types := store.InferColumns(tb)
	assert.Equal(t, store.TypeText, types[0].Type)
	assert.Equal(t, store.TypeDouble, types[1].Type)
	assert.Equal(t, store.TypeDouble, types[2].Type)
	assert.Equal(t, store.TypeText, types[3].Type)
}
