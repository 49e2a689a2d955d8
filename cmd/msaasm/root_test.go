package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonkingfr/UniSIMD-sub001/msa"
)

func TestHexOutputDropsLabels(t *testing.T) {
	buf := parse(t, "start:\nmov x1, x2\n")

	var out bytes.Buffer
	require.NoError(t, writeOutput(&out, buf, "hex"))

	want := direct(func(a *msa.Asm) { a.Mov(msa.X1, msa.X2) })
	lines := bytes.Count(out.Bytes(), []byte("\n"))
	assert.Equal(t, len(want), lines)
	assert.NotContains(t, out.String(), "start")
}

func TestHexOutputRejectsBranches(t *testing.T) {
	buf := parse(t, "mkj.none.h x1, out\n")

	var out bytes.Buffer
	err := writeOutput(&out, buf, "hex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "branch mnemonics")
}

func TestUnknownFormat(t *testing.T) {
	var buf msa.Buffer
	err := writeOutput(&bytes.Buffer{}, &buf, "elf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"elf"`)
}
