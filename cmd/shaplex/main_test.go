package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := dump("1 +\n\t(x);", &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Equal(t, "1:1\tNUMBER\t\"1\"\n"+
		"1:3\tOPERATOR\t\"+\"\n"+
		"2:5\tSEPARATOR\t\"(\"\n"+
		"2:6\tIDENTIFIER\t\"x\"\n"+
		"2:7\tSEPARATOR\t\")\"\n"+
		"2:8\tSEPARATOR\t\";\"\n"+
		"2:9\tEOF\t\"EOF\"\n", stdout.String())
	require.Empty(t, stderr.String())
}

func TestDumpEmpty(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, dump("", &stdout, &stderr))
	require.Equal(t, "1:1\tEOF\t\"EOF\"\n", stdout.String())
}

func TestDumpLexError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := dump("1 @ 2", &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Equal(t, "1:1\tNUMBER\t\"1\"\n", stdout.String())
	require.Equal(t, "[1:3] Invalid character: '@'\n1 @ 2\n  ^\n", stderr.String())
}
