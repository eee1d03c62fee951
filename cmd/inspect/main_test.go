package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PrintsRecordsUnderPrefix(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer

	req.NoError(run(&out, "chronicle:"))
	req.Contains(out.String(), "chronicle:0000:1")
	req.Contains(out.String(), "chronicle:0002:3")
	req.NotContains(out.String(), "group:")
}
