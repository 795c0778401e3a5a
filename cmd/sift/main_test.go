package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	main "github.com/emezenwere/sift/cmd/sift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainRun(t *testing.T) {
	t.Parallel()

	t.Run("help shows the scan command", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "scan")
	})

	t.Run("rejects unknown flags", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"scan", "--bogus"}, stdout, stderr)

		assert.Error(t, err)
	})

	t.Run("wires the pipeline end to end", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Fetcher = staticFetcher(companyPage)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"scan", "test.example", "--json"}, stdout, stderr)

		require.NoError(t, err)

		var results []map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &results))
		require.Len(t, results, 1)
		assert.Equal(t, "Test Company", results[0]["company_name"])
	})
}
