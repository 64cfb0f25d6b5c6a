package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/xwrap/cmd/xwrap"
	"github.com/fwojciec/xwrap/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func siteFetcher() *mock.Fetcher {
	fetcher := pageFetcher(map[string]string{
		"https://books.example/1": bookPages["https://books.example/1"],
		"https://books.example/2": bookPages["https://books.example/2"],
		"https://books.example/3": `<html><body><div><span>Persuasion</span><p>Jane Austen</p></div></body></html>`,
	})
	fetcher.CloseFn = func() error { return nil }
	return fetcher
}

func run(t *testing.T, dbPath string, args ...string) (string, string, error) {
	t.Helper()

	m := main.NewMain()
	m.DBPath = dbPath
	m.Fetcher = siteFetcher()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run_TrainThenExtract(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "xwrap.db")
	examples := writeFile(t, "examples.json", bookExamples)
	mappingPath := filepath.Join(dir, "mapping.json")

	stdout, stderr, err := run(t, dbPath, "train", "books", examples, "--out", mappingPath)
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "Best path for title is '/html/body/div/span//text()'")
	assert.Contains(t, stdout, `Saved wrapper "books"`)

	stdout, stderr, err = run(t, dbPath, "list")
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "books  2 fields")

	stdout, stderr, err = run(t, dbPath, "extract", "books", "https://books.example/3")
	require.NoError(t, err, stderr)
	assert.Equal(t, "author: Jane Austen\ntitle: Persuasion\n", stdout)

	stdout, stderr, err = run(t, dbPath, "extract", "ignored", "https://books.example/3", "--mapping", mappingPath)
	require.NoError(t, err, stderr)
	assert.Equal(t, "author: Jane Austen\ntitle: Persuasion\n", stdout)

	_, stderr, err = run(t, dbPath, "train", "books", examples)
	require.Error(t, err)
	assert.Contains(t, stderr, "already exists")

	stdout, stderr, err = run(t, dbPath, "delete", "books", "--force")
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, `Deleted wrapper "books"`)

	stdout, _, err = run(t, dbPath, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No wrappers found")
}

func TestMain_Run_Inspect(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := run(t, filepath.Join(t.TempDir(), "unused.db"), "inspect", "https://books.example/3")
	require.NoError(t, err, stderr)

	assert.Contains(t, stdout, `"xpath": "/html/body/div/span"`)
	assert.Contains(t, stdout, `"text": "Persuasion"`)
}
