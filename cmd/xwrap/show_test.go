package main_test

import (
	"testing"

	main "github.com/fwojciec/xwrap/cmd/xwrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := newDeps()
	deps.Wrappers = bookWrapperService()

	cmd := &main.ShowCmd{Name: "books"}
	require.NoError(t, cmd.Run(deps))

	assert.JSONEq(t, `{
		"author": "/html/body/div/p//text()",
		"title": "/html/body/div/span//text()"
	}`, stdout.String())
}
