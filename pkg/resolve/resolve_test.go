package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tickline-hq/keystone/pkg/config"
)

func publish(t *testing.T, doc *config.Document) *config.Snapshot {
	t.Helper()
	ctx := config.NewContext()
	require.NoError(t, ctx.Publish(doc))
	snap, err := ctx.Get()
	require.NoError(t, err)
	return snap
}

func intPtr(v int) *int { return &v }
