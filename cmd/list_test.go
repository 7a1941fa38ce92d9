package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ztar.dev/pkg/ztar/internal/domain"
	m "ztar.dev/pkg/ztar/internal/model"
)

func TestListCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().List(mock.Anything, domain.ListArgs{
		MapTable: m.Path("table.yaml"),
		Exclude:  []string{"^dgb_", "_bt$"},
	}).Return(nil).Once()

	require.NoError(t, executeWith(t, newListCmd(), "list", "--maps", "table.yaml", "-x", "^dgb_", "-x", "_bt$"))
}

func TestListCmd_PositionalArgsAreRejected(t *testing.T) {
	withMockWorkflow(t)

	require.Error(t, executeWith(t, newListCmd(), "list", "kmr_20"))
}
