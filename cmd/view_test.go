package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ztar.dev/pkg/ztar/internal/domain"
	m "ztar.dev/pkg/ztar/internal/model"
)

func TestViewCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().View(mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Map == "kmr_20" &&
			args.Rom == m.Path("rom.z64") &&
			len(args.Maps) == 0
	})).Return(nil).Once()

	require.NoError(t, executeWith(t, newViewCmd(), "view", "kmr_20", "--rom", "rom.z64"))
}

func TestViewCmd_RequiresExactlyOneMap(t *testing.T) {
	withMockWorkflow(t)

	require.Error(t, executeWith(t, newViewCmd(), "view"))
	require.Error(t, executeWith(t, newViewCmd(), "view", "kmr_20", "mac_01"))
}
