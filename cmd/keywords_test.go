package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/lloc/internal/controller"
	"github.com/mouse-blink/lloc/internal/domain"
)

func TestKeywordsCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newTestRootCmd()

	mockWorkflow.EXPECT().Keywords().Return(nil)

	cmd.SetArgs([]string{"keywords"})
	require.NoError(t, cmd.Execute())
}

func TestKeywordsCmd_Error(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newTestRootCmd()

	mockWorkflow.EXPECT().Keywords().Return(errors.New("closed pipe"))

	cmd.SetArgs([]string{"keywords"})
	require.Error(t, cmd.Execute())
}

func TestKeywordsCmd_PrintsDefaultTable(t *testing.T) {
	var buf bytes.Buffer

	cmd := newTestRootCmd()
	cmd.SetOut(&buf)

	originalWorkflow := workflow
	workflow = domain.NewWorkflow(nil, nil, nil, controller.NewSimpleUI(cmd), nil, nil)
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"keywords"})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	require.Contains(t, out, "while\n")
	require.Contains(t, out, ";\n")
	require.NotContains(t, out, "return\n")
}
