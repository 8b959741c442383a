package main

import (
	"bytes"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftwizard/domain"
)

func TestRootCmdArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown mint method", args: []string{"mint", "bogus"}},
		{name: "transfer without recipient", args: []string{"transfer", "7"}},
		{name: "list without price", args: []string{"list", "7"}},
		{name: "buy without price", args: []string{"buy", "0x01"}},
		{name: "quote without amount", args: []string{"swap", "quote"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			buf := &bytes.Buffer{}
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)
			require.Error(t, cmd.Execute())
		})
	}
}

func TestHandlePromptError(t *testing.T) {
	req := require.New(t)
	req.ErrorIs(handlePromptError(promptui.ErrInterrupt), errCancelled)
	req.ErrorIs(handlePromptError(promptui.ErrEOF), errCancelled)
	req.ErrorIs(handlePromptError(promptui.ErrAbort), errCancelled)
	req.ErrorIs(handlePromptError(xerrors.Errorf("prompt: %w", promptui.ErrInterrupt)), errCancelled)
	req.ErrorIs(handlePromptError(domain.ErrInvalidAmount), domain.ErrInvalidAmount)
}

func TestErrFailed(t *testing.T) {
	err := errFailed(domain.PendingTransaction{Tag: "list", Err: "0xabc: execution reverted"})
	require.EqualError(t, err, "list failed: 0xabc: execution reverted")
}
