package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListLanguagesNeedsNoInput(t *testing.T) {
	cmd := NewRootCommand("test", "none", "today")
	cmd.SetArgs([]string{"--list-languages"})
	assert.NoError(t, cmd.Execute())
}

func TestRequiresInputFile(t *testing.T) {
	cmd := NewRootCommand("test", "none", "today")
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.ErrorContains(t, err, "accepts 1 arg(s)")
}

func TestRejectsExtraArgs(t *testing.T) {
	cmd := NewRootCommand("test", "none", "today")
	cmd.SetArgs([]string{"a.csv", "b.csv"})
	assert.Error(t, cmd.Execute())
}
