package host

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
)

func TestHeadlessCurrentAddress(t *testing.T) {
	h := &Headless{Address: 0x401000, Logger: hclog.NewNullLogger()}
	addr, err := h.CurrentAddress()
	assert.NoError(t, err)
	assert.Equal(t, uint64(0x401000), addr)

	h = &Headless{Logger: hclog.NewNullLogger()}
	_, err = h.CurrentAddress()
	assert.Error(t, err, "a headless host has no cursor to fall back to")
}

func TestHeadlessFunctionName(t *testing.T) {
	h := &Headless{Function: "main", Logger: hclog.NewNullLogger()}
	name, err := h.FunctionName(0x401000)
	assert.NoError(t, err)
	assert.Equal(t, "main", name)

	h = &Headless{Logger: hclog.NewNullLogger()}
	_, err = h.FunctionName(0x401000)
	assert.Error(t, err)
}

func TestHeadlessRunScriptMissingFile(t *testing.T) {
	h := &Headless{Logger: hclog.NewNullLogger()}
	err := h.RunScript(filepath.Join(t.TempDir(), "never-written.py"))
	assert.Error(t, err)
}

func TestHeadlessRunScriptWithoutInterpreter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.py")
	assert.NoError(t, os.WriteFile(path, []byte("pass\n"), 0600))

	h := &Headless{Logger: hclog.NewNullLogger()}
	assert.NoError(t, h.RunScript(path), "without an interpreter the script is skipped, not failed")
}

func TestHeadlessRunScriptWithInterpreter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.py")
	assert.NoError(t, os.WriteFile(path, []byte("ignored"), 0600))

	h := &Headless{Interpreter: []string{"true"}, Logger: hclog.NewNullLogger()}
	assert.NoError(t, h.RunScript(path))

	h = &Headless{Interpreter: []string{"false"}, Logger: hclog.NewNullLogger()}
	assert.Error(t, h.RunScript(path))
}
