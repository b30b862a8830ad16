package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sceneScript = `
steps:
  - {action: new, label: root, name: root}
  - {action: new, label: ui, name: ui}
  - {action: new, label: button, name: button}
  - {action: new, label: lost, name: lost}
  - {action: add_child, node: root, target: ui}
  - {action: add_child, node: ui, target: button}
  - {action: add_to_group, node: button, group: clickable, persistent: true}
  - {action: root, node: root}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	script := writeFile(t, dir, "scene.yaml", sceneScript)

	out, err := execute(t, "run", script, "--groups", "--strays", "--config", writeFile(t, dir, "arbor.yaml", "debug: true\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "root")
	assert.Contains(t, out, "button")
	assert.Contains(t, out, "clickable*")
	assert.Contains(t, out, "Stray nodes: 1")
	assert.Contains(t, out, "Stray Node: lost (children: 0)")
}

func TestRunCommandPlain(t *testing.T) {
	dir := t.TempDir()
	script := writeFile(t, dir, "scene.yaml", sceneScript)

	out, err := execute(t, "run", script, "--plain")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, " ┖╴root\n    ┖╴ui\n       ┖╴button\n"))
	assert.NotContains(t, out, "Stray")
}

func TestRunCommandScriptError(t *testing.T) {
	dir := t.TempDir()
	script := writeFile(t, dir, "bad.yaml", "steps:\n  - {action: new, label: a, name: a}\n  - {action: add_child, node: a, target: a}\n")

	out, err := execute(t, "run", script)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 2 (add_child)")
	assert.Contains(t, out, "a", "the partial tree is still printed")
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", sceneScript)
	bad := writeFile(t, dir, "bad.yaml", `steps: [{action: raise, node: ghost}]`)

	out, err := execute(t, "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, "(8 steps)")

	out, err = execute(t, "validate", good, bad)
	require.Error(t, err)
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, err.Error(), "1 of 2 scripts failed")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadConfig(filepath.Join(dir, "missing.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)

	_, err = loadConfig(filepath.Join(dir, "missing.yaml"), true)
	require.Error(t, err)

	path := writeFile(t, dir, "ok.yaml", "debug: true\nmax_tree_depth: 8\nlog_level: warn\nshow_groups: true\n")
	cfg, err = loadConfig(path, true)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 8, cfg.MaxTreeDepth)
	assert.True(t, cfg.ShowGroups)

	path = writeFile(t, dir, "bad.yaml", "log_level: loud\n")
	_, err = loadConfig(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")

	path = writeFile(t, dir, "neg.yaml", "max_child_count: -1\n")
	_, err = loadConfig(path, true)
	require.Error(t, err)
}

func TestNodeLabelGroups(t *testing.T) {
	dir := t.TempDir()
	script := writeFile(t, dir, "scene.yaml", sceneScript)

	out, err := execute(t, "run", script)
	require.NoError(t, err)
	assert.NotContains(t, out, "clickable")
}
