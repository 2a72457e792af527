package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ugc-mapper/internal/mapping"
	"ugc-mapper/internal/ugc"
)

const minionDoc = `{
  "structId": "100",
  "type": "Struct",
  "name": "Minion",
  "value": [
    {"param_type": "String", "key": "Name", "value": ""},
    {"param_type": "Int32", "key": "Level", "value": 0}
  ]
}`

const levelDoc = `{
  "structId": "1",
  "type": "Struct",
  "name": "Level",
  "value": [
    {"param_type": "StringList", "key": "Tags", "value": []},
    {"param_type": "StructList", "key": "Minions", "value": {"structId": "100", "type": "StructList", "value": []}}
  ]
}`

const minionTable = "Name\tLevel\tTags\nGoblin\t3\tfast|small\nOrc\t7\tbig\n"

// workdir prepares an isolated working directory holding the test inputs.
func workdir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)

	for _, env := range []string{"UGCMAP_STORE", "UGCMAP_LOG_LEVEL", "UGCMAP_LOG_FORMAT", "UGCMAP_OUTPUT_DIR"} {
		t.Setenv(env, "")
	}

	files := map[string]string{
		"minion.json": minionDoc,
		"level.json":  levelDoc,
		"minions.tsv": minionTable,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	return dir
}

// run executes one command line against the workspace in dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--store", filepath.Join(dir, "ws.db"), "--log-level", "error"}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()

	out, err := run(t, dir, args...)
	require.NoError(t, err, "ugc-mapper %v", args)

	return out
}

func TestWorkflow(t *testing.T) {
	dir := workdir(t)

	out := mustRun(t, dir, "structure", "import", "minion.json")
	assert.Equal(t, "100\tMinion\n", out)

	out = mustRun(t, dir, "template", "import", "level.json")
	assert.Equal(t, "level\n", out)

	out = mustRun(t, dir, "template", "list")
	assert.Contains(t, out, "level")
	assert.Contains(t, out, "Level")

	mustRun(t, dir, "derive", "level", "--table", "minions.tsv")

	out = mustRun(t, dir, "check", "level", "--table", "minions.tsv")
	assert.Equal(t, "ok\n", out)

	out = mustRun(t, dir, "generate", "level", "--table", "minions.tsv", "--out", "dist", "--tree")
	path := filepath.Join("dist", "Level.json")
	assert.Contains(t, out, path)
	assert.Contains(t, out, "Minions")

	data, err := os.ReadFile(filepath.Join(dir, path))
	require.NoError(t, err)

	in, err := ugc.ParseTemplate(data)
	require.NoError(t, err)
	require.Len(t, in.Fields, 2)
	assert.JSONEq(t, `["fast","small","big"]`, string(in.Fields[0].Value))

	var minions ugc.StructValue
	require.NoError(t, json.Unmarshal(in.Fields[1].Value, &minions))
	require.Len(t, minions.Value, 2)

	first, err := json.Marshal(minions.Value[0].Value)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"structId":"100","type":"Struct","value":[{"param_type":"String","value":"Goblin"},{"param_type":"Int32","value":3}]}`,
		string(first))
}

func TestDeriveKeepsExisting(t *testing.T) {
	dir := workdir(t)

	mustRun(t, dir, "template", "import", "level.json")
	mustRun(t, dir, "derive", "level")
	mustRun(t, dir, "config", "export", "level", "before.yaml")

	mustRun(t, dir, "derive", "level", "--table", "minions.tsv")
	mustRun(t, dir, "config", "export", "level", "after.yaml")

	before, err := os.ReadFile(filepath.Join(dir, "before.yaml"))
	require.NoError(t, err)
	after, err := os.ReadFile(filepath.Join(dir, "after.yaml"))
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))

	mustRun(t, dir, "derive", "level", "--table", "minions.tsv", "--force")

	f, err := mapping.LoadFile(filepath.Join(dir, "before.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "level", f.Template)
	require.Len(t, f.Slots, 2)
	assert.Equal(t, mapping.ScalarListMapping{Column: 0}, f.Slots[0].Mapping)
}

func TestRematch(t *testing.T) {
	dir := workdir(t)

	mustRun(t, dir, "template", "import", "level.json")

	_, err := run(t, dir, "rematch", "level", "--table", "minions.tsv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no configuration")

	mustRun(t, dir, "derive", "level")
	mustRun(t, dir, "rematch", "level", "--table", "minions.tsv")
	mustRun(t, dir, "config", "export", "level", "cfg.yaml")

	f, err := mapping.LoadFile(filepath.Join(dir, "cfg.yaml"))
	require.NoError(t, err)
	assert.Equal(t, mapping.ScalarListMapping{Column: 2}, f.Slots[0].Mapping)
}

func TestConfigImport(t *testing.T) {
	dir := workdir(t)

	mustRun(t, dir, "template", "import", "level.json")

	cfg := `version: "1"
template: level
slots:
  - slot: 0
    label: Tags
    type: StringList
    column: 2
  - slot: 7
    type: String
    static: nowhere
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cfg.yaml"), []byte(cfg), 0o644))

	mustRun(t, dir, "config", "import", "level", "cfg.yaml")

	out, err := run(t, dir, "check", "level", "--table", "minions.tsv")
	require.NoError(t, err)
	assert.Contains(t, out, mapping.CodeSlotOutOfRange)
}

func TestUnknownTemplate(t *testing.T) {
	dir := workdir(t)

	for _, args := range [][]string{
		{"derive", "missing"},
		{"check", "missing"},
		{"generate", "missing", "--table", "minions.tsv"},
		{"config", "export", "missing", "x.yaml"},
	} {
		t.Run(args[0], func(t *testing.T) {
			_, err := run(t, dir, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), `template "missing" is not imported`)
		})
	}
}

func TestRemoveAndReset(t *testing.T) {
	dir := workdir(t)

	mustRun(t, dir, "structure", "import", "minion.json", "--id", "minion")
	mustRun(t, dir, "template", "import", "level.json", "--id", "lvl")

	_, err := run(t, dir, "structure", "remove", "nope")
	require.Error(t, err)

	mustRun(t, dir, "structure", "remove", "minion")
	assert.Equal(t, "no structures\n", mustRun(t, dir, "structure", "list"))

	mustRun(t, dir, "reset")
	assert.Equal(t, "no templates\n", mustRun(t, dir, "template", "list"))
}

func TestStructureImportAllOrNothing(t *testing.T) {
	dir := workdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"structId":`), 0o644))

	_, err := run(t, dir, "structure", "import", "minion.json", "broken.json")
	require.Error(t, err)
	assert.Equal(t, "no structures\n", mustRun(t, dir, "structure", "list"))

	out := mustRun(t, dir, "structure", "import", "minion.json", "level.json")
	assert.Equal(t, "100\tMinion\n1\tLevel\n", out)
}

func TestInvalidLogLevel(t *testing.T) {
	dir := workdir(t)

	_, err := run(t, dir, "--log-level", "loud", "template", "list")
	require.Error(t, err)
}
