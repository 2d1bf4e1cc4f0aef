package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocs() fstest.MapFS {
	return fstest.MapFS{
		"rules.md":      {Data: []byte("# Rules\n\nrule docs\n")},
		"collisions.md": {Data: []byte("# Collisions\n\ncollision docs\n")},
		"notes.txt":     {Data: []byte("plain notes\n")},
		"ignored.bin":   {Data: []byte{0x00}},
	}
}

func TestNew_ScansTopics(t *testing.T) {
	tm, err := New(testDocs(), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"collisions", "notes", "rules"}, tm.List())

	topic, ok := tm.Get("rules")
	require.True(t, ok)
	assert.Equal(t, ".md", topic.Format)
	assert.Contains(t, topic.Content, "rule docs")

	_, ok = tm.Get("ignored")
	assert.False(t, ok)
}

func TestPlainRenderer_PassesThrough(t *testing.T) {
	tm, err := New(testDocs(), Options{})
	require.NoError(t, err)

	topic, _ := tm.Get("notes")
	assert.Equal(t, "plain notes\n", tm.Render(topic))
}

func TestCommand_ListsAndRenders(t *testing.T) {
	tm, err := New(testDocs(), Options{})
	require.NoError(t, err)

	cmd := tm.Command()
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.RunE(cmd, nil))
	assert.Contains(t, out.String(), "collisions")
	assert.Contains(t, out.String(), "rules")

	out.Reset()
	require.NoError(t, cmd.RunE(cmd, []string{"notes"}))
	assert.Contains(t, out.String(), "plain notes")

	assert.Error(t, cmd.RunE(cmd, []string{"missing"}))
}
