package extract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojscs/pkg/extract"
)

func TestExtractor_Markdown(t *testing.T) {
	t.Parallel()

	doc := "# Title\n" +
		"\n" +
		"```js\n" +
		"var x = 1;\n" +
		"with (x) {}\n" +
		"```\n" +
		"\n" +
		"```python\n" +
		"print('no')\n" +
		"```\n" +
		"\n" +
		"- item\n" +
		"\n" +
		"  ```javascript\n" +
		"  foo();\n" +
		"  ```\n"

	blocks, err := extract.New().Markdown(context.Background(), []byte(doc))
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, "var x = 1;\nwith (x) {}\n", string(blocks[0].Source))
	assert.Equal(t, 4, blocks[0].Line)
	assert.Equal(t, 0, blocks[0].Column)
	assert.Equal(t, "js", blocks[0].Info)

	assert.Equal(t, "foo();\n", string(blocks[1].Source))
	assert.Equal(t, 15, blocks[1].Line)
	assert.Equal(t, 2, blocks[1].Column)
}

func TestExtractor_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := extract.New().Markdown(ctx, []byte("```js\nx\n```\n"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBlock_MapPosition(t *testing.T) {
	t.Parallel()

	b := extract.Block{Line: 10, Column: 2}
	line, col := b.MapPosition(1, 0)
	assert.Equal(t, 10, line)
	assert.Equal(t, 2, col)

	line, col = b.MapPosition(3, 4)
	assert.Equal(t, 12, line)
	assert.Equal(t, 6, col)
}

func TestIsJavaScript(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		info    string
		content string
		want    bool
	}{
		{name: "js alias", info: "js", content: "x", want: true},
		{name: "javascript alias", info: "javascript", content: "x", want: true},
		{name: "info with attributes", info: "js title=example", content: "x", want: true},
		{name: "python alias", info: "python", content: "var x = 1", want: false},
		{name: "unlabelled javascript", content: "const a = () => 1;\n", want: true},
		{name: "unlabelled json", content: "{\"a\": 1}\n", want: false},
		{name: "node shebang", content: "#!/usr/bin/env node\nfoo()\n", want: true},
		{name: "empty", content: "  \n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, extract.IsJavaScript(tt.info, []byte(tt.content)))
		})
	}
}
