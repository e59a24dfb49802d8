package chatsnap_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/chatsnap"
	"github.com/stretchr/testify/assert"
)

func TestArtifact_Ext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		language string
		want     string
	}{
		{name: "python", language: "python", want: "py"},
		{name: "typescript", language: "typescript", want: "ts"},
		{name: "shell alias", language: "shell", want: "sh"},
		{name: "unknown hint falls back", language: "brainfuck", want: "txt"},
		{name: "missing hint falls back", language: "", want: "txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := &chatsnap.Artifact{Language: tt.language}
			assert.Equal(t, tt.want, a.Ext())
		})
	}
}

func TestArtifact_Filename(t *testing.T) {
	t.Parallel()

	a := &chatsnap.Artifact{Index: 3, Language: "python"}
	assert.Equal(t, "artifact_code_3.py", a.Filename())
}

func TestArtifact_Hash(t *testing.T) {
	t.Parallel()

	a := &chatsnap.Artifact{Content: "print('hello')"}
	b := &chatsnap.Artifact{Content: "print('hello')"}
	c := &chatsnap.Artifact{Content: "print('world')"}

	assert.Len(t, a.Hash(), 16)
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestFenceTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "python", chatsnap.FenceTag("py"))
	assert.Equal(t, "bash", chatsnap.FenceTag("sh"))
	assert.Equal(t, "text", chatsnap.FenceTag("txt"))
	assert.Equal(t, "zig", chatsnap.FenceTag("zig"))
}

func TestKeepArtifact(t *testing.T) {
	t.Parallel()

	assert.False(t, chatsnap.KeepArtifact(strings.Repeat("x", 49)))
	assert.True(t, chatsnap.KeepArtifact(strings.Repeat("x", 50)))
}
