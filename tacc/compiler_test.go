package tacc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilerWritesTACListingOnSuccess(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "in.src")
	outputPath := filepath.Join(dir, "out.tac")

	require.NoError(t, os.WriteFile(inputPath, []byte("int x = 1 + 2;"), 0644))

	compiler := NewCompiler()
	err := compiler.Compile(inputPath, outputPath)
	require.NoError(t, err)

	contents, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "+ 1 2 t0\nMOV t0  x\n", string(contents))
}

func TestCompilerWritesNoOutputFileOnSemanticFailure(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "in.src")
	outputPath := filepath.Join(dir, "out.tac")

	require.NoError(t, os.WriteFile(inputPath, []byte("int x = 1; int x = 2;"), 0644))

	compiler := NewCompiler()
	err := compiler.Compile(inputPath, outputPath)
	require.Error(t, err)

	_, statErr := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCompilerMissingInputFileFailsWithoutWritingOutput(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "out.tac")

	compiler := NewCompiler()
	err := compiler.Compile(filepath.Join(dir, "does-not-exist.src"), outputPath)
	require.Error(t, err)

	_, statErr := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(statErr))
}
