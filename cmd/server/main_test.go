package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogFileWriterKeepsTailOnTruncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskflow.log")

	writer, file, err := newLogFileWriter(path)
	require.NoError(t, err)
	defer file.Close()

	line := bytes.Repeat([]byte("x"), 64*1024-1)
	line = append(line, '\n')

	var written []byte
	for len(written) <= maxLogSizeBytes {
		n, err := writer.Write(line)
		require.NoError(t, err)
		require.Equal(t, len(line), n)
		written = append(written, line...)
	}

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.LessOrEqual(t, len(content), maxLogSizeBytes)

	// The kept bytes are exactly the tail of everything written, in full.
	require.True(t, bytes.HasSuffix(written, content))
	require.NotEmpty(t, content)

	// Writes keep appending after a truncation.
	_, err = writer.Write([]byte("after\n"))
	require.NoError(t, err)
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasSuffix(content, []byte("after\n")))
}

func TestLogFileWriterCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nested", "taskflow.log")

	writer, file, err := newLogFileWriter(path)
	require.NoError(t, err)
	defer file.Close()

	_, err = writer.Write([]byte("hello\n"))
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(content))
}
