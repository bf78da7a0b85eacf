package web

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS(t *testing.T) {
	fsys := FS()

	for _, name := range []string{"/index.html", "/app.js"} {
		t.Run(name, func(t *testing.T) {
			f, err := fsys.Open(name)
			require.NoError(t, err)
			defer f.Close()

			body, err := io.ReadAll(f)
			require.NoError(t, err)
			assert.NotEmpty(t, body)
		})
	}

	_, err := fsys.Open("/missing.js")
	assert.Error(t, err)
}
