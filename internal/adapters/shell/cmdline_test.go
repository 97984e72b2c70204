package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/adapters/shell"
)

func TestSplit(t *testing.T) {
	argv, err := shell.Split(`npm run build`)
	require.NoError(t, err)
	assert.Equal(t, []string{"npm", "run", "build"}, argv)

	argv, err = shell.Split(`sh -c 'echo hello world'`)
	require.NoError(t, err)
	assert.Equal(t, []string{"sh", "-c", "echo hello world"}, argv)
}

func TestSplit_EmptyCommand(t *testing.T) {
	_, err := shell.Split("")
	assert.Error(t, err)

	_, err = shell.Split("   ")
	assert.Error(t, err)
}

func TestUsesControlOperators(t *testing.T) {
	tests := []struct {
		cmd      string
		expected bool
	}{
		{"npm run build", false},
		{"next build --profile", false},
		{`sh -c 'exit 1'`, false},
		{`echo "building $APP"`, false},
		{"npm run build && npm test", true},
		{"npm run build || true", true},
		{"npm run build | tee log.txt", true},
		{"npm run build > out.log", true},
		{"npm run build; npm test", true},
		{"npm run build &", true},
		{"NODE_ENV=production npm run build", true},
		{"echo $(date)", true},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			assert.Equal(t, tt.expected, shell.UsesControlOperators(tt.cmd))
		})
	}
}
