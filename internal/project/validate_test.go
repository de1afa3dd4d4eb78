package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"simple", "my-project", ""},
		{"underscores", "my_project", ""},
		{"mixed case and digits", "Tool2_go-X", ""},
		{"empty", "", "cannot be empty"},
		{"space", "my project", "cannot contain spaces"},
		{"space wins over hyphen", "-my project", "cannot contain spaces"},
		{"space wins over invalid chars", "a/b c", "cannot contain spaces"},
		{"only space", " ", "cannot contain spaces"},
		{"leading hyphen", "-bad", "leading hyphen"},
		{"lone hyphen", "-", "leading hyphen"},
		{"slash", "bad/name", "invalid characters"},
		{"dot", "bad.name", "invalid characters"},
		{"tab", "bad\tname", "invalid characters"},
		{"unicode", "café", "invalid characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateName(tt.input)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.input, got)
				return
			}
			require.ErrorIs(t, err, ErrInvalidName)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, got)
		})
	}
}

func TestValidateName_MessageNamesKindOnce(t *testing.T) {
	_, err := ValidateName("")
	require.EqualError(t, err, "invalid project name: cannot be empty")

	_, err = ValidateName("bad/name")
	require.EqualError(t, err, `invalid project name: contains invalid characters: "bad/name"`)
}

func TestValidateName_Idempotent(t *testing.T) {
	first, err := ValidateName("cool-tool")
	require.NoError(t, err)
	second, err := ValidateName(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestModuleName(t *testing.T) {
	assert.Equal(t, "cool_tool", ModuleName("cool-tool"))
	assert.Equal(t, "a_b_c", ModuleName("a-b_c"))
	assert.Equal(t, "plain", ModuleName("plain"))
}

func TestValidatePythonVersion(t *testing.T) {
	for _, v := range []string{"3.14", "3.13", "3.9", "10.0"} {
		got, err := ValidatePythonVersion(v)
		require.NoError(t, err, v)
		assert.Equal(t, v, got)
	}

	for _, v := range []string{"", "3", "3.14.1", "v3.14", "3.x", "3.14 ", " 3.14", "3..14", ".14", "3."} {
		_, err := ValidatePythonVersion(v)
		require.ErrorIs(t, err, ErrInvalidVersion, "version %q", v)
		assert.Contains(t, err.Error(), "MAJOR.MINOR")
	}
}

func TestValidatePythonVersion_Idempotent(t *testing.T) {
	first, err := ValidatePythonVersion("3.13")
	require.NoError(t, err)
	second, err := ValidatePythonVersion(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidateInstallMode(t *testing.T) {
	for _, m := range []string{"editable", "none", "command-only"} {
		got, err := ValidateInstallMode(m)
		require.NoError(t, err)
		assert.Equal(t, InstallMode(m), got)
	}

	_, err := ValidateInstallMode("bad")
	require.ErrorIs(t, err, ErrInvalidInstallMode)
	assert.Contains(t, err.Error(), "editable, none, command-only")
}

func TestValidateArchetype(t *testing.T) {
	got, err := ValidateArchetype("script")
	require.NoError(t, err)
	assert.Equal(t, "script", got)

	_, err = ValidateArchetype("invalid")
	require.ErrorIs(t, err, ErrInvalidArchetype)
	assert.Contains(t, err.Error(), "script")
}
