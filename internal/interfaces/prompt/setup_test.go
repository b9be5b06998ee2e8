package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type acceptOnlyValidator struct {
	accepted string
}

func (v *acceptOnlyValidator) ValidateFolder(path string) error {
	if path == v.accepted {
		return nil
	}
	return errors.New("rejected")
}

func TestSetupRun(t *testing.T) {
	// First folder answer is rejected, second accepted (quotes are
	// stripped). One keep name is invalid and re-prompted. Interval
	// left blank falls back to the default.
	input := strings.Join([]string{
		"/nope",
		`"/data/app/cache"`,
		"node_modules",
		"bad?name",
		".git",
		"",
		"",
	}, "\n") + "\n"

	var out bytes.Buffer
	setup := NewSetup(strings.NewReader(input), &out,
		&acceptOnlyValidator{accepted: "/data/app/cache"})

	settings, err := setup.Run()
	require.NoError(t, err)

	assert.Equal(t, "/data/app/cache", settings.Folder)
	assert.Equal(t, []string{"node_modules", ".git"}, settings.KeepList)
	assert.Equal(t, defaultIntervalSeconds, settings.Interval)

	assert.Contains(t, out.String(), "Invalid path")
	assert.Contains(t, out.String(), "Invalid name")
}

func TestSetupExplicitInterval(t *testing.T) {
	input := "/data/app/cache\n\nabc\n0\n90\n"

	var out bytes.Buffer
	setup := NewSetup(strings.NewReader(input), &out,
		&acceptOnlyValidator{accepted: "/data/app/cache"})

	settings, err := setup.Run()
	require.NoError(t, err)

	assert.Empty(t, settings.KeepList)
	assert.Equal(t, 90, settings.Interval)
	assert.Contains(t, out.String(), "Invalid number")
}

func TestSetupInputEndsEarly(t *testing.T) {
	var out bytes.Buffer
	setup := NewSetup(strings.NewReader("/data/app/cache\n"), &out,
		&acceptOnlyValidator{accepted: "/data/app/cache"})

	_, err := setup.Run()
	assert.ErrorIs(t, err, io.EOF)
}
