package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ReusesComponent(t *testing.T) {
	a := NewLogger("web")
	b := NewLogger("web")
	assert.Same(t, a, b)
	assert.Equal(t, "web", a.Data["component"])
}

func TestConfigure_JSON(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	Configure("debug", "json")
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		Configure("info", "text")
	})

	NewLogger("test").WithField("view", "about").Debug("panel opened")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "panel opened", line["msg"])
	assert.Equal(t, "test", line["component"])
	assert.Equal(t, "about", line["view"])
}

func TestConfigure_UnknownLevel(t *testing.T) {
	Configure("loud", "text")
	assert.Equal(t, logrus.InfoLevel, root.GetLevel())
}
