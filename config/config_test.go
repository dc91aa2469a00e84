package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"instabug_bridge/contract"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("INSTABUG_CONFIG", "")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, contract.PlatformAndroid, c.Platform())
	require.Equal(t, []contract.InvocationEvent{contract.InvocationEventShake}, c.InvocationEvents())
	require.True(t, c.Network.Enabled)
	require.False(t, c.Screens.FlushSuperseded)
	require.Equal(t, 5*time.Second, c.Native.RequestTimeout)
	require.Equal(t, "info", c.Log.Level)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[sdk]
token = "abc123"
invocation_events = ["invocationEventFloatingButton", "invocationEventScreenshot"]
platform = "ios"
locale = "de-CH"

[log]
level = "debug"

[network]
enabled = false

[screens]
flush_superseded = true

[native]
request_timeout = "750ms"
`)
	t.Setenv("INSTABUG_CONFIG", path)

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "abc123", c.SDK.Token)
	require.Equal(t, contract.PlatformIOS, c.Platform())
	require.Equal(t, []contract.InvocationEvent{
		contract.InvocationEventFloatingButton,
		contract.InvocationEventScreenshot,
	}, c.InvocationEvents())
	require.Equal(t, "de-CH", c.SDK.Locale)
	require.Equal(t, "debug", c.Log.Level)
	require.False(t, c.Network.Enabled)
	require.True(t, c.Screens.FlushSuperseded)
	require.Equal(t, 750*time.Millisecond, c.Native.RequestTimeout)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[sdk]
token = "from-file"
`)
	t.Setenv("INSTABUG_CONFIG", path)
	t.Setenv("INSTABUG_SDK_TOKEN", "from-env")
	t.Setenv("INSTABUG_SDK_PLATFORM", "ios")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "from-env", c.SDK.Token)
	require.Equal(t, contract.PlatformIOS, c.Platform())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("INSTABUG_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	_, err := Load()
	require.Error(t, err)
}

func TestValidateRejectsUnknownPlatform(t *testing.T) {
	c := Config{
		SDK:    SDKConfig{Platform: "web"},
		Native: NativeConfig{RequestTimeout: time.Second},
	}
	require.ErrorContains(t, c.Validate(), `unknown platform "web"`)
}

func TestDefaultsMatchLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("INSTABUG_CONFIG", "")

	loaded, err := Load()
	require.NoError(t, err)
	require.Equal(t, loaded, Defaults())
	require.NoError(t, Defaults().Validate())
}
