// File: argconf/tls_test.go
package argconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTLSOptions tests the shape of the shared TLS option catalog
func TestTLSOptions(t *testing.T) {
	opts := TLSOptions()
	require.Len(t, opts, 6)

	byName := make(map[string]Option, len(opts))
	for _, o := range opts {
		assert.True(t, o.TakesArgument, "%s should take an argument", o.Name)
		assert.False(t, o.Required, "%s should be optional", o.Name)
		assert.NotEmpty(t, o.Help)
		byName[o.Name] = o
	}

	assert.Contains(t, byName, TLSKeystoreLocation)
	assert.Contains(t, byName, TLSTruststorePassword)
	assert.True(t, byName[TLSEnabledCiphers].Repeatable)
	assert.True(t, byName[TLSEnabledProtocols].Repeatable)

	// The catalog must merge cleanly into an application schema.
	desc := Description{Name: "app", Version: "0.1"}.Merge(opts...)
	assert.NoError(t, desc.validate())
}

// TestTLSConfigMaterialization tests the describe/materialize contract end to end
func TestTLSConfigMaterialization(t *testing.T) {
	t.Run("FromCommandLine", func(t *testing.T) {
		args := []string{"bin",
			"--tls-keystore-location", "/etc/keys/server.p12",
			"--tls-keystore-password", "hunter2",
			"--tls-enabled-ciphers", "TLS_AES_128_GCM_SHA256",
			"--tls-enabled-ciphers", "TLS_AES_256_GCM_SHA384",
		}

		var cfg TLSConfig
		require.NoError(t, Build(&cfg, args, ""))

		assert.Equal(t, "/etc/keys/server.p12", cfg.KeystoreLocation)
		assert.Equal(t, "hunter2", cfg.KeystorePassword)
		assert.Equal(t, "", cfg.TruststoreLocation)
		assert.Equal(t,
			[]string{"TLS_AES_128_GCM_SHA256", "TLS_AES_256_GCM_SHA384"},
			cfg.EnabledCiphers)
	})

	t.Run("FileOverriddenByCommandLine", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tls.rc")
		content := "--tls-keystore-location\n/from/file.p12\n--tls-truststore-location\n/from/file-trust.p12\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		var cfg TLSConfig
		resolved, err := NewBuilder().
			WithDescription(cfg.ConfigDescription()).
			WithArgs([]string{"bin", "--tls-keystore-location", "/from/cli.p12"}).
			WithEnvVar("ARGCONF_TLS_TEST_CONFIG").
			WithEnv(MapEnv{"ARGCONF_TLS_TEST_CONFIG": path}).
			Build()
		require.NoError(t, err)
		require.NoError(t, cfg.ParseValues(resolved))

		assert.Equal(t, "/from/cli.p12", cfg.KeystoreLocation)
		assert.Equal(t, "/from/file-trust.p12", cfg.TruststoreLocation)
	})
}
