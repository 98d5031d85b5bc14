package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "sign", TokenDuration: time.Hour},
		Storage: Storage{DB: DB{Driver: DriverSQLite, DSN: "file:test.db"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a config with no
// sources is rejected.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that an earlier config keeps its
// non-zero values and later configs only fill the gaps.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{
			App:    App{TokenSignKey: "ignored", TokenIssuer: "from-second"},
			Server: Server{HTTPAddress: "ignored:1", GRPCAddress: "localhost:9090"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "from-second", cfg.App.TokenIssuer)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
}

// TestBuild_DefaultsFillGaps verifies that defaults never override an
// explicit value.
func TestBuild_DefaultsFillGaps(t *testing.T) {
	explicit := validConfig()
	explicit.App.TokenIssuer = "custom"

	cfg, err := newConfigBuilder().withDefaults().build()
	assert.Nil(t, cfg)
	require.Error(t, err)

	b := newConfigBuilder()
	b.configs = append(b.configs, explicit)
	cfg, err = b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "custom", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultMaxOpenConns, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, DefaultMaxIdleConns, cfg.Storage.DB.MaxIdleConns)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":      "env-sign",
		"STORAGE_DB_DRIVER":       "sqlite3",
		"STORAGE_DB_DATABASE_URI": "file:env.db",
		"SERVER_ADDRESS":          ":8080",
	})

	cfg, err := newConfigBuilder().withEnv().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "env-sign", cfg.App.TokenSignKey)
	assert.Equal(t, "file:env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_DURATION": "forever"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReadsOSArgs(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"server", "-token-sign-key", "flag-sign", "-a", "localhost:8081"}
	t.Cleanup(func() { os.Args = oldArgs })

	b := newConfigBuilder().withFlags()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-sign", b.configs[0].App.TokenSignKey)
	assert.Equal(t, "localhost:8081", b.configs[0].Server.HTTPAddress)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"server", "-no-such-flag"}
	t.Cleanup(func() { os.Args = oldArgs })

	b := newConfigBuilder().withFlags()
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_sign_key": "json-sign"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-sign", b.configs[1].App.TokenSignKey)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "missing.json")})

	b.withJSON()
	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesHighestPriorityPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"token_issuer": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"token_issuer": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].App.TokenIssuer)
}

func TestWithJSON_SkippedWhenErrorAlreadySet(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{})

	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	assert.Len(t, b.configs, 1)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_LoadsFileFromDOTENV(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_TOKEN_SIGN_KEY=dotenv-sign\n"), 0o600))
	t.Setenv("DOTENV", path)
	t.Cleanup(func() { _ = os.Unsetenv("APP_TOKEN_SIGN_KEY") })

	b := newConfigBuilder().withDotEnv().withEnv()
	require.NoError(t, b.err)
	assert.Equal(t, "dotenv-sign", b.configs[0].App.TokenSignKey)
}

func TestWithDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_SIGN_KEY": "real-env"})
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_TOKEN_SIGN_KEY=dotenv-sign\n"), 0o600))
	t.Setenv("DOTENV", path)

	b := newConfigBuilder().withDotEnv().withEnv()
	require.NoError(t, b.err)
	assert.Equal(t, "real-env", b.configs[0].App.TokenSignKey)
}

func TestWithDotEnv_MissingExplicitFileSetsError(t *testing.T) {
	t.Setenv("DOTENV", filepath.Join(t.TempDir(), "nope.env"))

	b := newConfigBuilder().withDotEnv()
	assert.Error(t, b.err)
}

func TestWithDotEnv_NoFileIsNoOp(t *testing.T) {
	t.Setenv("DOTENV", "")
	t.Chdir(t.TempDir())

	b := newConfigBuilder().withDotEnv()
	assert.NoError(t, b.err)
}

// ── precedence ────────────────────────────────────────────────────────────────

// TestPrecedence_FlagsOverEnvOverJSON exercises the full chain.
func TestPrecedence_FlagsOverEnvOverJSON(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"token_sign_key": "json-sign", "token_issuer": "json-issuer", "log_level": "warn"},
		"storage": map[string]any{"db": map[string]any{"driver": "sqlite3", "dsn": "file:json.db"}},
	})
	setEnvVars(t, map[string]string{
		"CONFIG":             jsonPath,
		"APP_TOKEN_SIGN_KEY": "env-sign",
		"APP_TOKEN_ISSUER":   "env-issuer",
	})
	t.Setenv("DOTENV", "")
	t.Chdir(t.TempDir())

	oldArgs := os.Args
	os.Args = []string{"server", "-token-sign-key", "flag-sign", "-a", ":8080"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)

	assert.Equal(t, "flag-sign", cfg.App.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "file:json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
}
