package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/config"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/usecases/authenticating"
)

func testConfig(allowWrites bool) func() (*config.Config, error) {
	return func() (*config.Config, error) {
		return &config.Config{
			App:    config.App{LogLevel: "error", Env: "dev"},
			Auth:   config.Auth{Secret: "cli-secret"},
			Safety: config.Safety{AllowWrites: allowWrites},
		}, nil
	}
}

func execute(t *testing.T, loadConfig func() (*config.Config, error), args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(loadConfig)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd(testConfig(false))

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	for _, want := range []string{"setup", "verify", "check-connection", "summary", "issue-token"} {
		assert.Contains(t, names, want)
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("file"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("sheet"))
}

func TestIssueTokenCmd(t *testing.T) {
	out, err := execute(t, testConfig(false), "issue-token", "ops@cascadia", "--role", "1", "--ttl", "1h")
	require.NoError(t, err)

	claims, err := authenticating.NewService("cli-secret").ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ops@cascadia", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.RoleID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestIssueTokenCmd_DefaultsToSupervisor(t *testing.T) {
	out, err := execute(t, testConfig(false), "issue-token", "lead")
	require.NoError(t, err)

	claims, err := authenticating.NewService("cli-secret").ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSupervisor, claims.RoleID)
}

func TestIssueTokenCmd_RequiresSubject(t *testing.T) {
	_, err := execute(t, testConfig(false), "issue-token")
	assert.Error(t, err)
}

func TestIssueTokenCmd_InvalidRole(t *testing.T) {
	_, err := execute(t, testConfig(false), "issue-token", "ops", "--role", "9")
	assert.ErrorIs(t, err, authenticating.ErrInvalidRole)
}

func TestRootCmd_RefusesWritesWhenNotPermitted(t *testing.T) {
	_, err := execute(t, testConfig(false), "--file", "budget.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to write")
}

func TestSetupCmd_RefusesWritesWhenNotPermitted(t *testing.T) {
	_, err := execute(t, testConfig(false), "setup", "--file", "budget.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ALLOW_WRITES")
}

func TestRootCmd_RequiresWorkbook(t *testing.T) {
	_, err := execute(t, testConfig(true))
	assert.ErrorIs(t, err, errNoWorkbook)
}

func TestSummaryCmd_RejectsNegativeLimit(t *testing.T) {
	_, err := execute(t, testConfig(false), "summary", "--limit", "-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--limit")
}

func TestRootCmd_ConfigError(t *testing.T) {
	errConfig := errors.New("bad config")
	_, err := execute(t, func() (*config.Config, error) { return nil, errConfig }, "verify")
	assert.ErrorIs(t, err, errConfig)
}

func TestRootCmd_RejectsPositionalArgs(t *testing.T) {
	_, err := execute(t, testConfig(true), "budget.xlsx")
	assert.Error(t, err)
}
