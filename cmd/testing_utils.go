// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up test environments,
// capturing output, and running the CLI in-process.
package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/PolarWolf314/kauri/internal/clipboard"
	"github.com/PolarWolf314/kauri/internal/configs"
	"github.com/PolarWolf314/kauri/internal/pgp/pgptest"
	"github.com/PolarWolf314/kauri/internal/workflows"
)

const testFingerprint = "0123456789ABCDEF0123456789ABCDEF01234567"

// testEnvironment holds the fakes wired into the CLI for one test.
type testEnvironment struct {
	Home      string
	Settings  *configs.Settings
	Crypter   *pgptest.Crypter
	Clipboard *clipboard.Memory
}

// setupTestEnvironment points kauri at a temporary home directory and
// replaces gpg and the clipboard with in-memory fakes.
func setupTestEnvironment(t *testing.T) *testEnvironment {
	t.Helper()

	t.Setenv("NO_COLOR", "1")

	home := t.TempDir()
	env := configs.Environment{Home: home}
	settings, err := configs.ResolveSettings(env)
	if err != nil {
		t.Fatalf("Failed to resolve settings: %v", err)
	}

	te := &testEnvironment{
		Home:      home,
		Settings:  settings,
		Crypter:   &pgptest.Crypter{},
		Clipboard: &clipboard.Memory{},
	}

	originalEnvironment := environment
	ResetGlobalState()
	environment = func() (configs.Environment, error) { return env, nil }
	depsOverride = func(d *workflows.Deps) {
		d.Crypter = te.Crypter
		d.Resolver = &pgptest.Resolver{Keys: map[string]string{"alice@example.com": testFingerprint}}
		d.Clipboard = te.Clipboard
	}

	t.Cleanup(func() {
		environment = originalEnvironment
		depsOverride = nil
		ResetGlobalState()
		RootCmd.SetArgs(nil)
		RootCmd.SetIn(nil)
	})

	return te
}

// captureOutput captures stdout and stderr during function execution.
func captureOutput(fn func() error) (string, string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stdoutReader)
		stdoutChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stderrReader)
		stderrChan <- buf.String()
	}()

	err := fn()

	// Close writers to signal EOF
	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan, <-stderrChan, err
}

// runKauri executes the CLI with args, feeding stdin when non-empty.
func runKauri(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	ResetGlobalState()
	RootCmd.SetArgs(args)
	if stdin != "" {
		RootCmd.SetIn(strings.NewReader(stdin))
	} else {
		RootCmd.SetIn(strings.NewReader(""))
	}

	return captureOutput(Execute)
}

// initializeStore runs `kauri init` for alice with the store under the test home.
func initializeStore(t *testing.T, te *testEnvironment) string {
	t.Helper()

	storePath := te.Home + string(os.PathSeparator) + "store"
	stdout, stderr, err := runKauri(t, "", "init", "alice@example.com", "--path", storePath)
	if err != nil {
		t.Fatalf("Failed to initialize store: %v\nstdout: %s\nstderr: %s", err, stdout, stderr)
	}
	return storePath
}

// addSecret runs `kauri new` with a matching confirmation.
func addSecret(t *testing.T, name, secret string) {
	t.Helper()

	stdout, stderr, err := runKauri(t, secret+"\n"+secret+"\n", "new", name)
	if err != nil {
		t.Fatalf("Failed to add %s: %v\nstdout: %s\nstderr: %s", name, err, stdout, stderr)
	}
}
