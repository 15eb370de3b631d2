package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/passmgr/internal/configs"

	"github.com/fatih/color"
)

const testMasterPassword = "correct horse battery staple"

// testInput records what the command layer read and wrote outside of
// stdout: prompts answered and clipboard contents.
type testInput struct {
	master    string
	newMaster string
	secret    string
	clipboard string
}

// setupTestEnvironment isolates config, audit and terminal input for one
// test and returns the vault path to pass with --file.
func setupTestEnvironment(t *testing.T) (string, *testInput) {
	t.Helper()
	base := t.TempDir()

	originalSettings := configs.UserPassmgrSettings
	originalNoColor := color.NoColor
	origMaster := readMasterPassword
	origNewMaster := readNewMasterPassword
	origSecret := readEntrySecret
	origNotes := readEntryNotes
	origClipboard := writeClipboard
	origBaseURL := updateBaseURL
	origVersion := Version

	t.Cleanup(func() {
		configs.UserPassmgrSettings = originalSettings
		color.NoColor = originalNoColor
		readMasterPassword = origMaster
		readNewMasterPassword = origNewMaster
		readEntrySecret = origSecret
		readEntryNotes = origNotes
		writeClipboard = origClipboard
		updateBaseURL = origBaseURL
		Version = origVersion
		ResetGlobalState()
	})

	configs.UserPassmgrSettings = &configs.UserSettings{
		ConfigPath: filepath.Join(base, "config"),
		DataPath:   filepath.Join(base, "data"),
		Username:   "testuser",
	}
	color.NoColor = true

	in := &testInput{
		master:    testMasterPassword,
		newMaster: testMasterPassword,
		secret:    "prompted-secret",
	}
	readMasterPassword = func(string) (string, error) { return in.master, nil }
	readNewMasterPassword = func() (string, error) { return in.newMaster, nil }
	readEntrySecret = func(string) (string, error) { return in.secret, nil }
	readEntryNotes = func() (*string, error) { return nil, nil }
	writeClipboard = func(s string) error {
		in.clipboard = s
		return nil
	}

	return filepath.Join(base, "vault.json"), in
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stdoutReader)
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stderrReader)
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	first := <-outputChan
	second := <-outputChan

	return first + second, err
}

// runCLI executes passmgr with args against a clean command state.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ResetGlobalState()
	if args == nil {
		// cobra falls back to os.Args for nil.
		args = []string{}
	}
	RootCmd.SetArgs(args)
	return captureOutput(func() error {
		return RootCmd.Execute()
	})
}

// initVault creates a vault at path with the test master password.
func initVault(t *testing.T, path string) {
	t.Helper()
	output, err := runCLI(t, "init", "--file", path)
	if err != nil {
		t.Fatalf("init failed: %v\nOutput: %s", err, output)
	}
}
