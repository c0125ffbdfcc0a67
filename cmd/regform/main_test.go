package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validArgs = []string{
	"--username", "bob-1",
	"--email", "bob@example.com",
	"--phone", "+1 (415) 555-1234",
	"--password", "Tr0ub4dor&3",
	"--verify-password", "Tr0ub4dor&3",
	"--score", "4",
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidate_CleanForm(t *testing.T) {
	out, err := execute(t, append([]string{"validate"}, validArgs...)...)

	require.NoError(t, err)
	assert.Contains(t, out, "Form is valid")
}

func TestValidate_DirtyFormJSON(t *testing.T) {
	out, err := execute(t,
		"validate", "--json",
		"--email", "not-an-email",
		"--password", "abc",
		"--verify-password", "abc",
		"--score", "1",
	)

	assert.ErrorIs(t, err, errFormDirty)

	var errs map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &errs))
	assert.Equal(t, map[string]string{
		"username": "Required",
		"email":    "Invalid email address",
		"password": "Too weak",
	}, errs)
}

func TestValidate_TextReport(t *testing.T) {
	out, err := execute(t, "validate", "--username", "bob smith")

	assert.ErrorIs(t, err, errFormDirty)
	assert.Contains(t, out, "Username:        Alphanumeric characters and dashes only")
	assert.Contains(t, out, "Email:           Required")
}

func TestValidate_ScoreOutOfRange(t *testing.T) {
	_, err := execute(t, append([]string{"validate"}, append(validArgs, "--score", "9")...)...)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, errFormDirty)
}

func TestSubmit_SendsCleanForm(t *testing.T) {
	var calls atomic.Int32
	var body map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	_, err := execute(t, append([]string{"submit", "--url", srv.URL}, validArgs...)...)

	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, map[string]any{
		"username": "bob-1",
		"email":    "bob@example.com",
		"phone":    "+1 (415) 555-1234",
		"password": "Tr0ub4dor&3",
	}, body)
}

func TestSubmit_RefusesDirtyForm(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	_, err := execute(t, "submit", "--url", srv.URL, "--username", "bob-1")

	assert.ErrorIs(t, err, errFormDirty)
	assert.Equal(t, int32(0), calls.Load())
}
