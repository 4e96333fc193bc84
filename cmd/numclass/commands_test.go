package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Veraticus/number-classifier/internal/common"
	"github.com/Veraticus/number-classifier/internal/model"
	"github.com/Veraticus/number-classifier/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestClassifyCommand_JSON(t *testing.T) {
	out, err := runCommand(t, classifyCmd(), "--json", "371")
	require.NoError(t, err)

	var got model.Classification
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, int64(371), got.Number)
	assert.False(t, got.IsPrime)
	assert.False(t, got.IsPerfect)
	assert.Equal(t, []string{"odd", "armstrong"}, got.Properties)
	assert.Equal(t, 11, got.DigitSum)
	assert.Empty(t, got.FunFact)
}

func TestClassifyCommand_NegativeNumber(t *testing.T) {
	out, err := runCommand(t, classifyCmd(), "--json", "--", "-4")
	require.NoError(t, err)
	assert.Contains(t, out, `"number": -4`)
	assert.Contains(t, out, `"even"`)
}

func TestClassifyCommand_Rendered(t *testing.T) {
	out, err := runCommand(t, classifyCmd(), "28")
	require.NoError(t, err)
	assert.Contains(t, out, "28")
	assert.Contains(t, out, "perfect")
}

func TestClassifyCommand_InvalidNumber(t *testing.T) {
	_, err := runCommand(t, classifyCmd(), "twelve")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidNumber)

	var userErr *common.UserError
	assert.True(t, errors.As(err, &userErr))
}

func TestClassifyCommand_WithFact(t *testing.T) {
	facts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/28/math", r.URL.Path)
		_, _ = w.Write([]byte("28 is the second perfect number."))
	}))
	defer facts.Close()

	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("facts.base_url", facts.URL)

	out, err := runCommand(t, classifyCmd(), "--json", "--fact", "28")
	require.NoError(t, err)
	assert.Contains(t, out, `"fun_fact": "28 is the second perfect number."`)
}

func TestFetchFact_FailureIsEmpty(t *testing.T) {
	facts := service.FactFunc(func(context.Context, int64) (string, error) {
		return "", common.ErrFactUnavailable
	})

	assert.Empty(t, fetchFact(context.Background(), facts, 7, time.Second))
}

func TestScanCommand(t *testing.T) {
	out, err := runCommand(t, scanCmd(), "--from", "1", "--to", "500", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "Scan 1..500")
	assert.Contains(t, out, "6, 28, 496")
	assert.Contains(t, out, "153, 370, 371, 407")
}

func TestScanCommand_InvalidRange(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "reversed", args: []string{"--from", "10", "--to", "1"}},
		{name: "too large", args: []string{"--from", "0", "--to", "100000000"}},
		{name: "full int64 range", args: []string{"--from=-9223372036854775808", "--to=9223372036854775807"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, scanCmd(), tt.args...)
			require.ErrorIs(t, err, common.ErrInvalidNumber)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, versionCmd())
	require.NoError(t, err)
	assert.Equal(t, "numclass dev\n", out)
}
