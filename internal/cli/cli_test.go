package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanmweiss/go-vas/field"
)

func execute(t *testing.T, args ...string) (out, logs string, err error) {
	t.Helper()

	var outBuf, logBuf bytes.Buffer

	c := New(&logBuf, LogDebug)
	root := c.RootCommand()
	root.SetOut(&outBuf)
	root.SetErr(&outBuf)
	root.SetArgs(args)

	err = root.ExecuteContext(context.Background())

	return outBuf.String(), logBuf.String(), err
}

func writeBatch(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "batch.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestIsolateFloat64(t *testing.T) {
	a := assert.New(t)

	out, logs, err := execute(t, "isolate", "--", "7", "-7", "0", "1")
	require.NoError(t, err)

	a.Contains(out, "(1, 1.5)")
	a.Contains(out, "(1.5, 2)")
	a.Contains(out, "7 operations")
	a.Contains(out, "depth 3")

	a.Contains(logs, "isolation complete")
	a.Contains(logs, "root isolated")
}

func TestIsolateBigFloat(t *testing.T) {
	a := assert.New(t)

	out, _, err := execute(t, "isolate", "--backend", "bigfloat", "--prec", "128", "--workers", "2", "--", "7", "-7", "0", "1")
	require.NoError(t, err)

	a.Contains(out, "(1, 1.5)")
	a.Contains(out, "(1.5, 2)")
}

func TestIsolateAll(t *testing.T) {
	a := assert.New(t)

	out, _, err := execute(t, "isolate", "--all", "--", "-2", "0", "1")
	require.NoError(t, err)

	a.Contains(out, "(-Inf, 0)")
	a.Contains(out, "(0, +Inf)")
	a.NotContains(out, "operations")
}

func TestIsolateExactRoots(t *testing.T) {
	out, _, err := execute(t, "isolate", "--", "0", "2", "-3", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "{0} exact")
	assert.Contains(t, out, "{1} exact")
}

func TestIsolateNoRoots(t *testing.T) {
	out, _, err := execute(t, "isolate", "--", "1", "2", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "no real roots in range")
}

func TestIsolateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown backend", []string{"isolate", "--backend", "decimal", "--", "1", "-1"}, errUnknownBackend},
		{"zero workers", []string{"isolate", "--workers", "0", "--", "1", "-1"}, errInvalidSetting},
		{"bad scaling", []string{"isolate", "--scaling", "0.5", "--", "1", "-1"}, errInvalidSetting},
		{"bad coefficient", []string{"isolate", "--", "1", "x"}, errInvalidCoefficient},
		{"infinite coefficient", []string{"isolate", "--", "1", "Inf"}, errInvalidCoefficient},
		{"bad bigfloat coefficient", []string{"isolate", "--backend", "bigfloat", "--", "1", "1/2"}, errInvalidCoefficient},
		{"zero polynomial", []string{"isolate", "--", "0", "0"}, field.ErrZeroPolynomial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBatch(t *testing.T) {
	a := assert.New(t)

	path := writeBatch(t, `
backend = "bigfloat"
precision = 128
workers = 2

[[polynomial]]
name = "cubic"
coefficients = ["7", "-7", "0", "1"]

[[polynomial]]
name = "sqrt2"
coefficients = ["-2", "0", "1"]
all = true
`)

	out, logs, err := execute(t, "batch", path)
	require.NoError(t, err)

	a.Contains(out, "cubic")
	a.Contains(out, "(1.5, 2)")
	a.Contains(out, "sqrt2")
	a.Contains(out, "(-Inf, 0)")
	a.Contains(out, "isolated 2 polynomials")

	a.Contains(logs, "batch complete")
	a.Contains(logs, "run=")
}

func TestBatchPartialFailure(t *testing.T) {
	a := assert.New(t)

	path := writeBatch(t, `
[[polynomial]]
coefficients = ["1", "oops"]

[[polynomial]]
name = "good"
coefficients = ["-1", "1"]
`)

	out, _, err := execute(t, "batch", path)
	require.Error(t, err)

	a.ErrorIs(err, errInvalidCoefficient)
	a.Contains(err.Error(), "1 of 2 polynomials failed")
	a.Contains(out, "#1")
	a.Contains(out, "good")
	a.Contains(out, "(0, +Inf)")
}

func TestLoadBatch(t *testing.T) {
	a := assert.New(t)

	b, err := loadBatch(writeBatch(t, `
workers = 4
scaling = 8.0
square_free = true

[[polynomial]]
name = "line"
coefficients = ["-3", "1"]
`))
	require.NoError(t, err)

	a.Equal(backendFloat64, b.Backend)
	a.Equal(field.DefaultPrecision, b.Precision)
	a.Equal(4, b.Workers)
	a.Equal(8.0, b.Scaling)
	a.True(b.SquareFree)
	a.Equal([]request{{Name: "line", Coefficients: []string{"-3", "1"}}}, b.Polynomials)
}

func TestLoadBatchErrors(t *testing.T) {
	_, err := loadBatch(writeBatch(t, `backend = "float64"`))
	assert.ErrorIs(t, err, errEmptyBatch)

	_, err = loadBatch(writeBatch(t, `
backend = "decimal"

[[polynomial]]
coefficients = ["1"]
`))
	assert.ErrorIs(t, err, errUnknownBackend)

	_, err = loadBatch(writeBatch(t, `[[polynomial]`))
	assert.Error(t, err)

	_, err = loadBatch(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
