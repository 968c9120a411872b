package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/pkg/jwt"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestPlugins_ListaBuiltin(t *testing.T) {
	out, _, err := run(t, "plugins", "--json")
	require.NoError(t, err)

	var list dto.PluginListResponse
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "generic-excel", list.Items[0].ID)
	assert.Equal(t, "mock-generator", list.Items[1].ID)
}

func TestPlugins_ConsultaPorID(t *testing.T) {
	out, _, err := run(t, "plugins", "--has", "mock-generator")
	require.NoError(t, err)
	assert.Equal(t, "true", strings.TrimSpace(out))

	out, _, err = run(t, "plugins", "--has", "sap-b1")
	var ee *exitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, exitFailure, ee.code)
	assert.Equal(t, "false", strings.TrimSpace(out))

	out, _, err = run(t, "plugins", "--formats", "generic-excel")
	require.NoError(t, err)
	assert.Contains(t, out, "csv")

	_, _, err = run(t, "plugins", "--formats", "sap-b1")
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, exitUsage, ee.code)
}

func TestToken_EmiteTokenValido(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "secreto-cli")

	out, _, err := run(t, "token", "--scope", "import")
	require.NoError(t, err)

	subject, scope, err := jwt.Parse("secreto-cli", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "desktop-shell", subject)
	assert.Equal(t, jwt.ScopeImport, scope)
}

func TestToken_SinSecreto(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "")

	_, _, err := run(t, "token")
	var ee *exitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, exitUsage, ee.code)
}

func TestValidate_SinBaseDeDatos(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "productos.csv")
	require.NoError(t, os.WriteFile(path, []byte("sku,name\nA1,Tornillo\nA2,Tuerca\n"), 0o600))

	out, _, err := run(t, "validate", path)
	require.NoError(t, err)

	var report dto.ValidationReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Valid)
}

func TestValidate_ArchivoInexistente(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := run(t, "validate", "no-existe.csv")
	require.Error(t, err)
	assert.Contains(t, out, `"valid": false`)
}

func TestImport_RequiereBodega(t *testing.T) {
	_, _, err := run(t, "import", "x.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warehouse")
}
