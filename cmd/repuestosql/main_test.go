package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"repuestosql/pkg/config"
	"repuestosql/pkg/convert"
	"repuestosql/pkg/sqlwriter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
)

const exportCSV = "CB;CI;PRODUCTO;TIPO;MODELO;REFERENCIA;MARCA;EXISTENCIAS;E1;E2;STOCK;PRECIO;ESTANTE;NIVEL;X;DESCRIPCION\n" +
	"A1;B2;Tornillo;Pernos;M8;REF-1;ACME;10;;;5;2;1;;;Desc;\n" +
	";;;\n" +
	"A2;;O'Brien's Part;;;;;abc\n"

const wantSQL = `INSERT INTO "public"."repuestos" ("cb", "ci", "producto", "tipo", "modelo_especificacion", "referencia", "marca", "existencias_iniciales", "stock", "precio", "descripcion_larga", "activo", "estante", "nivel") VALUES ('A1', 'B2', 'Tornillo', 'Pernos', 'M8', 'REF-1', 'ACME', 10.0, 5.0, 2.0, 'Desc', 'true', '1', NULL);
INSERT INTO "public"."repuestos" ("cb", "ci", "producto", "tipo", "modelo_especificacion", "referencia", "marca", "existencias_iniciales", "stock", "precio", "descripcion_larga", "activo", "estante", "nivel") VALUES ('A2', NULL, 'O''Brien''s Part', NULL, NULL, NULL, NULL, 0.0, 0.0, 0.0, NULL, 'true', NULL, NULL);
`

func testConfig(t *testing.T, csv string) config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Input = filepath.Join(dir, "export.csv")
	cfg.Output = filepath.Join(dir, "inserts.sql")
	require.NoError(t, os.WriteFile(cfg.Input, []byte(csv), 0o644))
	return cfg
}

func TestRun(t *testing.T) {
	cfg := testConfig(t, exportCSV)

	stats, err := run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, convert.Stats{Read: 3, Written: 2, Skipped: 1}, stats)

	got, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, wantSQL, string(got))

	lines, err := sqlwriter.CountLines(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, 2, lines)
}

func TestRunTwiceIsByteIdentical(t *testing.T) {
	cfg := testConfig(t, exportCSV)

	_, err := run(context.Background(), cfg)
	require.NoError(t, err)
	first, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)

	_, err = run(context.Background(), cfg)
	require.NoError(t, err)
	second, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunWindows1252(t *testing.T) {
	cfg := testConfig(t, "h\nA;B;V\xe1lvula;T;M;R;Br;1\n")
	cfg.Encoding = "windows-1252"

	_, err := run(context.Background(), cfg)
	require.NoError(t, err)
	got, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Contains(t, string(got), "'Válvula'")
}

func TestRunStrayQuoteKeepsLaterRows(t *testing.T) {
	cfg := testConfig(t, "h\n\"TUBO 1/2\" X 3;B;P;T;M;R;Br;1\nA2;B;P;T;M;R;Br;2\nA3;B;P;T;M;R;Br;3\n")

	stats, err := run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, convert.Stats{Read: 3, Written: 3}, stats)

	got, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Contains(t, string(got), "VALUES ('TUBO 1/2 X 3', 'B',")
	assert.Contains(t, string(got), "VALUES ('A3', 'B',")
}

func TestCheckWritten(t *testing.T) {
	assert.NoError(t, checkWritten(convert.Stats{Read: 3, Written: 2, Skipped: 1}, 2))
	assert.ErrorIs(t, checkWritten(convert.Stats{Written: 2}, 1), errLineMismatch)
}

func TestRunHeaderOnly(t *testing.T) {
	cfg := testConfig(t, "CB;CI\n")

	stats, err := run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, convert.Stats{}, stats)

	got, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRunErrors(t *testing.T) {
	t.Run("Missing input", func(t *testing.T) {
		cfg := testConfig(t, exportCSV)
		cfg.Input = filepath.Join(t.TempDir(), "missing.csv")
		_, err := run(context.Background(), cfg)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Unwritable output", func(t *testing.T) {
		cfg := testConfig(t, exportCSV)
		cfg.Output = filepath.Join(t.TempDir(), "no", "such", "dir.sql")
		_, err := run(context.Background(), cfg)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Empty input leaves empty output", func(t *testing.T) {
		cfg := testConfig(t, "")
		_, err := run(context.Background(), cfg)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "header"), err.Error())

		got, rerr := os.ReadFile(cfg.Output)
		require.NoError(t, rerr)
		assert.Empty(t, got)
	})

	t.Run("Invalid UTF-8", func(t *testing.T) {
		cfg := testConfig(t, "h\nA;B;V\xe1lvula;T;M;R;Br;1\n")
		_, err := run(context.Background(), cfg)
		assert.ErrorIs(t, err, encoding.ErrInvalidUTF8)
	})

	t.Run("Unknown encoding", func(t *testing.T) {
		cfg := testConfig(t, exportCSV)
		cfg.Encoding = "klingon"
		_, err := run(context.Background(), cfg)
		assert.Error(t, err)
	})
}
