package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
)

func TestReadDump(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "dump.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{"cashFlow":"[]","goals":[]}`), 0o600))
	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{}`), 0o600))

	tests := []struct {
		name     string
		path     string
		stdin    string
		wantKeys int
		wantErr  bool
	}{
		{name: "Arquivo válido", path: valid, wantKeys: 2},
		{name: "Entrada padrão", path: "-", stdin: `{"inventoryItems":[]}`, wantKeys: 1},
		{name: "Arquivo inexistente", path: filepath.Join(dir, "nada.json"), wantErr: true},
		{name: "Dump vazio", path: empty, wantErr: true},
		{name: "Não é objeto", path: "-", stdin: `[1,2]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dump, err := readDump(strings.NewReader(tt.stdin), tt.path)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, dump, tt.wantKeys)
		})
	}
}

func TestRootCmd(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.ElementsMatch(t, []string{"up", "import-legacy", "pull-hosted"}, names)

	t.Run("Restaurante obrigatório", func(t *testing.T) {
		root := newRootCmd()
		root.SetArgs([]string{"pull-hosted"})
		root.SetOut(&bytes.Buffer{})

		err := root.Execute()

		assert.ErrorContains(t, err, "restaurant")
	})
}

func TestPrintReport(t *testing.T) {
	report := domain.NewImportReport("r1", domain.ImportSourceLocalStorage)
	report.Imported["cash_flow"] = 3
	report.FinishedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var out bytes.Buffer
	require.NoError(t, printReport(&out, report))

	assert.Contains(t, out.String(), `"cash_flow": 3`)
	assert.Contains(t, out.String(), `"restaurant_id": "r1"`)
}
