package handler

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportCSV_Filtered(t *testing.T) {
	f := newHandlerFixture(false)
	f.loadSample()

	c, rec := f.newContext(http.MethodGet, "/api/v1/export/csv?categories=Transport", nil)
	require.NoError(t, f.export.ExportCSV(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="filtered_transactions.csv"`, rec.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Category,Amount,Note", lines[0])
	assert.Equal(t, "2025-01-05,Transport,60,Subway pass", lines[1])
	assert.Equal(t, "2025-01-18,Transport,50,Uber", lines[2])
}

func TestExportCSV_NoDataset(t *testing.T) {
	f := newHandlerFixture(false)

	c, rec := f.newContext(http.MethodGet, "/api/v1/export/csv", nil)
	require.NoError(t, f.export.ExportCSV(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ErrorTypeNoDataset, decodeProblem(t, rec.Body.Bytes()).Type)
}

func TestExportCSV_InvalidParameters(t *testing.T) {
	f := newHandlerFixture(false)
	f.loadSample()

	c, rec := f.newContext(http.MethodGet, "/api/v1/export/csv?start=01/05/2025x", nil)
	require.NoError(t, f.export.ExportCSV(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
}

func TestExportXLSX(t *testing.T) {
	f := newHandlerFixture(false)
	f.loadSample()

	c, rec := f.newContext(http.MethodGet, "/api/v1/export/xlsx?start=2025-01-10", nil)
	require.NoError(t, f.export.ExportXLSX(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, mimeXLSX, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")

	book, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"Date", "Category", "Amount", "Note"}, rows[0])
	assert.Equal(t, "2025-01-10", rows[1][0])
}
