package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"groupsignup/internal/delivery/http/helpers"
)

type mockExporter struct {
	gotPath string
	err     error
}

func (m *mockExporter) SaveToFile(path string) error {
	m.gotPath = path
	return m.err
}

func TestExport_Success(t *testing.T) {
	exp := &mockExporter{}
	ctrl := NewExportController(testLogger(), exp, "out/registrations.txt")

	req := httptest.NewRequest(http.MethodPost, "/admin/export", nil)
	rr := httptest.NewRecorder()

	ctrl.Export(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if exp.gotPath != "out/registrations.txt" {
		t.Errorf("expected configured path, got %q", exp.gotPath)
	}
}

func TestExport_WriteFailure(t *testing.T) {
	exp := &mockExporter{err: errors.New("disk full")}
	ctrl := NewExportController(testLogger(), exp, "out/registrations.txt")

	req := httptest.NewRequest(http.MethodPost, "/admin/export", nil)
	rr := httptest.NewRecorder()

	ctrl.Export(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	resp := decodeEnvelope(t, rr)
	if resp.Error == nil || resp.Error.Code != helpers.ErrCodeExportFailed {
		t.Errorf("expected %s error, got %+v", helpers.ErrCodeExportFailed, resp.Error)
	}
}
