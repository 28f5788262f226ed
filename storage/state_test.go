package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"csvtogithub/models"
)

func setupTestStore(t *testing.T) *StateStore {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("failed to open state store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("state file should exist after Open: %v", err)
	}
}

func TestRecordCreatedRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	issues := []models.CreatedIssue{
		{IssueID: "RECON-001", Title: "First", URL: "https://github.com/o/r/issues/1", CreatedAt: time.Now().UTC()},
		{IssueID: "RECON-002", Title: "Second", URL: "https://github.com/o/r/issues/2", CreatedAt: time.Now().UTC()},
	}
	for _, issue := range issues {
		if err := store.RecordCreated(issue); err != nil {
			t.Fatalf("RecordCreated(%s) failed: %v", issue.IssueID, err)
		}
	}

	ids, err := store.CreatedIDs()
	if err != nil {
		t.Fatalf("CreatedIDs failed: %v", err)
	}

	if len(ids) != 2 {
		t.Fatalf("got %d ids, want 2: %v", len(ids), ids)
	}
	if !ids["RECON-001"] || !ids["RECON-002"] {
		t.Errorf("ids = %v, want RECON-001 and RECON-002", ids)
	}
}

func TestRecordCreatedUpsert(t *testing.T) {
	store := setupTestStore(t)

	issue := models.CreatedIssue{
		IssueID:   "RECON-001",
		Title:     "First",
		URL:       "https://github.com/o/r/issues/1",
		CreatedAt: time.Now().UTC(),
	}
	if err := store.RecordCreated(issue); err != nil {
		t.Fatalf("RecordCreated failed: %v", err)
	}

	// 同一IDの再記録は上書きになる
	issue.URL = "https://github.com/o/r/issues/3"
	if err := store.RecordCreated(issue); err != nil {
		t.Fatalf("second RecordCreated failed: %v", err)
	}

	ids, err := store.CreatedIDs()
	if err != nil {
		t.Fatalf("CreatedIDs failed: %v", err)
	}
	if len(ids) != 1 {
		t.Errorf("got %d ids, want 1 after upsert: %v", len(ids), ids)
	}
}

func TestRunLifecycle(t *testing.T) {
	store := setupTestStore(t)

	runID, err := store.BeginRun()
	if err != nil {
		t.Fatalf("BeginRun failed: %v", err)
	}
	if runID == "" {
		t.Fatal("BeginRun returned an empty run id")
	}

	summary := models.ImportSummary{Skipped: 2, Created: 5, Failed: 1}
	if err := store.FinishRun(runID, summary); err != nil {
		t.Fatalf("FinishRun failed: %v", err)
	}

	otherID, err := store.BeginRun()
	if err != nil {
		t.Fatalf("second BeginRun failed: %v", err)
	}
	if otherID == runID {
		t.Error("run ids should be unique")
	}
}

func TestCreatedIDsEmpty(t *testing.T) {
	store := setupTestStore(t)

	ids, err := store.CreatedIDs()
	if err != nil {
		t.Fatalf("CreatedIDs failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("fresh store should have no ids, got %v", ids)
	}
}
