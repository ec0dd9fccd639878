package ingest_test

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/yourorg/policy-transfer/internal/db"
	"github.com/yourorg/policy-transfer/internal/errs"
	"github.com/yourorg/policy-transfer/internal/ingest"
	"github.com/yourorg/policy-transfer/internal/models"
	"github.com/yourorg/policy-transfer/internal/storage"
)

// memResults captures what the service publishes to the results store.
type memResults struct {
	objects map[string][]byte
}

func newMemResults() *memResults {
	return &memResults{objects: map[string][]byte{}}
}

func (m *memResults) Get(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	return nil, 0, storage.ErrNotFound
}

func (m *memResults) Put(ctx context.Context, key string, body io.Reader) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.objects[key] = b
	return nil
}

func TestIngestRejectsInvalidJSON(t *testing.T) {
	// Parse failures are detected before any sink access, so no DB is needed.
	svc := ingest.New(nil, nil, "", zap.NewNop())

	for _, payload := range []string{"", "{", `{"truncated":`, "not json at all", `{"a":1}garbage`} {
		_, err := svc.Ingest(context.Background(), []byte(payload), "bad.json")
		if err == nil {
			t.Fatalf("payload %q: expected error", payload)
		}
		if kind := errs.KindOf(err); kind != errs.ParseError {
			t.Fatalf("payload %q: kind=%q; want %q", payload, kind, errs.ParseError)
		}
	}
}

func testDB(t *testing.T) *db.Database {
	t.Helper()
	cfg := db.FromEnv()
	if dsn := os.Getenv("DB_TEST_DSN"); dsn != "" {
		cfg.DSN = dsn
	}
	database, err := db.NewDatabase(cfg)
	if err != nil {
		t.Skipf("skipping integration test; cannot connect to DB: %v", err)
	}
	return database
}

func cleanTables(t *testing.T, database *db.Database) {
	t.Helper()
	for _, table := range []string{"coverages", "vehicles", "customers", "policies", "documents"} {
		if err := database.DB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("clean %s: %v", table, err)
		}
	}
}

func TestIngestPolicyBatch(t *testing.T) {
	database := testDB(t)
	defer database.Close()
	cleanTables(t, database)

	results := newMemResults()
	svc := ingest.New(database.DB, results, "insurance_data.json", zap.NewNop())

	payload := []byte(`{
		"branches": [{
			"branch_id": "B1",
			"policies": [{
				"policy_id": "P-100",
				"policy_type": "auto",
				"base_premium": 5000,
				"risk_factor": "medium",
				"customer_info": {"name": "Ada", "age": 34, "address": "1 Main St"},
				"vehicle_info": {"make": "Toyota", "model": "Corolla", "year": 2019, "vehicle_damage": 1000},
				"coverage_info": {"liability": 300, "collision": 200, "comprehensive": 100, "discount": 10}
			}]
		}]
	}`)

	res, err := svc.Ingest(context.Background(), payload, "batch.json")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if res.Policies != 1 {
		t.Fatalf("policies=%d; want 1", res.Policies)
	}

	var count int64
	for _, m := range []any{&models.Policy{}, &models.Customer{}, &models.Vehicle{}, &models.Coverage{}, &models.Document{}} {
		if err := database.DB.Model(m).Count(&count).Error; err != nil {
			t.Fatalf("count %T: %v", m, err)
		}
		if count != 1 {
			t.Fatalf("%T rows=%d; want 1", m, count)
		}
	}

	// The stored document must be structurally equivalent to the upload.
	var doc models.Document
	if err := database.DB.First(&doc).Error; err != nil {
		t.Fatalf("load document: %v", err)
	}
	var want, got any
	if err := json.Unmarshal(payload, &want); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(doc.Payload, &got); err != nil {
		t.Fatalf("stored payload not JSON: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatal("stored document differs from upload")
	}

	// Processed results were published with the computed premium.
	raw, ok := results.objects["insurance_data.json"]
	if !ok {
		t.Fatal("processed results not published")
	}
	var processed []models.ProcessedPolicy
	if err := json.Unmarshal(raw, &processed); err != nil {
		t.Fatalf("results not JSON: %v", err)
	}
	if len(processed) != 1 {
		t.Fatalf("processed=%d; want 1", len(processed))
	}
	// 5000 + 1000*1.5 - 5000*0.10
	if processed[0].CalculatedPremium != 6000 {
		t.Fatalf("calculated=%v; want 6000", processed[0].CalculatedPremium)
	}
	if processed[0].InsuranceGranted != "Granted" {
		t.Fatalf("granted=%q", processed[0].InsuranceGranted)
	}
}

func TestIngestArbitraryJSON(t *testing.T) {
	database := testDB(t)
	defer database.Close()
	cleanTables(t, database)

	results := newMemResults()
	svc := ingest.New(database.DB, results, "insurance_data.json", zap.NewNop())

	res, err := svc.Ingest(context.Background(), []byte(`{"hello":[1,2,3]}`), "")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if res.Policies != 0 {
		t.Fatalf("policies=%d; want 0", res.Policies)
	}

	var docs, policies int64
	database.DB.Model(&models.Document{}).Count(&docs)
	database.DB.Model(&models.Policy{}).Count(&policies)
	if docs != 1 || policies != 0 {
		t.Fatalf("docs=%d policies=%d", docs, policies)
	}
}
