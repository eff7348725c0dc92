package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/dom/power-league-website/internal/api"
	"github.com/dom/power-league-website/internal/config"
	"github.com/dom/power-league-website/internal/repository"
	repoPostgres "github.com/dom/power-league-website/internal/repository/postgres"
	"github.com/dom/power-league-website/internal/repository/sanity"
	"github.com/dom/power-league-website/internal/service"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestSecret signs revalidation tokens in tests.
const TestSecret = "test-revalidate-secret-for-testing-only"

// TestNow is the fake clock's starting point.
var TestNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a connection
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres test in short mode")
	}

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_power_league"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	// The server never migrates; tests create the mirror schema themselves.
	if err := db.AutoMigrate(repoPostgres.Models()...); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// Cleanup terminates the container
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		ctx := context.Background()
		tdb.Container.Terminate(ctx)
	}
}

// Truncate clears all tables for test isolation
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	tables := []string{
		"league_seasons",
		"venues",
		"announcements",
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			t.Logf("warning: failed to truncate %s: %v", table, err)
		}
	}
}

var documentTypePattern = regexp.MustCompile(`_type == "(\w+)"`)

// CMSStub imitates the Sanity query endpoint. Each document type answers
// with the result set through SetResult, or an empty array.
type CMSStub struct {
	Server *httptest.Server

	mu      sync.Mutex
	results map[string]json.RawMessage
	status  map[string]int
	raw     map[string]string
	hits    map[string]int
}

func NewCMSStub(t *testing.T) *CMSStub {
	t.Helper()

	stub := &CMSStub{
		results: make(map[string]json.RawMessage),
		status:  make(map[string]int),
		raw:     make(map[string]string),
		hits:    make(map[string]int),
	}
	stub.Server = httptest.NewServer(http.HandlerFunc(stub.serve))

	t.Cleanup(func() {
		stub.Server.Close()
	})

	return stub
}

func (s *CMSStub) serve(w http.ResponseWriter, r *http.Request) {
	docType := ""
	if m := documentTypePattern.FindStringSubmatch(r.URL.Query().Get("query")); m != nil {
		docType = m[1]
	}

	s.mu.Lock()
	s.hits[docType]++
	status, failing := s.status[docType]
	raw, hasRaw := s.raw[docType]
	result, ok := s.results[docType]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case failing:
		w.WriteHeader(status)
		fmt.Fprintf(w, `{"error":{"type":"stubError","description":"stub failure for %s"}}`, docType)
	case hasRaw:
		fmt.Fprint(w, raw)
	default:
		if !ok {
			result = json.RawMessage("[]")
		}
		fmt.Fprintf(w, `{"ms":1,"query":"","result":%s}`, result)
	}
}

// SetResult replaces the documents returned for docType.
func (s *CMSStub) SetResult(t *testing.T, docType string, docs any) {
	t.Helper()

	encoded, err := json.Marshal(docs)
	if err != nil {
		t.Fatalf("failed to encode stub result: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[docType] = encoded
	delete(s.raw, docType)
	delete(s.status, docType)
}

// SetRawBody makes docType answer with body verbatim.
func (s *CMSStub) SetRawBody(docType, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw[docType] = body
	delete(s.status, docType)
}

// Fail makes docType answer with status until the next SetResult.
func (s *CMSStub) Fail(docType string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[docType] = status
}

// Hits returns how many queries named docType.
func (s *CMSStub) Hits(docType string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[docType]
}

func (s *CMSStub) Client() *sanity.Client {
	return sanity.NewClient(sanity.Config{
		ProjectID: "test",
		BaseURL:   s.Server.URL,
		Timeout:   5 * time.Second,
	})
}

// TestConfig returns a configuration suitable for testing
func TestConfig() *config.Config {
	return &config.Config{
		Port:                 "0", // Random port
		Environment:          "test",
		LogLevel:             "disabled",
		PublicDir:            "testdata/public",
		CORSAllowedOrigins:   []string{"*"},
		ContentBackend:       config.BackendSanity,
		ContentTimeout:       5 * time.Second,
		SanityProjectID:      "test",
		SanityDataset:        "production",
		SanityAPIVersion:     "2024-01-01",
		LeagueCacheTTL:       time.Hour,
		AnnouncementCacheTTL: 5 * time.Minute,
		RevalidateSecret:     TestSecret,
	}
}

// TestServer holds all components for integration testing
type TestServer struct {
	Server   *httptest.Server
	CMS      *CMSStub
	DB       *TestDB
	Repos    *repository.Repositories
	Services *service.Services
	Clock    *clockwork.FakeClock
	Config   *config.Config
}

// NewTestServer creates a test server reading from a CMS stub
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	return NewTestServerWithConfig(t, TestConfig())
}

// NewTestServerWithConfig is NewTestServer with a caller-supplied configuration
func NewTestServerWithConfig(t *testing.T, cfg *config.Config) *TestServer {
	t.Helper()

	cms := NewCMSStub(t)
	ts := newTestServer(t, sanity.NewRepositories(cms.Client(), zerolog.Nop()), cfg)
	ts.CMS = cms
	return ts
}

// NewPostgresTestServer creates a test server reading from the database mirror
func NewPostgresTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDB := NewTestDB(t)
	cfg := TestConfig()
	cfg.ContentBackend = config.BackendPostgres
	cfg.DatabaseURL = testDB.DSN

	ts := newTestServer(t, repoPostgres.NewRepositories(testDB.DB, zerolog.Nop()), cfg)
	ts.DB = testDB
	return ts
}

func newTestServer(t *testing.T, repos *repository.Repositories, cfg *config.Config) *TestServer {
	t.Helper()

	clock := clockwork.NewFakeClockAt(TestNow)
	services := service.NewServices(repos, cfg, clock, zerolog.Nop())

	router, err := api.NewRouter(services, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to build router: %v", err)
	}

	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:   server,
		Repos:    repos,
		Services: services,
		Clock:    clock,
		Config:   cfg,
	}

	t.Cleanup(func() {
		server.Close()
	})

	return ts
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.Server.URL
}

// URL returns the full URL for a page path
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

// APIURL returns the full API URL for a given path
func (ts *TestServer) APIURL(path string) string {
	return fmt.Sprintf("%s/api%s", ts.Server.URL, path)
}

// WebhookToken signs a revalidation token valid at the fake clock's time.
func (ts *TestServer) WebhookToken(t *testing.T) string {
	t.Helper()

	token, err := ts.Services.WebhookAuth.IssueToken("sanity-webhook", time.Hour)
	if err != nil {
		t.Fatalf("failed to issue webhook token: %v", err)
	}
	return token
}
