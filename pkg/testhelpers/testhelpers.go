// Package testhelpers contains helpers shared by termninja's tests.
package testhelpers

import (
	"reflect"
	"testing"

	"github.com/termninja/termninja/internal/migrations"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestSetup bundles a migrated in-memory database with its cleanup function.
type TestSetup struct {
	DB      *gorm.DB
	Cleanup func()
}

// CreateTestDB opens a fresh, migrated in-memory SQLite database.
func CreateTestDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// every new connection to :memory: would see an empty database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := migrations.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// SetupTestDB creates a test database and fails the test if that is not possible.
func SetupTestDB(t *testing.T) *TestSetup {
	t.Helper()

	db, err := CreateTestDB()
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	return &TestSetup{
		DB: db,
		Cleanup: func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		},
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected an error, got nil")
	}
}

// AssertEqual fails the test if expected and actual are not deeply equal.
func AssertEqual(t *testing.T, expected, actual any) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}

// AssertNotNil fails the test if v is nil, including typed nil pointers.
func AssertNotNil(t *testing.T, v any) {
	t.Helper()
	if v == nil {
		t.Fatal("Expected non-nil value")
		return
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		if rv.IsNil() {
			t.Fatal("Expected non-nil value")
		}
	}
}

// AssertTrue fails the test with msg if cond is false.
func AssertTrue(t *testing.T, cond bool, msg string) {
	t.Helper()
	if !cond {
		t.Error(msg)
	}
}

// CommandAnnotationTest describes one expected cobra command annotation.
type CommandAnnotationTest struct {
	Key      string
	Expected string
}

// TestCommandAnnotations checks that annotations contains every expected key/value pair.
func TestCommandAnnotations(t *testing.T, annotations map[string]string, tests []CommandAnnotationTest) {
	t.Helper()
	for _, tc := range tests {
		if got := annotations[tc.Key]; got != tc.Expected {
			t.Errorf("Expected annotation %s to be %q, got %q", tc.Key, tc.Expected, got)
		}
	}
}
