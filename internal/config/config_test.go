package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"CONTACTS_FILE", "STORE_DRIVER", "DB_PATH", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE"} {
		unsetenv(t, key)
	}

	cfg := LoadConfig()
	assert.Equal(t, "contacts.json", cfg.ContactsFile)
	assert.Equal(t, DriverJSON, cfg.StoreDriver)
	assert.Equal(t, "./contacts.db", cfg.DBPath)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Quiet)
}

func TestLoadConfigFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONTACTS_FILE", "book.json")
	t.Setenv("STORE_DRIVER", DriverSQLite)
	t.Setenv("DB_PATH", "/tmp/book.db")

	cfg := LoadConfig()
	assert.Equal(t, "book.json", cfg.ContactsFile)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "/tmp/book.db", cfg.DBPath)
}

func TestGetEnvEmptyValueIsKept(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	assert.Equal(t, "", getEnv("DB_PASSWORD", "secret"))
}

func unsetenv(t *testing.T, key string) {
	t.Helper()
	// t.Setenv restores the previous value on cleanup.
	t.Setenv(key, "")
	os.Unsetenv(key)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
