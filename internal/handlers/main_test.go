package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adityachavhan45/blogbackend/internal/logger"
)

func TestMain(m *testing.M) {
	// Response helpers log 4xx/5xx; point the logger at a throwaway file
	if err := logger.Initialize("error", filepath.Join(os.TempDir(), "blogbackend-test.log")); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
