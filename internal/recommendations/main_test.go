package recommendations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adityachavhan45/blogbackend/internal/logger"
)

func TestMain(m *testing.M) {
	// Degradation paths log; point the logger at a throwaway file
	if err := logger.Initialize("error", filepath.Join(os.TempDir(), "blogbackend-test.log")); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
