package combat

import (
	"os"
	"testing"

	"github.com/valentintorulya-hash/LoM/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
