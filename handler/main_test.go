// handler/main_test.go
package handler

import (
	"go-login-api/logger"
	"io"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

// TestMain quiets the logger for the handler package while keeping every
// level enabled so hooks see debug entries too.
func TestMain(m *testing.M) {
	logger.Init()
	logger.Log.SetOutput(io.Discard)
	logger.Log.SetLevel(logrus.DebugLevel)

	exitCode := m.Run()
	os.Exit(exitCode)
}
