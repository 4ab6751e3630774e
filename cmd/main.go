// cmd/main.go
package main

import (
	"os"

	"github.com/joho/godotenv"
)

// @title           Go-Login API
// @version         1.0
// @description     A form login endpoint that answers with an HTML outcome page.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
func main() {
	// A missing .env is fine; the environment and config.yml still apply.
	_ = godotenv.Load()

	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
