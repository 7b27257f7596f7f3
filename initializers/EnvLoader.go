package initializers

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// LoadEnvVariables reads the .env file into the process environment. A
// missing file is fine in deployed environments where the variables are set
// directly.
func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		if _, statErr := os.Stat(".env"); statErr == nil {
			logrus.WithError(err).Fatal("failed to load .env file")
		}
	}
}
