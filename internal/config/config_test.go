package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

const testConfig = `
logger:
  log_level: "INFO"
  app_name: "jobscout-test"
  output_file: "logs/test.log"
db:
  driver: "sqlite"
  connection_string: "test.db"
jobs:
  catalog_size: 50
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(file, []byte(content), 0644))
	return file
}

func Test_LoadConfig_AppliesDefaults(t *testing.T) {

	assert := assert.New(t)
	viper.Reset()

	config, err := loadConfig(writeConfigFile(t, testConfig))
	assert.NoError(err)

	assert.Equal(8080, config.API.Port)
	assert.Equal(9090, config.API.MetricsPort)
	assert.Equal(50, config.Jobs.CatalogSize)
	assert.Equal(10, config.Jobs.PageSize)
	assert.Equal(90, config.Jobs.RecentExpirationDays)
	assert.Equal("sqlite", config.DB.Driver)
	assert.Equal("test.db", config.DB.ConnectionString)
}

func Test_LoadConfig_EnvironmentOverridesFile(t *testing.T) {

	assert := assert.New(t)
	viper.Reset()
	t.Setenv("PORT", "3000")
	t.Setenv("DB_DRIVER", "redis")
	t.Setenv("DB_CONNECTION_STRING", "localhost:6379")

	config, err := loadConfig(writeConfigFile(t, testConfig))
	assert.NoError(err)

	assert.Equal(3000, config.API.Port)
	assert.Equal("redis", config.DB.Driver)
	assert.Equal("localhost:6379", config.DB.ConnectionString)
}

func Test_LoadConfig_RejectsUnknownDriver(t *testing.T) {

	viper.Reset()

	_, err := loadConfig(writeConfigFile(t, `
logger:
  log_level: "INFO"
  output_file: "logs/test.log"
db:
  driver: "cassandra"
  connection_string: "somewhere"
`))
	assert.ErrorContains(t, err, "unknown db driver")
}

func Test_LoadConfig_RejectsMissingLoggerFields(t *testing.T) {

	viper.Reset()

	_, err := loadConfig(writeConfigFile(t, `
logger:
  app_name: "jobscout-test"
db:
  driver: "sqlite"
  connection_string: "test.db"
`))
	assert.ErrorContains(t, err, "log_level")
	assert.ErrorContains(t, err, "output_file")
}
