package config

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/tauraamui/screengrab/pkg/configdef"
)

type LoadConfigTestSuite struct {
	suite.Suite
	configResolver configdef.Resolver
	fs             afero.Fs
	path           string
	configFile     afero.File
}

func (suite *LoadConfigTestSuite) SetupSuite() {
	suite.fs = afero.NewMemMapFs()
	suite.configResolver = DefaultResolver()

	// use in memory FS in implementation for tests
	fs = suite.fs
}

func (suite *LoadConfigTestSuite) TearDownSuite() {
	fs = afero.NewOsFs()
}

func (suite *LoadConfigTestSuite) SetupTest() {
	path, err := resolveConfigPath()
	require.NoError(suite.T(), err)
	require.NoError(suite.T(), suite.fs.MkdirAll(path, os.ModeDir|os.ModePerm))
	suite.path = path

	configFile, err := suite.fs.Create(path)
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), configFile)

	suite.configFile = configFile

	// can be overridden so reset it back before each test to
	// ensure that it's an opt in thing per individual test
	suite.overwriteTestConfig(
		`{
			"output_dir": "captures",
			"output": "desk.png",
			"delay": 5,
			"display": 1,
			"timestamp_format": "20060102_150405"
		}`,
	)
}

func (suite *LoadConfigTestSuite) overwriteTestConfig(config string) {
	require.NoError(suite.T(), suite.configFile.Truncate(0))
	_, err := suite.configFile.Seek(0, 0)
	require.NoError(suite.T(), err)
	_, err = suite.configFile.WriteString(config)
	assert.NoError(suite.T(), err)
}

func (suite *LoadConfigTestSuite) TearDownTest() {
	require.NoError(suite.T(), suite.configFile.Close())
	suite.fs.Remove(suite.path)
}

func (suite *LoadConfigTestSuite) TestLoadConfig() {
	config, err := suite.configResolver.Resolve()
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), config)

	assert.Equal(suite.T(), "captures", config.OutputDir)
	assert.Equal(suite.T(), "desk.png", config.Output)
	assert.Equal(suite.T(), 5, config.Delay)
	assert.Equal(suite.T(), 1, config.Display)
}

func (suite *LoadConfigTestSuite) TestLoadConfigFillsEmptyFieldsWithDefaults() {
	suite.overwriteTestConfig(`{"delay": 1}`)

	config, err := suite.configResolver.Resolve()
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "output", config.OutputDir)
	assert.Equal(suite.T(), "screenshot.png", config.Output)
	assert.Equal(suite.T(), "20060102_150405", config.TimestampFormat)
	assert.Equal(suite.T(), "2006/01/02 15:04:05", config.DateTimeFormat)
	assert.Equal(suite.T(), 1, config.Delay)
}

func (suite *LoadConfigTestSuite) TestLoadConfigFailsValidationOnNegativeDelay() {
	suite.overwriteTestConfig(`{"delay": -3}`)

	config, err := suite.configResolver.Resolve()
	require.Error(suite.T(), err)
	require.Empty(suite.T(), config)

	assert.EqualError(suite.T(), err, `Validation error in field "Delay" of type "int" using validator "gte=0"`)
}

func (suite *LoadConfigTestSuite) TestLoadConfigFailsValidationOnNonPNGOutput() {
	suite.overwriteTestConfig(`{"output": "desk.bmp"}`)

	config, err := suite.configResolver.Resolve()
	require.Error(suite.T(), err)
	require.Empty(suite.T(), config)

	assert.EqualError(suite.T(), err, "validation failed: output file name must carry a .png extension")
}

func (suite *LoadConfigTestSuite) TestLoadConfigFailsOnMalformedJSON() {
	suite.overwriteTestConfig(`{"output": `)

	config, err := suite.configResolver.Resolve()
	require.Error(suite.T(), err)
	require.Empty(suite.T(), config)

	assert.Contains(suite.T(), err.Error(), "parsing configuration error")
}

func (suite *LoadConfigTestSuite) TestLoadMissingConfigFallsBackToDefaults() {
	require.NoError(suite.T(), suite.configFile.Close())
	require.NoError(suite.T(), suite.fs.Remove(suite.path))

	config, err := suite.configResolver.Resolve()
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "output", config.OutputDir)
	assert.Equal(suite.T(), "screenshot.png", config.Output)
	assert.Equal(suite.T(), 3, config.Delay)
	assert.Equal(suite.T(), 0, config.Display)

	// recreate so that the suite teardown has something to close
	configFile, err := suite.fs.Create(suite.path)
	require.NoError(suite.T(), err)
	suite.configFile = configFile
}

func TestLoadConfigTestSuite(t *testing.T) {
	suite.Run(t, &LoadConfigTestSuite{})
}
