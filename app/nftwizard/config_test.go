package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
)

const testConfig = `
activeNetwork: sepolia
privateKey: ""
networks:
  sepolia:
    chainId: 11155111
    rpcUrl: https://rpc.sepolia.org
  localhost:
    chainId: 31337
    rpcUrl: http://127.0.0.1:8545
submitter:
  pollInterval: 500ms
`

type configTestSuite struct {
	suite.Suite
	file string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(configTestSuite))
}

func (s *configTestSuite) SetupTest() {
	viper.Reset()
	s.file = filepath.Join(s.T().TempDir(), "config.yaml")
	s.Require().NoError(os.WriteFile(s.file, []byte(testConfig), 0o600))
}

func (s *configTestSuite) TearDownTest() {
	viper.Reset()
}

func (s *configTestSuite) flags(args ...string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", s.file, "")
	fs.Bool("debug", false, "")
	fs.String("network", "", "")
	s.Require().NoError(fs.Parse(args))
	return fs
}

func (s *configTestSuite) TestFileAndDefaults() {
	s.Require().NoError(initConfig(s.flags()))

	s.Equal("sepolia", viper.GetString("activeNetwork"))
	s.Equal(int64(11155111), viper.GetInt64("networks.sepolia.chainId"))
	s.Equal(500*time.Millisecond, viper.GetDuration("submitter.pollInterval"))
	s.Equal(5*time.Minute, viper.GetDuration("submitter.confirmTimeout"))
	s.Equal("0.001", viper.GetString("wizard.mintPrice"))
	s.Equal(250, viper.GetInt("wizard.defaultFeeBps"))
	s.False(viper.GetBool("debug"))
}

func (s *configTestSuite) TestEnvOverridesFile() {
	s.T().Setenv("NFTWIZARD_PRIVATEKEY", "0xfeed")
	s.T().Setenv("NFTWIZARD_ACTIVENETWORK", "localhost")

	s.Require().NoError(initConfig(s.flags()))

	s.Equal("0xfeed", viper.GetString("privateKey"))
	s.Equal("localhost", viper.GetString("activeNetwork"))
}

func (s *configTestSuite) TestFlagsOverrideEnv() {
	s.T().Setenv("NFTWIZARD_ACTIVENETWORK", "localhost")

	s.Require().NoError(initConfig(s.flags("--network", "sepolia", "--debug")))

	s.Equal("sepolia", viper.GetString("activeNetwork"))
	s.True(viper.GetBool("debug"))
}

func (s *configTestSuite) TestMissingFile() {
	fs := s.flags("--config", filepath.Join(s.T().TempDir(), "nope.yaml"))
	s.Error(initConfig(fs))
}
