package e2e

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// Banner prints a colorized header for a scenario step in the test logs
func (s *BaseSuite) Banner(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// WriteFixture drops a fixture file into dir and returns its path
func (s *BaseSuite) WriteFixture(dir, name, content string) string {
	path := filepath.Join(dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}
