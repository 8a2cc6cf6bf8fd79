package pdfpress

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

const (
	DefaultOutputFile  = "out.pdf"
	DefaultPagesPerDoc = 10
)

type Config struct {
	// Directory for intermediate files, e.g. a serialized base document before merging
	TmpDir string
	// "strict" or "relaxed", passed through to pdfcpu validation
	ValidationMode string
}

func NewDefaultConfig() *Config {
	cfg := Config{
		TmpDir:         fmt.Sprintf("%s/pdfpress/tmp", os.TempDir()),
		ValidationMode: "relaxed",
	}

	// 0755 mean owner can read, write and execute
	if err := os.MkdirAll(cfg.TmpDir, 0755); err != nil {
		fmt.Printf("Error creating tmp directory: %v\n", err)
	}

	return &cfg
}

func init() {
	// pdfcpu would otherwise create and read a config.yml in the user config dir
	api.DisableConfigDir()
}

// pdfcpuConfig translates Config into the engine configuration used for every call.
func (c Config) pdfcpuConfig() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	if strings.EqualFold(c.ValidationMode, "strict") {
		conf.ValidationMode = model.ValidationStrict
	} else {
		conf.ValidationMode = model.ValidationRelaxed
	}
	return conf
}
