// Package cli implements the pdfpress command line tool using Cobra.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SeakMengs/PdfPress/internal/config"
	"github.com/SeakMengs/PdfPress/internal/env"
	filestorage "github.com/SeakMengs/PdfPress/internal/file_storage"
	"github.com/SeakMengs/PdfPress/internal/util"
	"github.com/SeakMengs/PdfPress/pkg/pdfpress"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runner holds what every command needs once the environment is loaded.
type runner struct {
	cfg      config.Config
	pdfCfg   pdfpress.Config
	logger   *zap.SugaredLogger
	composer *pdfpress.Composer

	envFile string
	upload  bool
}

// NewRootCmd builds the command tree. A nil logger is built from ENV.
func NewRootCmd(logger *zap.SugaredLogger) *cobra.Command {
	r := &runner{logger: logger}

	rootCmd := &cobra.Command{
		Use:   "pdfpress",
		Short: "pdfpress restructures the pages of PDF documents",
		Long: `pdfpress composes, merges, deletes and splits the pages of PDF documents.

Usage:
  pdfpress 2in1 -i in.pdf -o out.pdf
  pdfpress merge -i a.pdf -i b.pdf -o out.pdf
  pdfpress delpages -i in.pdf -p "2,4-6" -o out.pdf
  pdfpress split -i in.pdf -o pages/
  pdfpress split_by_pages -i in.pdf -n 10 -o parts/`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&r.envFile, "env-file", ".env", "file to load environment variables from")
	rootCmd.PersistentFlags().BoolVar(&r.upload, "upload", false, "upload every written file to the configured S3 bucket")

	rootCmd.AddCommand(
		r.new2In1Cmd(),
		r.newMergeCmd(),
		r.newDeletePagesCmd(),
		r.newSplitCmd(),
		r.newSplitByPagesCmd(),
		r.newInfoCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}

func (r *runner) setup() error {
	env.LoadEnv(r.envFile)

	r.cfg = config.GetConfig()
	if r.logger == nil {
		r.logger = util.NewLogger(r.cfg.ENV)
	}

	r.pdfCfg = util.NewPdfConfig(r.cfg)
	if err := os.MkdirAll(r.pdfCfg.TmpDir, 0755); err != nil {
		return fmt.Errorf("failed to create tmp directory: %w", err)
	}

	r.composer = pdfpress.NewComposer(r.pdfCfg, r.logger)
	return nil
}

// finish bundles outputs into zipFile when it is set and uploads the result if asked to.
func (r *runner) finish(ctx context.Context, outputs []string, zipFile string) error {
	files := outputs

	if zipFile != "" {
		if err := util.ZipFiles(outputs, zipFile); err != nil {
			return fmt.Errorf("failed to zip outputs: %w", err)
		}
		r.logger.Infof("Saved: %s", zipFile)
		files = []string{zipFile}
	}

	if !r.upload {
		return nil
	}

	storage, err := filestorage.NewStorage(&r.cfg.Minio)
	if err != nil {
		return err
	}

	keys, err := storage.UploadAll(ctx, files, util.GetUploadDirectoryPath(uuid.NewString()))
	if err != nil {
		return err
	}

	for _, k := range keys {
		r.logger.Infof("Uploaded: s3://%s/%s", storage.Bucket, k)
	}
	return nil
}

// zipPath returns where --zip bundles the outputs of inFile split into outDir.
func zipPath(inFile, outDir string) string {
	if outDir == "" {
		outDir = filepath.Dir(inFile)
	}
	return filepath.Join(outDir, util.FileStem(inFile)+".zip")
}
