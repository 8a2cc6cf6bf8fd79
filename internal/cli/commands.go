package cli

import (
	"errors"
	"fmt"

	"github.com/SeakMengs/PdfPress/pkg/pdfpress"
	"github.com/spf13/cobra"
)

func (r *runner) new2In1Cmd() *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "2in1",
		Short: "Put every two pages side by side on one landscape sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.composer.Compose2In1(pdfpress.FromPath(input), output); err != nil {
				return err
			}
			return r.finish(cmd.Context(), []string{output}, "")
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input pdf")
	cmd.Flags().StringVarP(&output, "output", "o", pdfpress.DefaultOutputFile, "output pdf")
	cmd.MarkFlagRequired("input")

	return cmd
}

func (r *runner) newMergeCmd() *cobra.Command {
	var inputs []string
	var output string

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Concatenate documents in the given order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.composer.Merge(nil, inputs, output); err != nil {
				return err
			}
			return r.finish(cmd.Context(), []string{output}, "")
		},
	}

	cmd.Flags().StringSliceVarP(&inputs, "input", "i", nil, "input pdfs, repeat the flag or separate with commas")
	cmd.Flags().StringVarP(&output, "output", "o", pdfpress.DefaultOutputFile, "output pdf")
	cmd.MarkFlagRequired("input")

	return cmd
}

func (r *runner) newDeletePagesCmd() *cobra.Command {
	var input, output, delPages string

	cmd := &cobra.Command{
		Use:   "delpages",
		Short: "Remove pages, e.g. -p \"2,4-6\"",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pages, err := pdfpress.ParsePageList(delPages)
			if err != nil {
				return err
			}

			err = r.composer.DeletePages(pdfpress.FromPath(input), pages, output)
			if errors.Is(err, pdfpress.ErrInvalidPageList) {
				r.logger.Warnf("Nothing to delete, %s was not written: %v", output, err)
				return nil
			}
			if err != nil {
				return err
			}

			return r.finish(cmd.Context(), []string{output}, "")
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input pdf")
	cmd.Flags().StringVarP(&delPages, "del_pages", "p", "", "pages to delete, e.g. \"1,3,5-7\"")
	cmd.Flags().StringVarP(&output, "output", "o", pdfpress.DefaultOutputFile, "output pdf")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("del_pages")

	return cmd
}

func (r *runner) newSplitCmd() *cobra.Command {
	var input, outDir string
	var zipOutputs bool

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Write every page to its own document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputs, err := r.composer.Split(input, outDir)
			if err != nil {
				return err
			}

			zipFile := ""
			if zipOutputs {
				zipFile = zipPath(input, outDir)
			}
			return r.finish(cmd.Context(), outputs, zipFile)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input pdf")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory, defaults to the directory of the input")
	cmd.Flags().BoolVar(&zipOutputs, "zip", false, "also bundle the written documents into {input}.zip")
	cmd.MarkFlagRequired("input")

	return cmd
}

func (r *runner) newSplitByPagesCmd() *cobra.Command {
	var input, outDir string
	var npages int
	var zipOutputs bool

	cmd := &cobra.Command{
		Use:   "split_by_pages",
		Short: "Split into documents of at most n pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputs, err := r.composer.SplitByPages(input, npages, outDir)
			if err != nil {
				return err
			}

			zipFile := ""
			if zipOutputs {
				zipFile = zipPath(input, outDir)
			}
			return r.finish(cmd.Context(), outputs, zipFile)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input pdf")
	cmd.Flags().IntVarP(&npages, "npages", "n", pdfpress.DefaultPagesPerDoc, "pages per output document")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory, defaults to the directory of the input")
	cmd.Flags().BoolVar(&zipOutputs, "zip", false, "also bundle the written documents into {input}.zip")
	cmd.MarkFlagRequired("input")

	return cmd
}

func (r *runner) newInfoCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the page count and page sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := pdfpress.Info(pdfpress.FromPath(input), r.pdfCfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Pages: %d\n", info.PageCount)
			for _, p := range info.Pages {
				fmt.Fprintf(out, "%4d: %.2f x %.2f pt\n", p.Number, p.Width, p.Height)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input pdf")
	cmd.MarkFlagRequired("input")

	return cmd
}
