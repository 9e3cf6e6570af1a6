package main

import (
	"os"

	"bindgen/pkg/generator"
	"bindgen/pkg/gluegen"
	"bindgen/pkg/meta"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/thorn-jmh/errorst"
	"go.uber.org/zap"
)

var (
	outputDir   string
	licenseFile string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "bindgen [-o <outputDir>] [-l <license file>] <model.json...>",
	Short: "Generate binding glue code from an extracted API model",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}

		for _, modelPath := range args {
			if err := gen(modelPath); err != nil {
				pterm.Error.Printfln("%s: %v", modelPath, err)
			}
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "./out", "output directory")
	rootCmd.PersistentFlags().StringVarP(&licenseFile, "license", "l", "", "license comment file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func gen(modelPath string) error {
	api, err := meta.FromJSONFile(modelPath)
	if err != nil {
		return err
	}

	g := generator.NewGenerator(api, newLogger())
	g.SetOutputDirectory(outputDir)

	if licenseFile != "" {
		data, err := os.ReadFile(licenseFile)
		if err != nil {
			return errorst.NewError("failed to read license file %s: %w", licenseFile, err)
		}
		g.SetLicenseComment(string(data))
	}

	if err := g.Generate(gluegen.New(g)); err != nil {
		return err
	}

	pterm.Success.Printfln("%s: %d classes generated, %d written",
		modelPath, g.NumGenerated(), g.NumGeneratedAndWritten())
	return nil
}

func newLogger() *zap.SugaredLogger {
	build := zap.NewProduction
	if verbose {
		build = zap.NewDevelopment
	}
	logger, err := build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
