package packagetest

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/buildbeaver/yamato/cmd/yamato-gen/commands"
	"github.com/buildbeaver/yamato/generator/jobs/packages"
	"github.com/buildbeaver/yamato/generator/metafile"
)

const (
	metafileKey = "package-test.metafile"
	packageKey  = "package-test.package"
	platformKey = "package-test.platform"
	editorKey   = "package-test.editor"
)

const defaultMetafilePattern = ".yamato/config/*.metafile"

func init() {
	flags := packageTestCmd.Flags()
	flags.String("metafile", defaultMetafilePattern, "Glob matching the metafiles describing packages, platforms and editors")
	flags.String("package", "", "Only generate jobs for the package with this id")
	flags.String("platform", "", "Only generate jobs for the platform with this name")
	flags.String("editor", "", "Only generate jobs for this editor version")

	commands.MustBindFlag(metafileKey, flags.Lookup("metafile"))
	commands.MustBindFlag(packageKey, flags.Lookup("package"))
	commands.MustBindFlag(platformKey, flags.Lookup("platform"))
	commands.MustBindFlag(editorKey, flags.Lookup("editor"))

	commands.RootCmd.AddCommand(packageTestCmd)
}

var packageTestCmd = &cobra.Command{
	Use:           "package-test",
	Short:         "Preview the package test jobs generated from metafiles",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logFactory, err := commands.NewLogFactory()
		if err != nil {
			return errors.Wrap(err, "error configuring logging")
		}

		meta, err := metafile.NewLoader(logFactory).LoadGlob(viper.GetString(metafileKey))
		if err != nil {
			return err
		}

		filter := packages.Filter{
			PackageID:     viper.GetString(packageKey),
			PlatformName:  viper.GetString(platformKey),
			EditorVersion: viper.GetString(editorKey),
		}
		jobs, err := packages.NewGenerator(logFactory).Generate(meta, filter)
		if err != nil {
			return err
		}

		return packages.WritePreview(cmd.OutOrStdout(), jobs)
	},
}
