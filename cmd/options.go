package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cmmoran/uextern/pkg/externgen"
)

// configKey is the config file section holding externgen.Options.
const configKey = "externs"

// optionFlags holds the command line values shared by generate and check.
type optionFlags struct {
	input, outDir, extension, basePackage, manifestFile string
	coreModules, arrayDenylist, excludeTypes            []string
}

func (f *optionFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.input, "input", "i", "", "reflection document (yaml, json or toml)")
	fs.StringVarP(&f.outDir, "output-directory", "o", externgen.DefaultOutDir, "root directory of the generated externs")
	fs.StringVarP(&f.extension, "extension", "e", externgen.DefaultExtension, "file extension of generated externs")
	fs.StringVarP(&f.basePackage, "base-package", "p", externgen.DefaultBasePackage, "Haxe package every binding lives under")
	fs.StringVarP(&f.manifestFile, "manifest", "m", externgen.DefaultManifestFile, "manifest file, relative to the output directory")
	fs.StringSliceVar(&f.coreModules, "core-modules", externgen.DefaultCoreModules(), "modules bound directly into the base package")
	fs.StringSliceVar(&f.arrayDenylist, "array-denylist", nil, "array element types that must not be bound")
	fs.StringSliceVarP(&f.excludeTypes, "exclude-types", "t", []string{}, "native names, C++ names or paths of types to skip")
}

// options merges the config file section with the flags the user set; flags win.
func (f *optionFlags) options(c *cobra.Command) (*externgen.Options, error) {
	opts := externgen.NewOptions()
	if viper.IsSet(configKey) {
		if err := viper.UnmarshalKey(configKey, opts); err != nil {
			return nil, errors.Wrapf(err, "decode %q config section", configKey)
		}
	}

	fs := c.Flags()
	if fs.Changed("input") {
		opts.Input = f.input
	}
	if fs.Changed("output-directory") {
		opts.OutDir = f.outDir
	}
	if fs.Changed("extension") {
		opts.Extension = f.extension
	}
	if fs.Changed("base-package") {
		opts.BasePackage = f.basePackage
	}
	if fs.Changed("manifest") {
		opts.ManifestFile = f.manifestFile
	}
	if fs.Changed("core-modules") {
		opts.CoreModules = f.coreModules
	}
	if fs.Changed("array-denylist") {
		opts.ArrayDenylist = append([]string{}, f.arrayDenylist...)
	}
	if fs.Changed("exclude-types") {
		opts.ExcludeTypes = append(opts.ExcludeTypes, f.excludeTypes...)
	}
	opts.Normalize()
	return opts, nil
}
