package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"regexp"
	"time"

	cli "github.com/urfave/cli/v2"

	"vcfsynth/vcfsynth_api"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.New(os.Stderr, "", 0).Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:            "vcfsynth",
		Usage:           "Generates a fake VCF based on another VCF's header",
		ArgsUsage:       "template.vcf[.gz]",
		HideHelpCommand: true,
		Version:         "0.1.0dev",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "num-variants",
				Aliases:  []string{"n"},
				Usage:    "Number of variants to generate",
				Value:    1,
				Category: "Optional",
			},
			&cli.StringFlag{
				Name:     "gt-opts",
				Aliases:  []string{"g"},
				Usage:    "Constraints to apply when generating genotypes. Leave empty to generate entirely random genotypes. Use 'het' to generate only heterozygotes (e.g. 0/1), 'hom-ref' to generate only homozygous reference genotypes (e.g. 0/0) and 'hom-alt' to generate only homozygous alternate genotypes (e.g. 1/1)",
				Category: "Optional",
				Action: func(c *cli.Context, input string) error {
					if _, err := vcfsynth_api.ParseGenotypeOption(input); err != nil {
						return cli.Exit("Invalid genotype option '"+input+"', must be one of: hom-ref, hom-alt, het", 1)
					}
					return nil
				},
			},
			&cli.StringFlag{
				Name:     "include-contig",
				Usage:    "Only generate variants on contigs whose name matches this regex pattern",
				Category: "Optional",
			},
			&cli.StringFlag{
				Name:     "exclude-contig",
				Usage:    "Do not generate variants on contigs whose name matches this regex pattern",
				Category: "Optional",
			},
			&cli.StringFlag{
				Name:     "profile",
				Aliases:  []string{"p"},
				Usage:    "Profile file (YAML) overriding the value ranges used for synthesis",
				Category: "Optional",
			},
			&cli.Int64Flag{
				Name:     "seed",
				Aliases:  []string{"s"},
				Usage:    "Seed for the random generator, for reproducible output",
				Category: "Optional",
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "The location of the output VCF file, defaults to stdout",
				Category: "Optional",
			},
			&cli.BoolFlag{
				Name:     "nodate",
				Aliases:  []string{"nd"},
				Usage:    "Don't add the current date to the output VCF header",
				Category: "Optional",
			},
		},
		Action: generate,
	}
}

func generate(Cctx *cli.Context) error {
	if Cctx.NArg() != 1 {
		return cli.Exit("Exactly one template VCF must be given", 1)
	}

	template := Cctx.Args().First()
	if _, err := os.Stat(template); err != nil {
		return fmt.Errorf("the template VCF does not exist: %v", err)
	}

	options, err := parseOptions(Cctx)
	if err != nil {
		return err
	}

	header, err := vcfsynth_api.Read(template)
	if err != nil {
		return err
	}

	out := os.Stdout
	if Cctx.String("output") != "" {
		out, err = os.Create(Cctx.String("output"))
		if err != nil {
			return fmt.Errorf("failed to create the output file: %v", err)
		}
		defer out.Close()
	}

	seed := Cctx.Int64("seed")
	if !Cctx.IsSet("seed") {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if err := vcfsynth_api.WriteHeader(header, out, Cctx.Bool("nodate")); err != nil {
		return err
	}
	return vcfsynth_api.Generate(rng, header, out, Cctx.Int("num-variants"), options)
}

// parseOptions builds the synthesis options from the command line flags
func parseOptions(Cctx *cli.Context) (*vcfsynth_api.Options, error) {
	options := &vcfsynth_api.Options{
		Profile: vcfsynth_api.DefaultProfile(),
	}

	var err error
	if pattern := Cctx.String("include-contig"); pattern != "" {
		options.IncludeContig, err = regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid include-contig pattern: %v", err)
		}
	}
	if pattern := Cctx.String("exclude-contig"); pattern != "" {
		options.ExcludeContig, err = regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude-contig pattern: %v", err)
		}
	}
	// Refuse conflicting filters before any output is written
	if options.IncludeContig != nil && options.ExcludeContig != nil {
		return nil, vcfsynth_api.ErrFilterConflict
	}

	options.Genotype, err = vcfsynth_api.ParseGenotypeOption(Cctx.String("gt-opts"))
	if err != nil {
		return nil, err
	}

	if profile := Cctx.String("profile"); profile != "" {
		options.Profile, err = vcfsynth_api.ReadProfile(profile)
		if err != nil {
			return nil, err
		}
	}

	return options, nil
}
