package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/avierk/hol2ics"
	"github.com/urfave/cli/v2"
)

const (
	ExtensionSource      = ".hol"
	ExtensionDestination = ".ics"
)

var ErrExtension = errors.New("unexpected file extension")

func main() {
	app := &cli.App{
		Name:                 "hol2ics",
		Usage:                "convert an Outlook calendar file (.hol) to an iCalendar file (.ics)",
		ArgsUsage:            "SOURCE",
		EnableBashCompletion: true,
		Suggest:              true,
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:    "output",
				Aliases: []string{"o"},
				EnvVars: []string{"HOL2ICS_OUTPUT"},
				Usage:   "output iCal file path, derived from SOURCE when not set",
			},
		},
		Action: func(ctx *cli.Context) error {
			sourcePath := ctx.Args().First()
			if sourcePath == "" {
				err := cli.ShowAppHelp(ctx)
				if err != nil {
					log.Fatal(err)
				}
				return fmt.Errorf("Required argument \"SOURCE\" not set")
			}

			destinationPath, err := destinationFromFlags(ctx, sourcePath)
			if err != nil {
				return err
			}

			log.Printf("Attempting to convert %s into %s", sourcePath, destinationPath)

			file, err := os.Open(sourcePath)
			if err != nil {
				return fmt.Errorf("error opening source file: %w", err)
			}
			defer file.Close()

			source, err := hol2ics.NewSourceHol(hol2ics.ConfigSourceHol{
				File: file,
			})
			if err != nil {
				return err
			}

			f, err := os.Create(destinationPath)
			if err != nil {
				return fmt.Errorf("unable to open output file: %w", err)
			}
			defer f.Close()

			err = hol2ics.Convert(source, f)
			if err != nil {
				return err
			}

			log.Printf("You can try to validate the resultant file using this webform: https://icalendar.org/validator.html")
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func destinationFromFlags(ctx *cli.Context, sourcePath string) (string, error) {
	if filepath.Ext(sourcePath) != ExtensionSource {
		return "", fmt.Errorf("%w: source file has to end with %s", ErrExtension, ExtensionSource)
	}

	destinationPath := ctx.Path("output")
	if destinationPath == "" {
		return strings.TrimSuffix(sourcePath, ExtensionSource) + ExtensionDestination, nil
	}

	if filepath.Ext(destinationPath) != ExtensionDestination {
		return "", fmt.Errorf("%w: destination file has to end with %s", ErrExtension, ExtensionDestination)
	}

	return destinationPath, nil
}
