package main

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/tmaitland/charart"
	"github.com/tmaitland/charart/render"
	"github.com/tmaitland/charart/source"
)

const defaultDB = "charart.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func optionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to YAML options file",
		},
		&cli.BoolFlag{
			Name:  "shading",
			Usage: "shade blocks at or below the brightness threshold",
		},
		&cli.BoolFlag{
			Name:  "ignore-whitespaces",
			Usage: "render pure white blocks as blanks",
		},
		&cli.BoolFlag{
			Name:  "legacy-style",
			Usage: "force the shaded glyph for every non-whitespace block",
		},
	}
}

func options(c *cli.Context) (charart.Options, error) {
	opts := charart.DefaultOptions()

	if file := c.String("config"); file != "" {
		var err error
		if opts, err = charart.LoadOptions(file); err != nil {
			return opts, err
		}
	}

	if c.Bool("shading") {
		opts.Shading = true
	}
	if c.Bool("ignore-whitespaces") {
		opts.IgnoreWhitespaces = true
	}
	if c.Bool("legacy-style") {
		opts.LegacyStyle = true
	}

	return opts, nil
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func renderPages(c *cli.Context, src source.Source) ([]image.Image, error) {
	if pdf, ok := src.(*source.PDF); ok && c.Int("page") == 0 {
		return pdf.RenderAll()
	}

	page := c.Int("page")
	if page > 0 {
		page--
	}

	m, err := src.RenderPage(page)
	if err != nil {
		return nil, err
	}
	return []image.Image{m}, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "charart"
	app.Usage = "Convert images to colored character art"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"CHARART_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to art cache database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "convert",
			Usage:     "Convert an image or PDF page to ANSI art",
			ArgsUsage: "FILE",
			Flags: append(optionFlags(),
				&cli.IntFlag{
					Name:  "page",
					Value: 1,
					Usage: "PDF page to convert, 0 for all pages",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write ANSI art to `FILE` instead of stdout",
				},
				&cli.StringFlag{
					Name:  "png",
					Usage: "write a mosaic preview to `FILE` instead of ANSI art",
				},
			),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				opts, err := options(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				src, err := source.Open(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer src.Close()

				pages, err := renderPages(c, src)
				if err != nil {
					return cli.Exit(err, 1)
				}

				if file := c.String("png"); file != "" {
					if len(pages) > 1 {
						return cli.Exit("png output supports a single page", 1)
					}
					rows, err := charart.Convert(pages[0], opts)
					if err != nil {
						return cli.Exit(err, 1)
					}
					f, err := os.Create(file)
					if err != nil {
						return cli.Exit(err, 1)
					}
					defer f.Close()
					if err := render.PNG(f, rows, opts.CellWidth, opts.CellHeight); err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				}

				out := io.Writer(os.Stdout)
				if file := c.String("output"); file != "" {
					f, err := os.Create(file)
					if err != nil {
						return cli.Exit(err, 1)
					}
					defer f.Close()
					out = f
				}

				for _, m := range pages {
					rows, err := charart.Convert(m, opts)
					if err != nil {
						return cli.Exit(err, 1)
					}
					fmt.Fprint(out, render.ANSI(rows))
				}

				return nil
			},
		},
		{
			Name:      "view",
			Usage:     "Display an image as character art in the terminal",
			ArgsUsage: "FILE",
			Flags:     optionFlags(),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				opts, err := options(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				m, err := source.Load(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				rows, err := charart.Convert(m, opts)
				if err != nil {
					return cli.Exit(err, 1)
				}

				v, err := render.NewViewer(rows)
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := v.Run(); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "scan",
			Usage:     "Convert every image under a directory tree",
			ArgsUsage: "DIRECTORY",
			Flags:     optionFlags(),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				opts, err := options(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				db, err := charart.NewArtDB(c.String("db"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				a := charart.New(db, newLogger(c))

				if err := a.Scan(c.Args().First(), opts); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
