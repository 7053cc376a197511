package main

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/wkt2gml"
	"github.com/woozymasta/wkt2gml/internal/config"
	"github.com/woozymasta/wkt2gml/internal/logger"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile     string `short:"c" long:"config"          env:"CONFIG_FILE" description:"Path to configuration file, ignored when missing"`
	Input          string `short:"i" long:"in"              description:"Input file path. Reads from stdin if empty"`
	Output         string `short:"o" long:"out"             description:"Output file path. Writes to stdout if empty"`
	Format         string `short:"f" long:"format"          description:"Input format" choice:"wkt" choice:"wkb" choice:"geojson"`
	Namespace      string `short:"n" long:"namespace"       description:"GML namespace URI"`
	SRSName        string `long:"srs-name"                  description:"srsName attribute of the root element"`
	Compact        bool   `long:"compact"                   description:"Write without indentation"`
	XMLDeclaration bool   `long:"xml-declaration"           description:"Prepend an XML declaration"`
	Lines          bool   `long:"lines"                     description:"Treat every non-empty input line as a separate geometry"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := config.LoadOrDefault(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	input, err := readInput(opts.Input)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read input")
	}

	out, err := run(input, opts.convertOptions(cfg), opts.Lines)
	if err != nil {
		log.Fatal().Err(err).Msg("Conversion failed")
	}

	if opts.Output == "" {
		if _, err := os.Stdout.Write(out); err != nil {
			log.Fatal().Err(err).Msg("Failed to write output")
		}
		return
	}

	if err := os.WriteFile(opts.Output, out, 0o644); err != nil {
		log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write output")
	}
	log.Info().Str("path", opts.Output).Int("bytes", len(out)).Msg("GML written")
}

// convertOptions layers the command line over the configuration file.
func (o *Options) convertOptions(cfg *config.Config) wkt2gml.Options {
	c := cfg.ConvertOptions()
	if o.Format != "" {
		c.InputFormat = wkt2gml.InputFormat(o.Format)
	}
	if o.Namespace != "" {
		c.Namespace = o.Namespace
	}
	if o.SRSName != "" {
		c.SRSName = o.SRSName
	}
	if o.Compact {
		c.PrettyPrint = false
	}
	if o.XMLDeclaration {
		c.HeadlessXML = false
	}
	return c
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// run converts input as one geometry, or line by line when lines is set.
// Every document is terminated by a newline.
func run(input []byte, o wkt2gml.Options, lines bool) ([]byte, error) {
	var buf bytes.Buffer

	if !lines {
		out, err := wkt2gml.Convert(string(input), wkt2gml.WithOptions(o))
		if err != nil {
			return nil, err
		}
		buf.WriteString(out)
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	}

	sc := bufio.NewScanner(bytes.NewReader(input))
	sc.Buffer(make([]byte, 0, 64*1024), len(input)+1)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out, err := wkt2gml.Convert(line, wkt2gml.WithOptions(o))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		buf.WriteString(out)
		buf.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
