package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/neonkingfr/UniSIMD-sub001/msa"
)

type rootOptions struct {
	output       string
	format       string
	reservations string
	logLevel     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "msaasm [flags] listing",
		Short: "assemble paired-128 MSA vector listings",
		Long: `msaasm encodes a textual listing of logical 256-bit MSA vector
operations into MIPS machine code. Each logical operation expands into two
128-bit MSA words over a low/high register pair. Mask branches emit literal
branch mnemonics, so only the "asm" format can carry them.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(opts, args[0]); err != nil {
				logrus.WithError(err).Error("assembly failed")
				return err
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("parse log level: %w", err)
			}
			logrus.SetLevel(lvl)
			return nil
		},
	}

	cmd.Flags().AddFlagSet(opts.flagSet())

	return cmd
}

func (o *rootOptions) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("msaasm", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.StringVarP(&o.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVarP(&o.format, "format", "f", "hex", "output format: hex, bin or asm")
	fs.StringVar(&o.reservations, "reservations", "", "YAML file overriding the reserved registers")
	fs.StringVar(&o.logLevel, "log-level", "info", "logrus level")
	return fs
}

func run(opts *rootOptions, input string) error {
	src, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read listing: %w", err)
	}

	rsv := msa.DefaultReservations()
	if opts.reservations != "" {
		rsv, err = loadReservations(opts.reservations)
		if err != nil {
			return err
		}
	}
	logrus.WithFields(logrus.Fields{
		"mask":    rsv.Mask,
		"scratch": rsv.Scratch,
		"zero":    rsv.Zero,
	}).Debug("reserved registers")

	var buf msa.Buffer
	if err := parseListing(src, msa.NewWith(&buf, rsv)); err != nil {
		return err
	}
	logrus.WithField("units", buf.Len()).Debug("listing encoded")

	out := io.Writer(os.Stdout)
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	return writeOutput(out, &buf, opts.format)
}

func writeOutput(w io.Writer, buf *msa.Buffer, format string) error {
	switch format {
	case "hex":
		// Bare labels encode nothing and are dropped; anything else in the
		// text channel is a branch mnemonic the hex stream cannot express.
		for _, line := range buf.Lines() {
			if !strings.HasSuffix(line, ":") {
				return fmt.Errorf("hex output cannot carry branch mnemonics; use --format asm")
			}
		}
		for _, word := range buf.Words() {
			if _, err := fmt.Fprintf(w, "%08X\n", word); err != nil {
				return fmt.Errorf("write hex: %w", err)
			}
		}
		return nil
	case "bin":
		return buf.Encode(w)
	case "asm":
		return buf.WriteListing(w)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// reservationsFile is the YAML shape of --reservations. Registers are
// plain MSA indices; base takes a MIPS register name.
type reservationsFile struct {
	Mask    uint8  `yaml:"mask"`
	Scratch uint8  `yaml:"scratch"`
	Zero    uint8  `yaml:"zero"`
	Base    string `yaml:"base"`
}

func loadReservations(path string) (msa.Reservations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return msa.Reservations{}, fmt.Errorf("read reservations: %w", err)
	}
	var rf reservationsFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return msa.Reservations{}, fmt.Errorf("parse reservations: %w", err)
	}
	rsv := msa.Reservations{
		Mask:    msa.VReg(rf.Mask),
		Scratch: msa.VReg(rf.Scratch),
		Zero:    msa.VReg(rf.Zero),
		Base:    msa.T8,
	}
	if rf.Base != "" {
		g, ok := gprNames[rf.Base]
		if !ok {
			return msa.Reservations{}, fmt.Errorf("unknown base register %q", rf.Base)
		}
		rsv.Base = g
	}
	return rsv, nil
}
