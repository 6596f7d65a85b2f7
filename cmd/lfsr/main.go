package main

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/renproject/lfsr"
	"github.com/renproject/lfsr/bitutil"
	"github.com/renproject/surge"
	"github.com/urfave/cli"
)

var registerFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "preset, p",
		Usage: "named register configuration, overrides --variant/--width/--taps",
	},
	cli.StringFlag{
		Name:  "variant",
		Value: "right",
		Usage: "right, left or inverted",
	},
	cli.UintFlag{
		Name:  "width, w",
		Value: 16,
		Usage: "register width in bits (1-64)",
	},
	cli.StringFlag{
		Name:  "taps, t",
		Value: "16,14,13,11",
		Usage: "feedback polynomial exponents, comma separated",
	},
	cli.StringFlag{
		Name:  "seed, s",
		Usage: "initial register value; decimal or 0x hex",
	},
}

func main() {
	myApp := cli.NewApp()
	myApp.Name = "lfsr"
	myApp.Usage = "generate and inspect Fibonacci LFSR sequences"
	myApp.Version = "1.0"
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "presets",
			Usage: "YAML file of named register configurations",
		},
	}
	myApp.Commands = []cli.Command{
		{
			Name:  "stream",
			Usage: "print output words, one hex value per line",
			Flags: append([]cli.Flag{
				cli.UintFlag{
					Name:  "count, n",
					Value: 16,
					Usage: "number of words to print",
				},
				cli.UintFlag{
					Name:  "bits, b",
					Value: 16,
					Usage: "bits per word: 8, 16, 32 or 64",
				},
				cli.BoolFlag{
					Name:  "msb-first",
					Usage: "print each word with the first output bit as its MSB",
				},
				cli.StringFlag{
					Name:  "checkpoint",
					Usage: "resume from this state file if it exists, and save the final state to it",
				},
			}, registerFlags...),
			Action: func(c *cli.Context) error {
				e, err := engineFromContext(c)
				if err != nil {
					return err
				}
				return stream(c, e, os.Stdout)
			},
		},
		{
			Name:  "period",
			Usage: "measure the cycle length from the seed",
			Flags: append([]cli.Flag{
				cli.Uint64Flag{
					Name:  "limit",
					Value: 1 << 32,
					Usage: "give up after this many steps",
				},
			}, registerFlags...),
			Action: func(c *cli.Context) error {
				e, err := engineFromContext(c)
				if err != nil {
					return err
				}
				start := e.State()
				period, ok := lfsr.Period(e, c.Uint64("limit"))
				if !ok {
					log.Println("no cycle back to", start, "within", c.Uint64("limit"), "steps")
					return nil
				}
				fmt.Println(period)
				return nil
			},
		},
		{
			Name:  "presets",
			Usage: "list the available presets",
			Action: func(c *cli.Context) error {
				presets, err := loadPresets(c.GlobalString("presets"))
				if err != nil {
					return err
				}
				for _, p := range presets.Presets {
					fmt.Printf("%-12v %-8v width=%-2v taps=%v seed=%#x\n", p.Name, p.Variant, p.Width, p.Taps, p.Seed)
				}
				return nil
			},
		},
	}

	if err := myApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadPresets(path string) (*PresetFile, error) {
	if path == "" {
		return &defaultPresets, nil
	}
	return parseYAMLPresets(path)
}

func engineFromContext(c *cli.Context) (lfsr.Engine, error) {
	if name := c.String("preset"); name != "" {
		presets, err := loadPresets(c.GlobalString("presets"))
		if err != nil {
			return nil, err
		}
		p, err := presets.Lookup(name)
		if err != nil {
			return nil, err
		}
		if c.IsSet("seed") {
			if p.Seed, err = parseSeed(c.String("seed")); err != nil {
				return nil, err
			}
		}
		return p.Build()
	}

	v, err := lfsr.ParseVariant(c.String("variant"))
	if err != nil {
		return nil, err
	}
	taps, err := parseTaps(c.String("taps"))
	if err != nil {
		return nil, err
	}
	var seed uint64 = 1
	if c.IsSet("seed") {
		if seed, err = parseSeed(c.String("seed")); err != nil {
			return nil, err
		}
	}
	width, err := parseWidth(c.Uint("width"))
	if err != nil {
		return nil, err
	}
	return lfsr.Build(v, width, taps, seed)
}

func stream(c *cli.Context, e lfsr.Engine, out io.Writer) error {
	bits := c.Uint("bits")
	switch bits {
	case 8, 16, 32, 64:
	default:
		return errors.Errorf("unsupported word size %v", bits)
	}

	checkpoint := c.String("checkpoint")
	if checkpoint != "" {
		if err := restoreCheckpoint(e, checkpoint); err != nil {
			return err
		}
	}

	w := bufio.NewWriter(out)
	for i := uint(0); i < c.Uint("count"); i++ {
		word := e.StepN(uint32(bits))
		if c.Bool("msb-first") {
			word = msbFirst(word, bits)
		}
		fmt.Fprintf(w, "%0*x\n", int(bits/4), word)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "Flush()")
	}

	if checkpoint != "" {
		return saveCheckpoint(e, checkpoint)
	}
	return nil
}

// msbFirst reverses the bit order of a word of the given size, so that the
// first output bit becomes the MSB.
func msbFirst(word uint64, bits uint) uint64 {
	switch bits {
	case 8:
		return uint64(bitutil.ReverseBits8(uint8(word)))
	case 16:
		return uint64(bitutil.ReverseBits16(uint16(word)))
	case 32:
		return uint64(bitutil.ReverseBits32(uint32(word)))
	default:
		return bitutil.ReverseBits64(word)
	}
}

func restoreCheckpoint(e lfsr.Engine, path string) error {
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "ReadFile()")
	}

	var s lfsr.State
	if err := surge.FromBinary(&s, data); err != nil {
		return errors.Wrapf(err, "decoding checkpoint %v", path)
	}
	if err := e.Restore(s); err != nil {
		return errors.Wrapf(err, "checkpoint %v", path)
	}
	log.Println("resumed from", path, "state", s)
	return nil
}

func saveCheckpoint(e lfsr.Engine, path string) error {
	data, err := surge.ToBinary(e.State())
	if err != nil {
		return errors.Wrap(err, "encoding checkpoint")
	}
	if err := ioutil.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "WriteFile()")
	}
	return nil
}
