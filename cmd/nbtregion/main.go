// Command nbtregion is a small demo harness around the region and tag
// packages: point it at a .mca file and it reports what's in it. It is an
// external collaborator of the library, not part of the core codec.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/astei/nbtregion/region"
	"github.com/astei/nbtregion/tag"
)

func main() {
	app := &cli.App{
		Name:  "nbtregion",
		Usage: "inspect Anvil region files and NBT blobs",
		Commands: []*cli.Command{
			inspectCommand,
			dumpCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

var inspectCommand = &cli.Command{
	Name:      "inspect",
	Usage:     "summarize a region file's populated chunks",
	ArgsUsage: "<region.mca>",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return cli.Exit("need a region file to inspect", 1)
		}

		f, err := os.Open(c.Args().Get(0))
		if err != nil {
			return err
		}
		defer f.Close()

		r, err := region.ReadRegion(f)
		if err != nil {
			return err
		}

		present := 0
		for i, slot := range r.Chunks {
			if slot.Absent() {
				continue
			}
			present++
			blocks, err := r.DecodeChunkBlocks(i)
			if err != nil {
				fmt.Fprintf(os.Stderr, "chunk %d: %v\n", i, err)
				continue
			}
			fmt.Printf("chunk %d: %d sections\n", i, len(blocks.Sections))
		}
		fmt.Printf("%d/%d chunks present, %d distinct block states, %d distinct biomes\n",
			present, region.ChunkCount, r.Blocks.Size(), r.Biomes.Size())
		return nil
	},
}

var dumpCommand = &cli.Command{
	Name:      "dump",
	Usage:     "pretty-print a gzip-compressed or uncompressed NBT file",
	ArgsUsage: "<file.nbt>",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return cli.Exit("need an NBT file to dump", 1)
		}

		f, err := os.Open(c.Args().Get(0))
		if err != nil {
			return err
		}
		defer f.Close()

		root, err := tag.ReadNBTGzip(f)
		if err != nil {
			if _, seekErr := f.Seek(0, 0); seekErr == nil {
				root, err = tag.ReadNBT(f)
			}
		}
		if err != nil {
			return err
		}

		fmt.Println(tag.PrettyString(root))
		return nil
	},
}
