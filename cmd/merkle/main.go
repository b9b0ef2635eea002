package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/treehash/merkle"
	"github.com/treehash/merkle/digest"
)

func main() {
	app := &cli.App{
		Name:  "merkle",
		Usage: "Build Merkle trees over files and generate/verify inclusion proofs",
		Description: `Hashes a set of files (directories are recursed in lexicographic order)
into a binary Merkle tree, prints its root, and produces or checks compact
inclusion proofs for single leaves against a known root.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "hash",
				Usage: "Hash function to use (sha256 or blake2b)",
				Value: "sha256",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "root",
				Usage:     "Hash the given paths into a tree and print the root digest",
				ArgsUsage: "PATH [PATH...]",
				Action:    rootCommand,
			},
			{
				Name:      "prove",
				Usage:     "Generate an inclusion proof for one leaf of the tree",
				ArgsUsage: "PATH [PATH...]",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "index",
						Usage:    "Leaf index to prove",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "File to write the JSON proof to (default: stdout)",
					},
				},
				Action: proveCommand,
			},
			{
				Name:      "verify",
				Usage:     "Verify a file against a proof and an expected root",
				ArgsUsage: "DATAFILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "root",
						Usage:    "Expected root digest (hex)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "proof",
						Usage:    "Path to the JSON proof file",
						Required: true,
					},
				},
				Action: verifyCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newLogger(c *cli.Context) (*zap.Logger, error) {
	if c.Bool("debug") {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newHasher(c *cli.Context) (merkle.Hasher, error) {
	switch name := c.String("hash"); name {
	case "sha256":
		return merkle.NewSha256Hasher(), nil
	case "blake2b":
		return merkle.NewBlake2bHasher(), nil
	default:
		return nil, errors.Errorf("unknown hash function %q", name)
	}
}

func rootCommand(c *cli.Context) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return errors.New("at least one path is required")
	}
	logger, err := newLogger(c)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	hasher, err := newHasher(c)
	if err != nil {
		return err
	}
	tree, err := merkle.FromPaths(hasher, paths)
	if err != nil {
		return errors.Wrap(err, "failed to build tree")
	}
	logger.Debug("built tree",
		zap.Int("leaves", tree.Len()),
		zap.Int("height", tree.Height()),
	)

	fmt.Println(tree.RootDigest().String())
	return nil
}

func proveCommand(c *cli.Context) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return errors.New("at least one path is required")
	}
	logger, err := newLogger(c)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	hasher, err := newHasher(c)
	if err != nil {
		return err
	}
	leaves, err := merkle.LeavesFromPaths(hasher, paths)
	if err != nil {
		return errors.Wrap(err, "failed to hash paths")
	}
	proofer, err := merkle.NewProofer(hasher, leaves)
	if err != nil {
		return err
	}

	index := c.Int("index")
	proof, err := proofer.Generate(index)
	if err != nil {
		return err
	}
	logger.Debug("generated proof",
		zap.Int("index", index),
		zap.Int("pathLen", len(proof.Path())),
		zap.String("root", proofer.Root().String()),
	)

	encoded, err := json.MarshalIndent(proof, "", "  ")
	if err != nil {
		return err
	}
	if output := c.String("output"); output != "" {
		if err := os.WriteFile(output, append(encoded, '\n'), 0o644); err != nil {
			return errors.Wrapf(err, "failed to write proof to %q", output)
		}
		return nil
	}
	fmt.Println(string(encoded))
	return nil
}

func verifyCommand(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.New("exactly one data file is required")
	}
	logger, err := newLogger(c)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	hasher, err := newHasher(c)
	if err != nil {
		return err
	}
	root, err := digest.FromHex(c.String("root"))
	if err != nil {
		return err
	}
	rawProof, err := os.ReadFile(c.String("proof"))
	if err != nil {
		return errors.Wrapf(err, "failed to read proof %q", c.String("proof"))
	}
	var proof merkle.Proof
	if err := json.Unmarshal(rawProof, &proof); err != nil {
		return errors.Wrap(err, "failed to decode proof")
	}
	data, err := os.ReadFile(c.Args().First())
	if err != nil {
		return errors.Wrapf(err, "failed to read data file %q", c.Args().First())
	}

	if !proof.Verify(hasher, data, root) {
		logger.Warn("verification failed",
			zap.Int("index", proof.LeafIndex()),
			zap.String("root", root.String()),
		)
		return cli.Exit("verification failed", 1)
	}
	fmt.Println("OK")
	return nil
}
