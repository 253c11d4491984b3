// Command modinv computes fixed-width modular inverses from the command
// line. It is a diagnostic front end for the bignum library: operands are
// big-endian hex, the width in 64-bit words either comes from --words or is
// sized to fit the modulus, and precondition checks that the library itself
// must not perform (odd modulus, invertible operand) happen here, where the
// inputs are not secret.
package main

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	bignum "github.com/rafaelescrich/go-bignum"
)

type options struct {
	modulus string
	words   int
	check   bool
	verbose bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "modinv -m <hex modulus> <hex operand>",
		Short:         "Compute the inverse of an operand modulo an odd modulus",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}
	cmd.Flags().StringVarP(&opts.modulus, "modulus", "m", "", "modulus in big-endian hex (odd, greater than 1)")
	cmd.Flags().IntVarP(&opts.words, "words", "k", 0, "operand width in 64-bit words (default: smallest fit for the modulus)")
	cmd.Flags().BoolVar(&opts.check, "check", false, "verify the result against math/big")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cobra.CheckErr(cmd.MarkFlagRequired("modulus"))
	return cmd
}

func run(cmd *cobra.Command, opts *options, operand string) error {
	if opts.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	k := opts.words
	if k == 0 {
		digits := len(strings.TrimPrefix(opts.modulus, "0x"))
		k = (digits + 15) / 16
		if k == 0 {
			k = 1
		}
	}

	b, err := bignum.ParseHex(k, opts.modulus)
	if err != nil {
		return errors.Wrap(err, "parsing modulus")
	}
	a, err := bignum.ParseHex(k, operand)
	if err != nil {
		return errors.Wrap(err, "parsing operand")
	}

	bBig := new(big.Int).SetBytes(bignum.WordsToBytes(b))
	aBig := new(big.Int).SetBytes(bignum.WordsToBytes(a))
	if b[0]&1 == 0 || bBig.Cmp(big.NewInt(1)) <= 0 {
		return errors.New("modulus must be odd and greater than 1")
	}
	if new(big.Int).GCD(nil, nil, aBig, bBig).Cmp(big.NewInt(1)) != 0 {
		return errors.New("operand is not invertible: gcd(a, b) != 1")
	}

	logrus.WithFields(logrus.Fields{
		"words":      k,
		"iterations": bignum.Iterations(k),
		"scratch":    bignum.ScratchWords(k),
	}).Debug("inverting")

	z := make([]uint64, k)
	t := make([]uint64, bignum.ScratchWords(k))
	bignum.ModInv(z, a, b, t)

	if opts.check {
		zBig := new(big.Int).SetBytes(bignum.WordsToBytes(z))
		prod := new(big.Int).Mul(zBig, aBig)
		if prod.Mod(prod, bBig).Cmp(big.NewInt(1)) != 0 {
			return errors.Errorf("self-check failed: %s * %s mod %s != 1",
				bignum.FormatHex(z), operand, opts.modulus)
		}
		logrus.Debug("self-check passed")
	}

	fmt.Fprintln(cmd.OutOrStdout(), bignum.FormatHex(z))
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "modinv:", err)
		os.Exit(1)
	}
}
