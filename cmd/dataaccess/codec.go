package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	shopspring "github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebcase/dataaccess/decimal"
	"github.com/calebcase/dataaccess/external"
	"github.com/calebcase/dataaccess/integer"
	"github.com/calebcase/dataaccess/packed"
)

func (a *app) packCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack <value>",
		Short: "Encode a number",
		Long: `Encode a number as a packed or external decimal.

The value is brought to --scale digits after the decimal point before it is
encoded; extra fractional digits are truncated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := shopspring.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid number %q: %w", args[0], err)
			}

			cfg := a.cfg

			unscaled := decimal.Rescale(d, cfg.Scale)
			if !shopspring.NewFromBigInt(unscaled, -cfg.Scale).Equal(d) {
				a.logger.Warn("Fractional digits truncated",
					zap.String("value", d.String()),
					zap.Int32("scale", cfg.Scale))
			}

			a.logger.Debug("Packing",
				zap.String("unscaled", unscaled.String()),
				zap.Int("precision", cfg.Precision),
				zap.String("type", cfg.Type))

			if cfg.IsPacked() {
				buf := make([]byte, packed.ByteLength(cfg.Precision))

				err = integer.BigIntToPacked(unscaled, buf, 0, cfg.Precision, cfg.CheckOverflow)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf))

				return nil
			}

			t, err := cfg.DecimalType()
			if err != nil {
				return err
			}

			if t.Unicode() {
				buf := make([]rune, external.ByteLength(cfg.Precision, t))

				err = external.EncodeUnicode(packed.FromBig(unscaled), buf, 0, cfg.Precision, t, cfg.CheckOverflow)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), string(buf))

				return nil
			}

			buf := make([]byte, external.ByteLength(cfg.Precision, t))

			err = integer.BigIntToExternal(unscaled, buf, 0, cfg.Precision, cfg.CheckOverflow, t)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf))

			return nil
		},
	}
}

func (a *app) unpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <hex>",
		Short: "Decode a number",
		Long: `Decode a packed or external decimal given as hex. Unicode decimals are
given as text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg

			var d shopspring.Decimal

			switch {
			case cfg.IsPacked():
				buf, err := decodeHex(args[0])
				if err != nil {
					return err
				}

				d, err = decimal.FromPacked(buf, 0, cfg.Precision, cfg.Scale)
				if err != nil {
					return err
				}
			default:
				t, err := cfg.DecimalType()
				if err != nil {
					return err
				}

				if t.Unicode() {
					b, err := external.DecodeUnicode([]rune(args[0]), 0, cfg.Precision, t)
					if err != nil {
						return err
					}

					d = shopspring.NewFromBigInt(b.Big(), -cfg.Scale)

					break
				}

				buf, err := decodeHex(args[0])
				if err != nil {
					return err
				}

				d, err = decimal.FromExternal(buf, 0, cfg.Precision, cfg.Scale, t)
				if err != nil {
					return err
				}
			}

			a.logger.Debug("Unpacked",
				zap.String("input", args[0]),
				zap.String("value", d.String()))

			fmt.Fprintln(cmd.OutOrStdout(), d.StringFixed(max(cfg.Scale, 0)))

			return nil
		},
	}
}

func (a *app) shiftCmd() *cobra.Command {
	var toPrecision int

	shiftCmd := &cobra.Command{
		Use:   "shift",
		Short: "Shift a packed decimal by a number of digits",
	}

	run := func(left bool) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg

			src, err := decodeHex(args[0])
			if err != nil {
				return err
			}

			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid shift amount %q: %w", args[1], err)
			}

			dstPrecision := cfg.Precision
			if toPrecision > 0 {
				dstPrecision = toPrecision
			}

			dst := make([]byte, packed.ByteLength(max(dstPrecision, 1)))
			s := packed.Shifter{PreserveZeroSign: cfg.PreserveZeroSign}

			a.logger.Debug("Shifting",
				zap.Bool("left", left),
				zap.Int("amount", amount),
				zap.Int("source_precision", cfg.Precision),
				zap.Int("destination_precision", dstPrecision),
				zap.Bool("rounded", cfg.Rounded))

			if left {
				err = s.ShiftLeft(dst, 0, dstPrecision, src, 0, cfg.Precision, amount, cfg.CheckOverflow)
			} else {
				err = s.ShiftRight(dst, 0, dstPrecision, src, 0, cfg.Precision, amount, cfg.Rounded, cfg.CheckOverflow)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(dst))

			return nil
		}
	}

	leftCmd := &cobra.Command{
		Use:   "left <hex> <amount>",
		Short: "Multiply by 10^amount",
		Args:  cobra.ExactArgs(2),
		RunE:  run(true),
	}

	rightCmd := &cobra.Command{
		Use:   "right <hex> <amount>",
		Short: "Divide by 10^amount",
		Args:  cobra.ExactArgs(2),
		RunE:  run(false),
	}

	shiftCmd.PersistentFlags().IntVar(&toPrecision, "to-precision", 0, "Destination precision (default: --precision)")
	shiftCmd.AddCommand(leftCmd, rightCmd)

	return shiftCmd
}

func (a *app) moveCmd() *cobra.Command {
	var toPrecision int

	moveCmd := &cobra.Command{
		Use:   "move <hex>",
		Short: "Copy a packed decimal to a new precision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg

			src, err := decodeHex(args[0])
			if err != nil {
				return err
			}

			dst := make([]byte, packed.ByteLength(max(toPrecision, 1)))
			s := packed.Shifter{PreserveZeroSign: cfg.PreserveZeroSign}

			err = s.Move(dst, 0, toPrecision, src, 0, cfg.Precision, cfg.CheckOverflow)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(dst))

			return nil
		},
	}

	moveCmd.Flags().IntVar(&toPrecision, "to-precision", 0, "Destination precision")
	_ = moveCmd.MarkFlagRequired("to-precision")

	return moveCmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <hex>",
		Short: "Validate a packed decimal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := decodeHex(args[0])
			if err != nil {
				return err
			}

			status, err := packed.Check(buf, 0, a.cfg.Precision)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), status)

			return nil
		},
	}
}

func decodeHex(s string) ([]byte, error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", s, err)
	}

	return buf, nil
}
