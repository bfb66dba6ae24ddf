// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/axiomware/roaring"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roaring-cli",
		Short: "Build, inspect, and serialize Roaring bitmaps from the command line",
	}

	var setA, setB string
	var setOp string

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Apply a binary set operation to two value lists and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseValues(setA)
			if err != nil {
				return fmt.Errorf("--a: %w", err)
			}
			b, err := parseValues(setB)
			if err != nil {
				return fmt.Errorf("--b: %w", err)
			}
			ba, bb := roaring.FromValues(a), roaring.FromValues(b)

			var out *roaring.Bitmap
			switch setOp {
			case "union":
				out = ba.Union(bb)
			case "intersection":
				out = ba.Intersection(bb)
			case "difference":
				out = ba.Difference(bb)
			case "symmetric-difference":
				out = ba.SymmetricDifference(bb)
			default:
				return fmt.Errorf("unknown --op %q: want union, intersection, difference, or symmetric-difference", setOp)
			}

			fmt.Printf("len=%d\n", out.Len())
			printValues(out.ToSortedSlice())
			return nil
		},
	}
	setCmd.Flags().StringVar(&setA, "a", "", "comma-separated values or lo..hi ranges for the left operand")
	setCmd.Flags().StringVar(&setB, "b", "", "comma-separated values or lo..hi ranges for the right operand")
	setCmd.Flags().StringVar(&setOp, "op", "union", "union, intersection, difference, or symmetric-difference")

	var statValues string
	var statOptimize bool

	statCmd := &cobra.Command{
		Use:   "stat",
		Short: "Build a bitmap and print its container-level shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(statValues)
			if err != nil {
				return fmt.Errorf("--values: %w", err)
			}
			b := roaring.FromValues(values)
			if statOptimize {
				b.Optimize()
			}
			s := b.Stats()
			fmt.Printf("containers=%d (array=%d bitmap=%d run=%d)\n",
				s.Containers, s.ArrayContainers, s.BitmapContainers, s.RunContainers)
			fmt.Printf("cardinality=%d\n", s.Cardinality)
			fmt.Printf("serialized_size=%d bytes\n", s.SerializedBytes)
			return nil
		},
	}
	statCmd.Flags().StringVar(&statValues, "values", "", "comma-separated values or lo..hi ranges")
	statCmd.Flags().BoolVar(&statOptimize, "optimize", true, "optimize container representations before reporting")

	var serializeValues string
	var serializeOut string

	serializeCmd := &cobra.Command{
		Use:   "serialize",
		Short: "Build a bitmap and write its portable wire format to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(serializeValues)
			if err != nil {
				return fmt.Errorf("--values: %w", err)
			}
			b := roaring.FromValues(values)
			data := b.Serialize()

			if serializeOut == "" || serializeOut == "-" {
				_, err = os.Stdout.Write(data)
				return err
			}
			return os.WriteFile(serializeOut, data, 0o644)
		},
	}
	serializeCmd.Flags().StringVar(&serializeValues, "values", "", "comma-separated values or lo..hi ranges")
	serializeCmd.Flags().StringVar(&serializeOut, "out", "-", "output file path, or - for stdout")

	rootCmd.AddCommand(setCmd, statCmd, serializeCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseValues accepts a comma-separated list mixing single values ("5")
// and half-open ranges ("10..20").
func parseValues(spec string) ([]uint32, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}
	var out []uint32
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part, ".."); ok {
			lov, err := strconv.ParseUint(lo, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid range start %q: %w", part, err)
			}
			hiv, err := strconv.ParseUint(hi, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid range end %q: %w", part, err)
			}
			for v := lov; v < hiv; v++ {
				out = append(out, uint32(v))
			}
			continue
		}
		v, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", part, err)
		}
		out = append(out, uint32(v))
	}
	return out, nil
}

func printValues(values []uint32) {
	const maxPrint = 64
	for i, v := range values {
		if i >= maxPrint {
			fmt.Printf("... (%d more)\n", len(values)-maxPrint)
			return
		}
		fmt.Println(v)
	}
}
