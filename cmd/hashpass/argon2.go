package main

import (
	"fmt"

	"github.com/alexedwards/argon2id"
	"github.com/spf13/cobra"

	"github.com/gestaozabele/hashsvc/internal/hashing"
)

func newArgon2Cmd() *cobra.Command {
	var (
		pf          passwordFlags
		algorithm   string
		version     int
		memory      uint32
		iterations  uint32
		parallelism uint32
	)

	cmd := &cobra.Command{
		Use:   "argon2 [senha]",
		Short: "Calcula hash Argon2 (i, d ou id).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := pf.password(cmd, args)
			if err != nil {
				return err
			}

			res, err := newHasher().HashArgon2(hashing.Argon2Request{
				Algorithm:   algorithm,
				Password:    &password,
				Salt:        pf.saltPtr(),
				Version:     &version,
				Memory:      memory,
				Iterations:  iterations,
				Parallelism: parallelism,
				HashLength:  pf.lengthPtr(),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Encoded)
			return nil
		},
	}

	pf.register(cmd)
	cmd.Flags().StringVar(&algorithm, "algorithm", hashing.DefaultAlgorithm, "variante: i, d ou id")
	cmd.Flags().IntVar(&version, "version", hashing.DefaultVersion, "versão do algoritmo: 16 ou 19")
	cmd.Flags().Uint32Var(&memory, "memory", argon2id.DefaultParams.Memory, "memória em KiB")
	cmd.Flags().Uint32Var(&iterations, "iterations", argon2id.DefaultParams.Iterations, "número de passadas")
	cmd.Flags().Uint32Var(&parallelism, "parallelism", uint32(argon2id.DefaultParams.Parallelism), "número de lanes")
	return cmd
}
