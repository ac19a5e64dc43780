package main

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gestaozabele/hashsvc/internal/hashing"
)

// passwordFlags é compartilhado pelos subcomandos.
type passwordFlags struct {
	stdin  bool
	salt   string
	length uint32
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hashpass",
		Short:         "Gera strings PHC Argon2 ou scrypt sem subir o serviço.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newArgon2Cmd(), newScryptCmd())
	return root
}

func (f *passwordFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.stdin, "stdin", false, "lê a senha da entrada padrão")
	cmd.Flags().StringVar(&f.salt, "salt", "", "salt em base64 sem padding (gerado quando vazio)")
	cmd.Flags().Uint32Var(&f.length, "length", 0, "tamanho do hash em bytes (0 usa o padrão)")
}

func (f *passwordFlags) password(cmd *cobra.Command, args []string) (string, error) {
	if f.stdin {
		if len(args) > 0 {
			return "", errors.New("--stdin e senha posicional são mutuamente exclusivos")
		}
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		password := strings.TrimRight(string(raw), "\r\n")
		if password == "" {
			return "", errors.New("senha vazia")
		}
		return password, nil
	}
	if len(args) != 1 {
		return "", errors.New("informe a senha ou use --stdin")
	}
	return args[0], nil
}

func (f *passwordFlags) saltPtr() *string {
	if f.salt == "" {
		return nil
	}
	return &f.salt
}

func (f *passwordFlags) lengthPtr() *uint32 {
	if f.length == 0 {
		return nil
	}
	return &f.length
}

// newHasher desliga os tetos do serviço: o operador local escolhe o custo.
func newHasher() *hashing.Hasher {
	return hashing.New(hashing.WithLimits(hashing.Limits{}))
}
