// Package demo prints sample fraction operations.
package demo

import (
	"fmt"
	"io"

	"github.com/aatomu/fraction"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/tmthrgd/go-hex"
	"github.com/vmihailenco/msgpack/v5"
)

// Run writes the sample operations described by cfg to w.
func Run(w io.Writer, cfg Config, log zerolog.Logger) error {
	ops, err := cfg.operands()
	if err != nil {
		return err
	}
	log.Debug().
		Str("left", ops.left.String()).
		Str("right", ops.right.String()).
		Msg("operands")

	label := lipgloss.NewRenderer(w).NewStyle().Bold(true)
	line := func(name, format string, args ...any) {
		fmt.Fprintf(w, "%s "+format+"\n", append([]any{label.Render(name + ":")}, args...)...)
	}

	f1, f2 := ops.left, ops.right
	line("f1", "%s", f1)
	line("f2", "%s", f2)
	line("Addition", "%s + %s = %s", f1, f2, f1.Add(f2))
	line("Subtraction", "%s - %s = %s", f1, f2, f1.Sub(f2))
	line("Multiplication", "%s * %s = %s", f1, f2, f1.Mul(f2))

	q, err := f1.Div(f2)
	if err != nil {
		log.Error().Err(err).Msg("division")
		return err
	}
	line("Division", "%s / %s = %s", f1, f2, q)

	line("Mixed number of "+ops.mixed.String(), "%s", ops.mixed.Mixed())
	fmt.Fprintf(w, "%s == %s: %t\n", f1, ops.compare, f1.Equal(ops.compare))
	return nil
}

// Encode returns the hex encoded msgpack form of num/den.
func Encode(num, den int64) (string, error) {
	f, err := fraction.New(num, den)
	if err != nil {
		return "", err
	}
	b, err := msgpack.Marshal(f)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
