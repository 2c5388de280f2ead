package app

import (
	"context"
	"fmt"
	"io"

	"godmi/internal/dmitype"
)

// Request describes what the decoder should process
type Request struct {
	Device string
	Types  dmitype.Selection
	Dump   bool
	Quiet  bool
}

// Decoder reads SMBIOS entries and renders the ones the request selects
type Decoder interface {
	Decode(ctx context.Context, req Request, w io.Writer) error
}

// PlanDecoder prints which entry types would be processed without
// touching the device
type PlanDecoder struct{}

// Decode writes the selection plan for req to w
func (PlanDecoder) Decode(ctx context.Context, req Request, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !req.Quiet {
		fmt.Fprintf(w, "Reading from %s\n", req.Device)
	}
	if req.Dump {
		fmt.Fprintln(w, "Dump mode: entries will not be decoded")
	}

	if !req.Types.IsSet() {
		fmt.Fprintln(w, "All types")
		return nil
	}
	for i := 0; i < dmitype.NumTypes; i++ {
		t := uint8(i)
		if !req.Types.Allows(t) {
			continue
		}
		if kw := dmitype.KeywordFor(t); kw != "" {
			fmt.Fprintf(w, "Type 0x%02X (%s)\n", t, kw)
		} else {
			fmt.Fprintf(w, "Type 0x%02X\n", t)
		}
	}
	return nil
}
