package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"regexp"

	"github.com/jsphweid/relayseq/constants"
	"github.com/jsphweid/relayseq/convert"
	"github.com/jsphweid/relayseq/model"
	"github.com/pkg/errors"
)

const (
	FormatC    = "c"
	FormatJSON = "json"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type Options struct {
	ArrayName string
	// Source is named in the header comment, usually the input path.
	Source string
}

func (o Options) arrayName() (string, error) {
	if o.ArrayName == "" {
		return constants.DefaultArrayName, nil
	}
	if !identifier.MatchString(o.ArrayName) {
		return "", errors.Wrapf(model.ErrUsage, "array name %q is not a C identifier", o.ArrayName)
	}
	return o.ArrayName, nil
}

// WriteCArray writes the segments as a Note array ready to paste into the
// relay player sketch.
func WriteCArray(w io.Writer, segments []model.Segment, opts Options) error {
	name, err := opts.arrayName()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// generated from %s\n", opts.Source)
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "const Note %s[] = {\n", name)
	for _, s := range segments {
		fmt.Fprintf(bw, "  {0x%02X, %d},\n", s.Mask, s.DurationMs)
	}
	fmt.Fprintln(bw, "};")
	fmt.Fprintf(bw, "const size_t %s_LEN = sizeof(%s) / sizeof(%s[0]);\n", name, name, name)
	return bw.Flush()
}

func Response(res *convert.Result, source string) model.ConvertResponse {
	out := model.ConvertResponse{
		Source:      source,
		TempoUs:     res.TempoUs,
		TempoFound:  res.TempoFound,
		MsPerTick:   res.MsPerTick,
		MinNote:     res.Range.Min,
		MaxNote:     res.Range.Max,
		NumEvents:   res.Events,
		NumSegments: len(res.Segments),
		TotalMs:     res.TotalMs(),
		Segments:    make([]model.ConvertSegment, 0, len(res.Segments)),
	}
	for _, s := range res.Segments {
		out.Segments = append(out.Segments, model.ConvertSegment{Mask: s.Mask, DurationMs: s.DurationMs})
	}
	return out
}

func WriteJSON(w io.Writer, res *convert.Result, opts Options) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(Response(res, opts.Source))
}

// Write renders in the named format.
func Write(w io.Writer, format string, res *convert.Result, opts Options) error {
	switch format {
	case FormatC, "":
		return WriteCArray(w, res.Segments, opts)
	case FormatJSON:
		return WriteJSON(w, res, opts)
	}
	return errors.Wrapf(model.ErrUsage, "unknown format %q", format)
}
