package ingest

import "errors"

var (
	// ErrMalformedRow reports a row with missing fields or a bad score.
	ErrMalformedRow = errors.New("ingest: malformed row")

	// ErrEmptyInput reports input without a header row.
	ErrEmptyInput = errors.New("ingest: empty input")
)

// DefaultUnknown is the sentinel identifier for unmapped proteins.
const DefaultUnknown = "unknown"

// Triple is one parsed interaction.
type Triple struct {
	A, B  string
	Score uint16
}

// Stats counts what happened to each data row.
type Stats struct {
	Rows           int // data rows read, header excluded
	Kept           int
	DroppedUnknown int
	DroppedScore   int
}

// Options controls parsing and filtering.
type Options struct {
	// Delimiter separates columns; ',' by default.
	Delimiter rune

	// Unknown is the sentinel identifier; DefaultUnknown by default.
	Unknown string

	// MinScore drops rows scoring below it. Zero keeps everything.
	MinScore uint16

	// Mapping, if non-nil, translates identifiers before filtering.
	Mapping map[string]string
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns comma-delimited input with the default sentinel.
func DefaultOptions() Options {
	return Options{Delimiter: ',', Unknown: DefaultUnknown}
}

// WithDelimiter sets the column separator.
func WithDelimiter(r rune) Option {
	return func(o *Options) { o.Delimiter = r }
}

// WithUnknown sets the sentinel identifier.
func WithUnknown(s string) Option {
	return func(o *Options) { o.Unknown = s }
}

// WithMinScore drops rows scoring below min.
func WithMinScore(min uint16) Option {
	return func(o *Options) { o.MinScore = min }
}

// WithMapping translates identifiers through m.
func WithMapping(m map[string]string) Option {
	return func(o *Options) { o.Mapping = m }
}
