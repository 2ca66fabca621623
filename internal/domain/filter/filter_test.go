package filter

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/corey/bleep/internal/adapters/wordlist"
	"github.com/corey/bleep/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Shared contract — every strategy detects, redacts, adds and loads the same way
// Expectation: same-length output, case-insensitive, clean text untouched
// =============================================================================

// quiet returns cfg with logging discarded.
func quiet(cfg Config) Config {
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return cfg
}

// captured returns cfg logging into the returned buffer.
func captured(cfg Config) (Config, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, nil))
	return cfg, &buf
}

type strategy struct {
	name  string
	build func(Config) ports.Filter
}

var strategies = []strategy{
	{"exact", func(c Config) ports.Filter { return NewExactMatchFilter(c) }},
	{"pattern", func(c Config) ports.Filter { return NewPatternFilter(c) }},
	{"trie", func(c Config) ports.Filter { return NewTrieFilter(c) }},
	{"composite", func(c Config) ports.Filter { return NewCompositeFilter(c) }},
}

var sampleTexts = []string{
	"What the fuck are you doing?",
	"This is a shitty situation.",
	"You're such a bastard!",
	"I don't give a damn about it.",
	"He's a complete ass.",
	"She's being a real bitch today.",
	"This is f*cking amazing!",
	"What a sh*tty day!",
	"Hello, how are you today?",
	"",
	"ASSASS BaStArD fUuCk",
}

func TestContract_Scenario(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			f := s.build(quiet(DefaultConfig()))
			in := "What the fuck are you doing?"
			assert.True(t, f.ContainsDisallowed(in))
			assert.Equal(t, "What the **** are you doing?", f.Redact(in))
		})
	}
}

func TestContract_CaseInsensitive(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			f := s.build(quiet(DefaultConfig()))
			assert.True(t, f.ContainsDisallowed("FUCK"))
			assert.True(t, f.ContainsDisallowed("fuck"))
			assert.Equal(t, "He's a complete ***.", f.Redact("He's a complete ASS."))
		})
	}
}

func TestContract_CleanText(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			f := s.build(quiet(DefaultConfig()))
			in := "Hello, how are you today?"
			assert.False(t, f.ContainsDisallowed(in))
			assert.Equal(t, in, f.Redact(in))
		})
	}
}

func TestContract_EmptyInput(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			f := s.build(quiet(DefaultConfig()))
			assert.False(t, f.ContainsDisallowed(""))
			assert.Equal(t, "", f.Redact(""))
		})
	}
}

func TestContract_NoDetectionMeansNoChange(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			f := s.build(quiet(DefaultConfig()))
			for _, in := range sampleTexts {
				if !f.ContainsDisallowed(in) {
					assert.Equal(t, in, f.Redact(in), "input %q", in)
				}
			}
		})
	}
}

func TestContract_PreservesLengthAndUnmatchedBytes(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			f := s.build(quiet(DefaultConfig()))
			for _, in := range sampleTexts {
				out := f.Redact(in)
				require.Len(t, out, len(in))
				for i := 0; i < len(in); i++ {
					if out[i] != in[i] {
						assert.Equal(t, byte('*'), out[i], "input %q byte %d", in, i)
					}
				}
			}
		})
	}
}

func TestContract_AddWordIdempotent(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			f := s.build(quiet(Config{}))
			assert.False(t, f.ContainsDisallowed("what a kerfuffle"))
			f.AddWord("KerFuffle")
			f.AddWord("kerfuffle")
			assert.True(t, f.ContainsDisallowed("what a KERFUFFLE"))
			assert.Equal(t, "what a *********", f.Redact("what a kerfuffle"))
		})
	}
}

func TestContract_AddBlankWordIgnored(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			f := s.build(quiet(Config{}))
			f.AddWord("")
			f.AddWord("   ")
			assert.False(t, f.ContainsDisallowed("anything at all"))
		})
	}
}

func TestContract_CustomMask(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Mask = '#'
			f := s.build(quiet(cfg))
			assert.Equal(t, "I don't give a #### about it.", f.Redact("I don't give a damn about it."))
		})
	}
}

func TestContract_ZeroMaskDefaultsToStar(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			f := s.build(quiet(Config{Words: []string{"damn"}}))
			assert.Equal(t, "****", f.Redact("damn"))
		})
	}
}

// =============================================================================
// Bulk loading — line-oriented, blank lines skipped, failures non-fatal
// =============================================================================

func TestBulkLoad_SkipsBlankLines(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			f := s.build(quiet(Config{}))
			n, err := f.BulkLoad(wordlist.Lines("inline", "bugger", "", "   ", "Wanker"))
			require.NoError(t, err)
			assert.Equal(t, 2, n)
			assert.True(t, f.ContainsDisallowed("you WANKER"))
			assert.Equal(t, "****** off", f.Redact("bugger off"))
		})
	}
}

func TestBulkLoad_CRLFLines(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			f := s.build(quiet(Config{}))
			_, err := f.BulkLoad(wordlist.Reader("crlf", strings.NewReader("bugger\r\nwanker\r\n")))
			require.NoError(t, err)
			assert.Equal(t, "****** ******", f.Redact("bugger wanker"))
		})
	}
}

func TestBulkLoad_MissingSourceIsReportedNotFatal(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			cfg, logs := captured(DefaultConfig())
			f := s.build(cfg)

			n, err := f.BulkLoad(wordlist.File(t.TempDir() + "/missing.txt"))
			require.Error(t, err)
			assert.Equal(t, 0, n)

			var serr *SourceError
			require.ErrorAs(t, err, &serr)
			assert.Contains(t, serr.Source, "missing.txt")
			assert.Contains(t, logs.String(), "word source unavailable")

			// Prior state intact.
			assert.True(t, f.ContainsDisallowed("damn"))
		})
	}
}

func TestBulkLoad_ReadErrorKeepsLinesRead(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			f := s.build(quiet(Config{}))
			r := io.MultiReader(strings.NewReader("bugger\n"), failingReader{})
			n, err := f.BulkLoad(wordlist.Reader("flaky", r))
			require.Error(t, err)
			assert.Equal(t, 1, n)
			assert.True(t, f.ContainsDisallowed("bugger"))
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestMask_ClampsAndOverlaps(t *testing.T) {
	spans := []ports.Span{{Start: -2, End: 2}, {Start: 1, End: 3}, {Start: 5, End: 99}}
	assert.Equal(t, "***de", Mask("abcde", spans, '*'))
	assert.Equal(t, "abc", Mask("abc", nil, '*'))
}
