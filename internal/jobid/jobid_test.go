package jobid

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var canonicalRE = regexp.MustCompile(`^[A-Z]{2}-[A-Z]{2,3}-\d{4,}$`)

func TestClassify(t *testing.T) {
	t.Parallel()

	c := DefaultClassifier()

	tests := []struct {
		title string
		want  Code
	}{
		{"Senior Data Scientist", CodeDataScience},
		{"DATA SCIENTIST", CodeDataScience},
		{"head of data science", CodeDataScience},
		{"Data Engineer", CodeDataEngineering},
		{"Lead, Data Engineering", CodeDataEngineering},
		{"DevOps Engineer", CodeDevOps},
		{"Dev Ops Specialist", CodeDevOps},
		{"Machine Learning Engineer", CodeAI},
		{"Gen AI Architect", CodeAI},
		{"Artificial Intelligence Researcher", CodeAI},
		{"Marketing Coordinator", CodeGeneral},
		{"", CodeGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.title))
		})
	}
}

func TestClassifyRuleOrderWins(t *testing.T) {
	t.Parallel()

	c := DefaultClassifier()

	// devops appears first in the title but DE is declared before DO
	assert.Equal(t, CodeDataEngineering, c.Classify("DevOps minded Data Engineer"))
	assert.Equal(t, CodeDataEngineering, c.Classify("Data Engineer with DevOps"))

	// DS is declared before AI
	assert.Equal(t, CodeDataScience, c.Classify("Machine Learning Data Scientist"))
}

func TestClassifyIsIdempotent(t *testing.T) {
	t.Parallel()

	c := DefaultClassifier()
	for _, title := range []string{"Data Scientist", "DevOps", "Plumber"} {
		first := c.Classify(title)
		assert.Equal(t, first, c.Classify(title))
	}
}

func TestNewClassifierCopiesRules(t *testing.T) {
	t.Parallel()

	rules := []Rule{{Code: "QA", Keywords: []string{"  Tester ", ""}}}
	c := NewClassifier(rules, "GEN")

	rules[0].Code = "XX"
	rules[0].Keywords[0] = "nothing"

	assert.Equal(t, Code("QA"), c.Classify("Manual TESTER"))
	assert.Equal(t, Code("GEN"), c.Classify("Anything else"))
	assert.Equal(t, []Rule{{Code: "QA", Keywords: []string{"tester"}}}, c.Rules())
}

func TestAllocate(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 1, Allocate(CodeDataScience, nil))
	})

	t.Run("other categories only", func(t *testing.T) {
		assert.Equal(t, 1, Allocate(CodeDevOps, []string{"DZ-DS-0001", "DZ-DE-0009"}))
	})

	t.Run("max plus one", func(t *testing.T) {
		existing := []string{"DZ-DS-0001", "DZ-DS-0005", "DZ-DS-0003", "DZ-DE-0042"}
		assert.Equal(t, 6, Allocate(CodeDataScience, existing))
	})

	t.Run("order independent", func(t *testing.T) {
		existing := []string{"DZ-DS-0001", "DZ-DS-0005", "DZ-DS-0003"}
		r := rand.New(rand.NewSource(1))
		for i := 0; i < 10; i++ {
			r.Shuffle(len(existing), func(i, j int) { existing[i], existing[j] = existing[j], existing[i] })
			assert.Equal(t, 6, Allocate(CodeDataScience, existing))
		}
	})

	t.Run("malformed sequence ignored", func(t *testing.T) {
		existing := []string{"DZ-DS-abcd", "DZ-DS-0004", "DZ-DS-", "DZ-DS-12x4", "garbage"}
		assert.Equal(t, 5, Allocate(CodeDataScience, existing))
		assert.Equal(t, 1, Allocate(CodeDataScience, []string{"DZ-DS-abcd"}))
	})

	t.Run("wide sequence", func(t *testing.T) {
		assert.Equal(t, 10000, Allocate(CodeAI, []string{"DZ-AI-9999"}))
		assert.Equal(t, 10001, Allocate(CodeAI, []string{"DZ-AI-10000", "DZ-AI-9999"}))
	})
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix string
		code   Code
		seq    int
		want   string
		err    error
	}{
		{"DZ", CodeDataScience, 1, "DZ-DS-0001", nil},
		{"DZ", CodeGeneral, 42, "DZ-GN-0042", nil},
		{"DZ", "GEN", 9999, "DZ-GEN-9999", nil},
		{"DZ", CodeAI, 10000, "DZ-AI-10000", nil},
		{"DZ", CodeAI, -1, "", ErrInvalidSequence},
		{"dz", CodeAI, 1, "", ErrInvalidPrefix},
		{"DZZ", CodeAI, 1, "", ErrInvalidPrefix},
		{"DZ", "A", 1, "", ErrInvalidCode},
		{"DZ", "ABCD", 1, "", ErrInvalidCode},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s-%s-%d", tt.prefix, tt.code, tt.seq), func(t *testing.T) {
			got, err := Format(tt.prefix, tt.code, tt.seq)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, canonicalRE, got)
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	id, err := Parse("DZ-DS-0042")
	require.NoError(t, err)
	assert.Equal(t, Identifier{Prefix: "DZ", Code: CodeDataScience, Sequence: 42}, id)

	for _, bad := range []string{"", "DZ-DS-42", "DZ-DS-abcd", "dz-ds-0001", "DZ-DS", "DZ-DSXX-0001"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrMalformedIdentifier, bad)
	}
}

func TestSegments(t *testing.T) {
	t.Parallel()

	code, ok := CategoryOf("DZ-GEN-0001")
	assert.True(t, ok)
	assert.Equal(t, Code("GEN"), code)

	_, ok = CategoryOf("DZ0001")
	assert.False(t, ok)

	assert.Equal(t, 7, SequenceOf("DZ-DO-0007"))
	assert.Equal(t, 0, SequenceOf("DZ-DO-abcd"))
	assert.Equal(t, 0, SequenceOf("DZ-DO-+1"))
	assert.Equal(t, 0, SequenceOf("DZ-DO-99999999999999999999999"))
	assert.Equal(t, 0, SequenceOf("no separator"))
}

func TestGeneratorScenario(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	var existing StaticProvider
	g, err := NewGenerator("DZ", DefaultClassifier(), ProviderFunc(func(ctx context.Context, code Code) ([]string, error) {
		return existing.Identifiers(ctx, code)
	}))
	require.NoError(err)

	ctx := context.Background()

	id, err := g.Next(ctx, "Senior Data Scientist")
	require.NoError(err)
	require.Equal("DZ-DS-0001", id.String())
	existing = append(existing, id.String())

	id, err = g.Next(ctx, "Data Scientist II")
	require.NoError(err)
	require.Equal("DZ-DS-0002", id.String())

	id, err = g.Next(ctx, "Marketing Coordinator")
	require.NoError(err)
	require.Equal("DZ-GN-0001", id.String())
}

func TestGeneratorRoundTrip(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator("DZ", DefaultClassifier(), StaticProvider{"DZ-DE-0003", "DZ-AI-0010", "DZ-GN-abcd"})
	require.NoError(t, err)

	for _, title := range []string{"Data Engineer", "AI Lead", "Office Manager", "Data Scientist"} {
		code := g.Classifier().Classify(title)
		seq := Allocate(code, []string{"DZ-DE-0003", "DZ-AI-0010", "DZ-GN-abcd"})

		id, err := g.Next(context.Background(), title)
		require.NoError(t, err)

		parsed, err := Parse(id.String())
		require.NoError(t, err)
		assert.Equal(t, code, parsed.Code, title)
		assert.Equal(t, seq, parsed.Sequence, title)
		assert.Equal(t, "DZ", parsed.Prefix)
	}
}

func TestGeneratorMonotonic(t *testing.T) {
	t.Parallel()

	var issued []string
	g, err := NewGenerator("DZ", DefaultClassifier(), ProviderFunc(func(context.Context, Code) ([]string, error) {
		return issued, nil
	}))
	require.NoError(t, err)

	const n = 25
	for i := 1; i <= n; i++ {
		id, err := g.Next(context.Background(), "DevOps Engineer")
		require.NoError(t, err)
		require.Equal(t, i, id.Sequence)
		issued = append(issued, id.String())
	}

	seen := make(map[string]bool, n)
	for _, id := range issued {
		assert.False(t, seen[id], "duplicate %s", id)
		seen[id] = true
	}
}

func TestGeneratorProviderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	g, err := NewGenerator("DZ", DefaultClassifier(), ProviderFunc(func(context.Context, Code) ([]string, error) {
		return nil, boom
	}))
	require.NoError(t, err)

	id, err := g.Next(context.Background(), "Data Scientist")
	require.ErrorIs(t, err, boom)
	assert.Zero(t, id)
}

func TestNewGeneratorValidates(t *testing.T) {
	t.Parallel()

	_, err := NewGenerator("D", DefaultClassifier(), StaticProvider{})
	assert.ErrorIs(t, err, ErrInvalidPrefix)

	_, err = NewGenerator("DZ", NewClassifier(DefaultRules(), "general"), StaticProvider{})
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = NewGenerator("DZ", NewClassifier([]Rule{{Code: "x", Keywords: []string{"x"}}}, CodeGeneral), StaticProvider{})
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestPreview(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator("DZ", DefaultClassifier(), StaticProvider{})
	require.NoError(t, err)

	id := g.Preview("Data Engineer", []string{"DZ-DE-0001", "DZ-DE-0002"})
	assert.Equal(t, "DZ-DE-0003", id.String())
}
