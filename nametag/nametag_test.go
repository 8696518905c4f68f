package nametag_test

import (
	"slices"
	"testing"

	"github.com/internetimagery/nametag/nametag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustString serialises and fails the test on encoding errors. Every input
// in these tests is valid UTF-8 unless the test is about encoding.
func mustString(t *testing.T, nt *nametag.NameTag) string {
	t.Helper()
	s, err := nt.String()
	require.NoError(t, err, "serialising to string")
	return s
}

func tags(nt *nametag.NameTag) []string {
	return slices.Collect(nt.Tags())
}

func TestParse_RoundTrip(t *testing.T) {
	// Inputs without a balanced bracket pair must pass through unmodified.
	inputs := []string{
		"somefile.txt",
		"somefile",
		"",
		".hidden",
		"no extension here",
		"weird..double..dots.tar.gz",
		"somefile[tagB tagA.txt",  // unclosed bracket
		"somefile]tagB tagA[.txt", // close before open
		"]]]",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			nt := nametag.Parse([]byte(in))
			assert.Equal(t, in, mustString(t, nt))
		})
	}
}

func TestParse_Tagged(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
		out  string
	}{
		{
			name: "sorted on output",
			in:   "somefile[tagB tagA].txt",
			want: []string{"tagA", "tagB"},
			out:  "somefile[tagA tagB].txt",
		},
		{
			name: "segment at start",
			in:   "[tagB tagA]somefile.txt",
			want: []string{"tagA", "tagB"},
			out:  "[tagA tagB]somefile.txt",
		},
		{
			name: "segment at end",
			in:   "somefile.txt[tagB tagA]",
			want: []string{"tagA", "tagB"},
			out:  "somefile.txt[tagA tagB]",
		},
		{
			name: "whitespace runs collapse",
			in:   "somefile[   tagB    tagA  ].txt",
			want: []string{"tagA", "tagB"},
			out:  "somefile[tagA tagB].txt",
		},
		{
			name: "comma is an input separator only",
			in:   "somefile[tagB,tagA, tagC].txt",
			want: []string{"tagA", "tagB", "tagC"},
			out:  "somefile[tagA tagB tagC].txt",
		},
		{
			name: "duplicates collapse",
			in:   "somefile[tagA tagA tagA].txt",
			want: []string{"tagA"},
			out:  "somefile[tagA].txt",
		},
		{
			name: "empty segment drops",
			in:   "name[].txt",
			want: nil,
			out:  "name.txt",
		},
		{
			name: "separator-only segment drops",
			in:   "name[ ,  ].txt",
			want: nil,
			out:  "name.txt",
		},
		{
			name: "nested brackets flatten",
			in:   "somefile[nottag [tagB tagA]].txt",
			want: []string{"nottag", "tagA", "tagB"},
			out:  "somefile[nottag tagA tagB].txt",
		},
		{
			name: "second bracket pair is literal suffix",
			in:   "a[one].b[two].txt",
			want: []string{"one"},
			out:  "a[one].b[two].txt",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nt := nametag.Parse([]byte(tt.in))
			assert.Equal(t, tt.want, tags(nt), "parsed tag set")
			assert.Equal(t, tt.out, mustString(t, nt), "canonical form")
		})
	}
}

func TestAddTag(t *testing.T) {
	t.Run("insertion before first dot", func(t *testing.T) {
		nt := nametag.Parse([]byte("somefile.txt"))
		nt.AddTag("hello")
		assert.Equal(t, "somefile[hello].txt", mustString(t, nt))
	})

	t.Run("insertion at end without dot", func(t *testing.T) {
		nt := nametag.Parse([]byte("somefile"))
		nt.AddTag("hello")
		assert.Equal(t, "somefile[hello]", mustString(t, nt))
	})

	t.Run("insertion before first of many dots", func(t *testing.T) {
		nt := nametag.Parse([]byte("archive.tar.gz"))
		nt.AddTag("old")
		assert.Equal(t, "archive[old].tar.gz", mustString(t, nt))
	})

	t.Run("idempotent", func(t *testing.T) {
		nt := nametag.Parse([]byte("somefile.txt"))
		nt.AddTag("hello")
		nt.AddTag("hello")
		assert.Equal(t, []string{"hello"}, tags(nt))
		assert.Equal(t, "somefile[hello].txt", mustString(t, nt))
	})

	t.Run("empty tag is a no-op", func(t *testing.T) {
		nt := nametag.Parse([]byte("somefile.txt"))
		nt.AddTag("")
		assert.Zero(t, nt.Len())
		assert.Equal(t, "somefile.txt", mustString(t, nt))
	})

	t.Run("existing segment is reused", func(t *testing.T) {
		nt := nametag.Parse([]byte("somefile[tagA].txt"))
		nt.AddTag("tagB")
		assert.Equal(t, "somefile[tagA tagB].txt", mustString(t, nt))
	})
}

func TestRemoveTag(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		nt := nametag.Parse([]byte("somefile[tagB tagA].txt"))
		nt.RemoveTag("tagA")
		assert.Equal(t, "somefile[tagB].txt", mustString(t, nt))
	})

	t.Run("absent is a no-op", func(t *testing.T) {
		nt := nametag.Parse([]byte("somefile[tagB tagA].txt"))
		nt.RemoveTag("nosuch")
		assert.Equal(t, []string{"tagA", "tagB"}, tags(nt))
	})

	t.Run("last tag drops the brackets", func(t *testing.T) {
		nt := nametag.Parse([]byte("somefile[tagA].txt"))
		nt.RemoveTag("tagA")
		assert.Equal(t, "somefile.txt", mustString(t, nt))
	})
}

func TestClearTags(t *testing.T) {
	nt := nametag.Parse([]byte("somefile[tagB tagA].txt"))
	nt.ClearTags()
	assert.Zero(t, nt.Len())
	assert.Equal(t, "somefile.txt", mustString(t, nt))

	// Prefix and suffix survive a clear; the name can be re-tagged.
	nt.AddTag("fresh")
	assert.Equal(t, "somefile[fresh].txt", mustString(t, nt))
}

func TestTags_Ordering(t *testing.T) {
	nt := nametag.Parse([]byte("somefile.txt"))
	for _, tag := range []string{"zebra", "apple", "mid", "Apple", "10", "2"} {
		nt.AddTag(tag)
	}

	got := tags(nt)
	want := []string{"10", "2", "Apple", "apple", "mid", "zebra"}
	assert.Equal(t, want, got, "ascending byte order regardless of insertion order")
	assert.True(t, slices.IsSorted(got))

	// The iterator restarts cleanly.
	assert.Equal(t, got, tags(nt))

	// Early break must not affect later reads.
	for range nt.Tags() {
		break
	}
	assert.Equal(t, want, tags(nt))
}

func TestHasTag(t *testing.T) {
	nt := nametag.Parse([]byte("somefile[tagB tagA].txt"))
	assert.True(t, nt.HasTag("tagA"))
	assert.False(t, nt.HasTag("taga"))
	assert.False(t, nt.HasTag(""))
}

func TestSerialize_Pure(t *testing.T) {
	nt := nametag.Parse([]byte("somefile[tagA].txt"))

	first := nt.Bytes()
	second := nt.Bytes()
	assert.Equal(t, first, second, "serialisation is repeatable")

	// The instance stays mutable after serialising.
	nt.AddTag("tagB")
	assert.Equal(t, "somefile[tagA tagB].txt", mustString(t, nt))
	assert.Equal(t, "somefile[tagA].txt", string(first), "earlier output unaffected")
}

func TestString_InvalidEncoding(t *testing.T) {
	raw := []byte{'f', 0xff, 0xfe, '.', 't', 'x', 't'}
	nt := nametag.Parse(raw)

	_, err := nt.String()
	require.Error(t, err)
	assert.ErrorIs(t, err, nametag.ErrInvalidEncoding)

	// The instance survives the failed conversion.
	assert.Equal(t, raw, nt.Bytes())
	nt.AddTag("bin")
	assert.Equal(t, []byte("f\xff\xfe[bin].txt"), nt.Bytes())
}

func TestParsePath(t *testing.T) {
	t.Run("directory part carried untouched", func(t *testing.T) {
		nt := nametag.ParsePath("some/dir/somefile.txt")
		nt.AddTag("hello")
		assert.Equal(t, "some/dir/somefile[hello].txt", mustString(t, nt))
	})

	t.Run("brackets in directories are not a segment", func(t *testing.T) {
		nt := nametag.ParsePath("weird [dir]/somefile.txt")
		assert.Zero(t, nt.Len())
		nt.AddTag("x")
		assert.Equal(t, "weird [dir]/somefile[x].txt", mustString(t, nt))
	})

	t.Run("dots in directories do not steal the insertion point", func(t *testing.T) {
		nt := nametag.ParsePath("v1.2/somefile.txt")
		nt.AddTag("x")
		assert.Equal(t, "v1.2/somefile[x].txt", mustString(t, nt))
	})

	t.Run("bare name matches Parse", func(t *testing.T) {
		a := nametag.ParsePath("somefile[tagA].txt")
		b := nametag.Parse([]byte("somefile[tagA].txt"))
		assert.Equal(t, b.Bytes(), a.Bytes())
	})
}
