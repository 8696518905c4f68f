package cmd

import (
	"strings"
	"testing"
)

func TestTags(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		env := newTestEnv(t)
		env.file("somefile[tagB tagA].txt")

		out := env.run("tags", "somefile[tagB tagA].txt")

		env.contains(out, "tagA tagB")
	})

	t.Run("untagged file shows dash", func(t *testing.T) {
		env := newTestEnv(t)
		env.file("plain.txt")

		out := env.run("tags", "plain.txt")

		env.contains(out, "-")
	})

	t.Run("union across directory", func(t *testing.T) {
		env := newTestEnv(t)
		env.file("a[one].txt")
		env.file("b[two one].txt")
		env.file("plain.txt")

		out := env.run("tags")

		env.equals(out, "one\ntwo")
	})

	t.Run("messy input parses collapsed", func(t *testing.T) {
		env := newTestEnv(t)
		env.file("somefile[   tagB    tagA  ].txt")

		out := env.run("tags", "somefile[   tagB    tagA  ].txt")

		env.contains(out, "tagA tagB")
	})

	t.Run("json output", func(t *testing.T) {
		env := newTestEnv(t)
		env.file("a[one].txt")

		out := env.run("-o", "json", "tags", "a[one].txt")

		env.contains(out, `"tags":["one"]`)
	})
}

func TestFind(t *testing.T) {
	t.Run("exact tag", func(t *testing.T) {
		env := newTestEnv(t)
		env.file("a[draft].txt")
		env.file("b[final].txt")
		env.file("plain.txt")

		out := env.run("find", "draft")

		env.equals(out, "a[draft].txt")
	})

	t.Run("glob pattern", func(t *testing.T) {
		env := newTestEnv(t)
		env.file("a[v1].txt")
		env.file("b[v2].txt")
		env.file("c[x].txt")

		out := env.run("find", "v*")

		lines := strings.Fields(out)
		env.contains(out, "a[v1].txt")
		env.contains(out, "b[v2].txt")
		if len(lines) != 2 {
			t.Errorf("find v* matched %d files, want 2:\n%s", len(lines), out)
		}
	})

	t.Run("no match is silent", func(t *testing.T) {
		env := newTestEnv(t)
		env.file("a[draft].txt")

		out := env.run("find", "nosuch")

		env.equals(out, "")
	})
}
