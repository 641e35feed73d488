package sync_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"uprev.dev/uprev/internal/sync"
)

func TestBlacklistMatch(t *testing.T) {
	t.Run("wildcard crosses directory separators", func(t *testing.T) {
		blacklist, err := sync.NewBlacklist([]string{"third_party/*"})
		require.NoError(t, err)

		require.True(t, blacklist.Match("third_party/zlib/x.c"))
		require.True(t, blacklist.Match("third_party/README"))
		require.False(t, blacklist.Match("base/foo.cc"))
	})

	t.Run("matching is anchored to the full path", func(t *testing.T) {
		blacklist, err := sync.NewBlacklist([]string{"OWNERS"})
		require.NoError(t, err)

		require.True(t, blacklist.Match("OWNERS"))
		require.False(t, blacklist.Match("base/OWNERS"))
		require.False(t, blacklist.Match("OWNERS.old"))
	})

	t.Run("literal patterns match exactly", func(t *testing.T) {
		blacklist, err := sync.NewBlacklist([]string{"base/allocator/features.h"})
		require.NoError(t, err)

		require.True(t, blacklist.Match("base/allocator/features.h"))
		require.False(t, blacklist.Match("base/allocator/features.cc"))
	})

	t.Run("regex metacharacters in patterns are literal", func(t *testing.T) {
		blacklist, err := sync.NewBlacklist([]string{"base/foo.h"})
		require.NoError(t, err)

		require.True(t, blacklist.Match("base/foo.h"))
		require.False(t, blacklist.Match("base/fooXh"))
	})

	t.Run("question mark matches a single character", func(t *testing.T) {
		blacklist, err := sync.NewBlacklist([]string{"base/v?.h"})
		require.NoError(t, err)

		require.True(t, blacklist.Match("base/v1.h"))
		require.False(t, blacklist.Match("base/v12.h"))
	})

	t.Run("empty blacklist matches nothing", func(t *testing.T) {
		blacklist, err := sync.NewBlacklist(nil)
		require.NoError(t, err)

		require.False(t, blacklist.Match("base/foo.cc"))
	})
}

func TestBlacklistFilter(t *testing.T) {
	t.Run("removes matching paths and keeps order", func(t *testing.T) {
		blacklist, err := sync.NewBlacklist([]string{"third_party/*", "OWNERS"})
		require.NoError(t, err)

		got := blacklist.Filter([]string{
			"OWNERS",
			"base/foo.cc",
			"third_party/zlib/x.c",
			"base/bar.cc",
		})
		require.Equal(t, []string{"base/foo.cc", "base/bar.cc"}, got)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		blacklist, err := sync.NewBlacklist([]string{"third_party/*"})
		require.NoError(t, err)

		require.Empty(t, blacklist.Filter(nil))
	})
}

func TestBlacklistPatterns(t *testing.T) {
	t.Run("returns a copy", func(t *testing.T) {
		blacklist, err := sync.NewBlacklist([]string{"a", "b"})
		require.NoError(t, err)

		patterns := blacklist.Patterns()
		patterns[0] = "mutated"
		require.Equal(t, []string{"a", "b"}, blacklist.Patterns())
	})
}
