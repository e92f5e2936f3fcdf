package service

import (
	"sort"
	"testing"
	"threadboard/internal/domain/community/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newComment(id int64, parent *model.Comment) model.Comment {
	c := model.Comment{PostID: 1}
	c.ID = id
	c.Place(parent)
	return c
}

func sortByPath(cs []model.Comment) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Path < cs[j].Path })
}

func TestBuildTree(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		roots := BuildTree(nil)
		assert.NotNil(t, roots)
		assert.Empty(t, roots)
	})

	t.Run("siblings ordered by id", func(t *testing.T) {
		c1 := newComment(10, nil)
		c2 := newComment(11, nil)
		r1 := newComment(12, &c1)
		r2 := newComment(9, &c1) // 较小的 ID 但仍属于 c1
		rr := newComment(13, &r1)

		flat := []model.Comment{c2, rr, r2, c1, r1}
		sortByPath(flat)
		roots := BuildTree(flat)

		require.Len(t, roots, 2)
		assert.Equal(t, int64(10), roots[0].ID)
		assert.Equal(t, int64(11), roots[1].ID)
		assert.Empty(t, roots[1].Replies)

		require.Len(t, roots[0].Replies, 2)
		assert.Equal(t, int64(9), roots[0].Replies[0].ID)
		assert.Equal(t, int64(12), roots[0].Replies[1].ID)
		require.Len(t, roots[0].Replies[1].Replies, 1)
		assert.Equal(t, int64(13), roots[0].Replies[1].Replies[0].ID)
		assert.Equal(t, 2, roots[0].Replies[1].Replies[0].Depth)
	})

	t.Run("orphan becomes root", func(t *testing.T) {
		gone := newComment(5, nil)
		orphan := newComment(6, &gone)

		roots := BuildTree([]model.Comment{orphan})
		require.Len(t, roots, 1)
		assert.Equal(t, int64(6), roots[0].ID)
	})

	t.Run("every comment appears once", func(t *testing.T) {
		var flat []model.Comment
		parent := newComment(100, nil)
		flat = append(flat, parent)
		for i := int64(1); i <= 20; i++ {
			c := newComment(100+i, &parent)
			flat = append(flat, c)
			parent = c
		}
		sortByPath(flat)

		count := 0
		var walk func(nodes []*model.CommentNode)
		walk = func(nodes []*model.CommentNode) {
			for _, n := range nodes {
				count++
				walk(n.Replies)
			}
		}
		walk(BuildTree(flat))
		assert.Equal(t, len(flat), count)
	})
}
