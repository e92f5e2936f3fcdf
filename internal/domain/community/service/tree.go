package service

import "threadboard/internal/domain/community/model"

// BuildTree 把按 path 升序的扁平评论组装成树。
// 父评论总在子评论之前出现，两遍线性扫描即可；父节点缺失的评论挂到根上
func BuildTree(comments []model.Comment) []*model.CommentNode {
	nodes := make([]*model.CommentNode, len(comments))
	byID := make(map[int64]*model.CommentNode, len(comments))
	for i := range comments {
		n := &model.CommentNode{Comment: comments[i], Replies: []*model.CommentNode{}}
		nodes[i] = n
		byID[n.ID] = n
	}

	roots := make([]*model.CommentNode, 0)
	for _, n := range nodes {
		if n.ParentID != nil {
			if parent, ok := byID[*n.ParentID]; ok {
				parent.Replies = append(parent.Replies, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots
}
