package domain

import "time"

// Comment is a review remark on a commit of a pull request.
// A nil Line targets the whole commit; a non-nil ParentID makes it a reply.
type Comment struct {
	ID            int64     `json:"id"`
	PullRequestID int64     `json:"pull_request_id"`
	CommitID      string    `json:"commit_id"`
	UserID        int64     `json:"user_id"`
	Author        string    `json:"author"`
	Line          *int      `json:"line,omitempty"`
	Body          string    `json:"comment"`
	ParentID      *int64    `json:"parent_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CommentNode is a comment together with its replies.
type CommentNode struct {
	Comment
	Replies []*CommentNode `json:"replies"`
}

// BuildThreads arranges comments into reply trees.
// Roots and replies keep the order of the input slice. A comment whose parent
// is not in the slice is treated as a root.
func BuildThreads(comments []Comment) []*CommentNode {
	nodes := make(map[int64]*CommentNode, len(comments))
	for i := range comments {
		nodes[comments[i].ID] = &CommentNode{Comment: comments[i], Replies: []*CommentNode{}}
	}

	roots := make([]*CommentNode, 0)
	for i := range comments {
		node := nodes[comments[i].ID]
		if comments[i].ParentID != nil {
			if parent, ok := nodes[*comments[i].ParentID]; ok {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}
